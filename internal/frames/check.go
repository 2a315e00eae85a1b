package frames

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Report describes how the output directory differs from a fresh generation.
type Report struct {
	Missing    []int
	Stale      []int
	Unexpected []string
}

// UpToDate reports whether regenerating would leave the directory unchanged.
func (r Report) UpToDate() bool {
	return len(r.Missing) == 0 && len(r.Stale) == 0 && len(r.Unexpected) == 0
}

// Check renders every frame in memory and compares it against the files in
// the output directory without modifying them.
func (g *Generator) Check() (Report, error) {
	var rep Report

	for k := 1; k <= g.cfg.FrameCount; k++ {
		want, err := g.Render(k)
		if err != nil {
			return Report{}, err
		}

		path := filepath.Join(g.cfg.OutputDir, FileName(k))
		got, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			rep.Missing = append(rep.Missing, k)
			continue
		}
		if err != nil {
			return Report{}, fmt.Errorf("%w: reading %s: %w", ErrFilesystem, path, err)
		}
		if !bytes.Equal(got, want) {
			g.log.WithField("frame", k).Debug("frame differs from fresh render")
			rep.Stale = append(rep.Stale, k)
		}
	}

	extra, err := g.unexpectedFiles()
	if err != nil {
		return Report{}, err
	}
	rep.Unexpected = extra

	g.log.WithFields(logrus.Fields{
		"missing":    len(rep.Missing),
		"stale":      len(rep.Stale),
		"unexpected": len(rep.Unexpected),
	}).Debug("check finished")
	return rep, nil
}

// unexpectedFiles lists frame-like files outside frame_1..frame_N.
func (g *Generator) unexpectedFiles() ([]string, error) {
	entries, err := os.ReadDir(g.cfg.OutputDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrFilesystem, g.cfg.OutputDir, err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "frame_") || !strings.HasSuffix(name, ".txt") {
			continue
		}
		if k, ok := frameIndex(name); ok && k >= 1 && k <= g.cfg.FrameCount {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func frameIndex(name string) (int, bool) {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "frame_"), ".txt")
	k, err := strconv.Atoi(digits)
	if err != nil || FileName(k) != name {
		return 0, false
	}
	return k, true
}
