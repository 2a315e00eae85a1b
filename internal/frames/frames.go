package frames

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/guzus/thinthread/internal/config"
	"github.com/guzus/thinthread/internal/glyph"
	"github.com/guzus/thinthread/internal/rotation"
	"github.com/guzus/thinthread/internal/style"
)

// ErrFilesystem is returned when the output directory or a frame file cannot
// be created or written.
var ErrFilesystem = errors.New("filesystem error")

// Generator renders glyph art once and writes color-cycled copies of it.
type Generator struct {
	cfg        config.Config
	art        glyph.Art
	serializer *style.Serializer
	log        *logrus.Logger
}

// New validates cfg and renders its art. Nothing is written to disk.
func New(cfg config.Config, log *logrus.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	art, err := glyph.Render(cfg.Text, cfg.Font)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"font":  cfg.Font,
		"lines": art.Len(),
		"width": art.Width(),
	}).Debugf("rendered %q", cfg.Text)

	return &Generator{
		cfg:        cfg,
		art:        art,
		serializer: style.NewSerializer(cfg.Width),
		log:        log,
	}, nil
}

// Art returns the rendered glyph art.
func (g *Generator) Art() glyph.Art { return g.art }

// Config returns the configuration the generator was built from.
func (g *Generator) Config() config.Config { return g.cfg }

// FileName returns the file name used for frame k.
func FileName(k int) string {
	return fmt.Sprintf("frame_%d.txt", k)
}

// Frame pairs every art line with its color for frame k.
func (g *Generator) Frame(k int) []style.Segment {
	lines := g.art.Lines()
	segs := make([]style.Segment, len(lines))
	for i, line := range lines {
		// Palette is validated non-empty in New.
		color, _ := rotation.Pick(g.cfg.Palette, i, k)
		segs[i] = style.Segment{Text: line, Color: color}
	}
	return segs
}

// Render returns the serialized contents of frame k.
func (g *Generator) Render(k int) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.serializer.Serialize(&buf, g.Frame(k)); err != nil {
		return nil, fmt.Errorf("rendering frame %d: %w", k, err)
	}
	return buf.Bytes(), nil
}

// Generate writes frame_1.txt through frame_N.txt into the output directory,
// overwriting existing files. The first failure aborts the run; files already
// written are left in place.
func (g *Generator) Generate() error {
	if err := ensureDir(g.cfg.OutputDir); err != nil {
		return err
	}

	for k := 1; k <= g.cfg.FrameCount; k++ {
		data, err := g.Render(k)
		if err != nil {
			return err
		}

		path := filepath.Join(g.cfg.OutputDir, FileName(k))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("%w: writing %s: %w", ErrFilesystem, path, err)
		}
		g.log.WithFields(logrus.Fields{"frame": k, "path": path}).Debug("wrote frame")
	}

	g.log.WithField("dir", g.cfg.OutputDir).Infof("wrote %d frames", g.cfg.FrameCount)
	return nil
}

func ensureDir(dir string) error {
	st, err := os.Stat(dir)
	if err == nil {
		if !st.IsDir() {
			return fmt.Errorf("%w: %s exists and is not a directory", ErrFilesystem, dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating output dir: %w", ErrFilesystem, err)
	}
	return nil
}
