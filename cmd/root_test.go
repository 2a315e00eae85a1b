package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/guzus/thinthread/internal/config"
	"github.com/guzus/thinthread/internal/frames"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootGeneratesFrames(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Generated ThinThread frames.\n" {
		t.Errorf("unexpected output %q", out)
	}

	dir := config.Default().OutputDir
	for _, k := range []int{1, 36} {
		if _, err := os.Stat(filepath.Join(dir, frames.FileName(k))); err != nil {
			t.Errorf("expected %s: %v", frames.FileName(k), err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_37.txt")); !os.IsNotExist(err) {
		t.Error("expected no frame_37.txt")
	}
}

func TestRootOutputDirCollision(t *testing.T) {
	chdir(t, t.TempDir())

	dir := config.Default().OutputDir
	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t)
	if !errors.Is(err, frames.ErrFilesystem) {
		t.Fatalf("expected ErrFilesystem, got %v", err)
	}
	if strings.Contains(out, "Generated") {
		t.Errorf("expected no completion notice on failure, got %q", out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for positional args")
	}
}

func TestCheckAfterGenerate(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "All 36 frames up to date.\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCheckReportsMissing(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "check")
	if !errors.Is(err, errOutOfDate) {
		t.Fatalf("expected errOutOfDate, got %v", err)
	}
	if !strings.Contains(ansi.Strip(out), "missing:    frame_1.txt") {
		t.Errorf("expected missing frame_1.txt in output, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "thinthread dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLogLevel(t *testing.T) {
	t.Cleanup(func() {
		verboseFlag = false
		logrus.SetLevel(logrus.InfoLevel)
	})

	if _, err := execute(t, "version"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := logrus.GetLevel(); got != logrus.WarnLevel {
		t.Errorf("default level = %v, want %v", got, logrus.WarnLevel)
	}

	if _, err := execute(t, "--verbose", "version"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := logrus.GetLevel(); got != logrus.DebugLevel {
		t.Errorf("verbose level = %v, want %v", got, logrus.DebugLevel)
	}
	verboseFlag = false
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
