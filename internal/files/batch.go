package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/varalys/maschine/internal/settings"
	"github.com/varalys/maschine/internal/types"
)

// Batch is a set of message files matched by one glob pattern.
type Batch struct {
	// Base is the static directory prefix of the pattern; output paths keep
	// the layout below it.
	Base  string
	Paths []string
}

// Expand matches pattern (doublestar syntax, e.g. "msgs/**/*.txt") against
// the filesystem and returns the regular files found, sorted.
func Expand(pattern string) (Batch, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return Batch{}, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, pattern)
	}
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return Batch{}, err
	}
	sort.Strings(matches)
	return Batch{Base: filepath.FromSlash(base), Paths: matches}, nil
}

// Translate runs every file through its own fresh machine built from res.
func (b Batch) Translate(res settings.Resolution, logger *slog.Logger) ([]types.Translation, error) {
	out := make([]types.Translation, 0, len(b.Paths))
	for _, p := range b.Paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		tr, err := res.Record(p, string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		logger.Debug("translated file", "path", p, "letters", tr.Letters)
		out = append(out, tr)
	}
	return out, nil
}

// Destination maps a source path to its location under dir, preserving the
// layout below the batch base.
func (b Batch) Destination(dir, src string) (string, error) {
	rel, err := filepath.Rel(b.Base, src)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, rel), nil
}

// Write stores each translation's output under dir, one file per source.
func (b Batch) Write(dir string, trs []types.Translation) error {
	for _, tr := range trs {
		dst, err := b.Destination(dir, tr.Source)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, []byte(tr.Output+"\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
