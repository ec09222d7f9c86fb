package rewrite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/code-tool/prefix-strip/pkg/enumprefix"
	"github.com/code-tool/prefix-strip/pkg/line"
)

const DefaultBufferSize = 16 * 1024

var ErrInvalidUTF8 = errors.New("invalid UTF-8")

type Result struct {
	Lines  int
	ByRule map[enumprefix.Rule]int
}

type Rewriter struct {
	log     *zap.Logger
	stats   *Stats
	bufSize int
	now     func() time.Time
}

func NewRewriter(log *zap.Logger, stats *Stats, bufSize int) *Rewriter {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	return &Rewriter{log: log, stats: stats, bufSize: bufSize, now: time.Now}
}

func checkAccess(path string) error {
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return &os.PathError{Op: "access", Path: path, Err: err}
	}

	return nil
}

func (rw *Rewriter) readAll(path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open file for reading: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	lines, err = line.ReadAll(f, rw.bufSize)
	if err != nil {
		return nil, fmt.Errorf("can't read file: %w", err)
	}

	return lines, nil
}

func (rw *Rewriter) writeAll(path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("can't open file for writing: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	for _, l := range lines {
		if _, err = f.WriteString(l); err != nil {
			return fmt.Errorf("can't write file: %w", err)
		}
	}

	return nil
}

// Rewrite strips enumeration markers from every line of the file at path and
// writes the result back to the same path. The whole file is read and
// checked to be valid UTF-8 before the first write; a failure while writing
// leaves the file partially rewritten.
func (rw *Rewriter) Rewrite(ctx context.Context, path string) (Result, error) {
	result := Result{ByRule: make(map[enumprefix.Rule]int, len(enumprefix.Rules()))}

	if err := checkAccess(path); err != nil {
		return result, err
	}

	lines, err := rw.readAll(path)
	if err != nil {
		return result, err
	}

	for i := range lines {
		if !utf8.ValidString(lines[i]) {
			return result, fmt.Errorf("can't decode line %d: %w", i+1, ErrInvalidUTF8)
		}
	}

	rw.log.Debug("file read", zap.String("path", path), zap.Int("lines", len(lines)))

	out := make([]string, len(lines))
	for i := range lines {
		var rule enumprefix.Rule
		out[i], rule = enumprefix.StripRule(lines[i])
		result.ByRule[rule]++
	}
	result.Lines = len(out)

	// last point where the file is still untouched
	if err = ctx.Err(); err != nil {
		return result, err
	}

	if err = rw.writeAll(path, out); err != nil {
		return result, err
	}

	if rw.stats != nil {
		for rule, n := range result.ByRule {
			rw.stats.add(rule, n)
		}
		rw.stats.markRun(rw.now())
	}

	return result, nil
}
