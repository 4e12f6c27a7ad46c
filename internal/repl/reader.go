package repl

import (
	"bufio"
	"context"
	"io"
	"math"
	"sync"
)

const initialLineBuffer = 64 * 1024

// LineReader supplies input lines. ReadLine returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// ScannerReader reads lines from an io.Reader on a background goroutine so that
// ReadLine can give up when ctx is cancelled. Lines may be of any length.
type ScannerReader struct {
	scanner   *bufio.Scanner
	lines     chan lineResult
	done      chan struct{}
	start     sync.Once
	closeOnce sync.Once
}

// NewScannerReader wraps r. Reading starts on the first ReadLine.
func NewScannerReader(r io.Reader) *ScannerReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	return &ScannerReader{
		scanner: s,
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
	}
}

// ReadLine returns the next line without its terminator. After Close it returns io.EOF.
func (r *ScannerReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-r.done:
		return "", io.EOF
	default:
	}
	r.start.Do(func() { go r.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", io.EOF
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// Close stops the background goroutine once it has a line to hand over.
// A read already blocked in the underlying reader finishes on its own.
func (r *ScannerReader) Close() error {
	r.closeOnce.Do(func() { close(r.done) })
	return nil
}

func (r *ScannerReader) scan() {
	defer close(r.lines)
	for r.scanner.Scan() {
		if !r.send(lineResult{line: r.scanner.Text()}) {
			return
		}
	}
	if err := r.scanner.Err(); err != nil {
		r.send(lineResult{err: err})
	}
}

func (r *ScannerReader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.done:
		return false
	}
}
