// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
)

// Stream encodes values of type T as JSON lines on a dedicated goroutine, so
// producers never block on the output writer for longer than a channel send.
type Stream[T any] struct {
	in   chan T
	done chan error
}

// Start spins up the encoder goroutine.
//   - encode: converts one value to its wire type and calls enc.Encode
//   - isBroken: recognizes broken/closed pipe errors, which are suppressed
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) *Stream[T] {
	if bufSize <= 0 {
		bufSize = 64
	}
	s := &Stream[T]{in: make(chan T, bufSize), done: make(chan error, 1)}

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range s.in {
			if err != nil {
				continue // drain so senders never block
			}
			err = encode(enc, v)
		}
		if err == nil {
			err = bw.Flush()
		}
		if isBroken != nil && isBroken(err) {
			err = nil
		}
		s.done <- err
	}()
	return s
}

// Send queues v, giving up when ctx is done.
func (s *Stream[T]) Send(ctx context.Context, v T) error {
	select {
	case s.in <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting values and returns the first encode or flush error.
// Send must not be called after Close.
func (s *Stream[T]) Close() error {
	close(s.in)
	return <-s.done
}
