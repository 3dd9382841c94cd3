package prompt

import (
	"bufio"
	"io"
)

// Reader yields lines from an input stream. Exactly one Reader must own a
// stream: the underlying scanner buffers ahead, so a second reader on the
// same stream would lose input.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps an input stream as a line source.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// once the stream ends.
func (r *Reader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
