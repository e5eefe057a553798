// Package input reads player input line by line and parses it into commands.
package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Reader reads player input one line at a time
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for line-oriented reading
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine reads a line of input without its line terminator.
// A final line that is not newline-terminated is returned normally; the
// following call reports io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
