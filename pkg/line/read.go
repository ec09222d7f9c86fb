package line

import (
	"bufio"
	"errors"
	"io"
)

// ReadOne returns the next line from r with its terminator folded to "\n".
// "\n", "\r\n" and a lone "\r" all end a line. A last line without a
// terminator is returned with a nil error, the next call reports io.EOF.
func ReadOne(r *bufio.Reader) (string, error) {
	var buf []byte

	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) && len(buf) > 0 {
			return string(buf), nil
		}

		if err != nil {
			return "", err
		}

		buf = append(buf, b)

		switch b {
		case '\n':
			return string(Normalize(buf)), nil
		case '\r':
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = r.ReadByte()
				buf = append(buf, '\n')
			}

			return string(Normalize(buf)), nil
		}
	}
}

// ReadAll reads every line of r using a buffer of bufSize bytes.
func ReadAll(r io.Reader, bufSize int) ([]string, error) {
	reader := bufio.NewReaderSize(r, bufSize)

	var result []string
	for {
		l, err := ReadOne(reader)
		if errors.Is(err, io.EOF) {
			return result, nil
		}

		if err != nil {
			return result, err
		}

		result = append(result, l)
	}
}
