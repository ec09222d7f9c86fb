package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/code-tool/prefix-strip/pkg/line"
)

const promptText = "File Name: "

var errNoFileName = errors.New("file name not set")

func promptFileName(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, promptText); err != nil {
		return "", err
	}

	l, err := line.ReadOne(bufio.NewReader(in))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("can't read file name: %w", err)
	}

	name := strings.TrimSuffix(l, "\n")
	if name == "" {
		return "", errNoFileName
	}

	return name, nil
}
