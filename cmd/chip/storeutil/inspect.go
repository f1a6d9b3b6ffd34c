package storeutil

import (
	"fmt"
	"io"
	"os"

	"github.com/chaisql/chip"
)

// Inspect decodes a binary value and writes it to w as a JSON line.
func Inspect(data []byte, w io.Writer) error {
	v, err := chip.Decode(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, v)
	return err
}

// CanReadFromStandardInput reports whether the standard input is a
// pipe or a redirection rather than a terminal.
func CanReadFromStandardInput() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}
