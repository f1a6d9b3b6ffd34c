package storeutil

import (
	"fmt"
	"io"

	"github.com/chaisql/chip"
)

// Dump writes every entry of the store to w in ascending key order,
// one tab separated key and JSON value per line.
func Dump(s *chip.Store, w io.Writer) error {
	return s.Walk(func(key string, v chip.Value) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n", key, v)
		return err
	})
}
