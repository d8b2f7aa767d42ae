// Package report renders stores, weights and tuning runs for humans.
// The text format is illustrative and not meant to be parsed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// DumpStore writes one line per row in insertion order:
//
//	[ 6.0000 -4.0000 5.0000 ][ 4.0000 ]
func DumpStore(w io.Writer, store *dataset.Store) error {
	for _, r := range store.All() {
		if _, err := fmt.Fprintf(w, "%s[ %.4f ]\n", FormatWeights(r.Features), r.Target); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// FormatWeights renders a vector as "[ v1 v2 ... ]" with four decimals.
func FormatWeights(values []float64) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, v := range values {
		fmt.Fprintf(&b, "%.4f ", v)
	}
	b.WriteString("]")
	return b.String()
}
