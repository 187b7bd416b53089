package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/myinvois-pro/internal/domain"
)

// sequenceWidth is the zero-padded width of the numeric portion of invoice
// numbers and product codes (INV0001, P0001).
const sequenceWidth = 4

// NextSequenceNumber derives the next identifier in a prefixed numbering
// scheme. With no prior number it returns prefix + "0001". Otherwise it strips
// the prefix, parses the remainder as a base-10 integer, increments and
// re-renders zero-padded to 4 digits. Values past 9999 widen the numeric
// portion instead of failing (INV9999 -> INV10000); lexicographic ordering of
// the full string is only reliable while the width stays fixed.
func NextSequenceNumber(prefix, last string) (string, error) {
	if last == "" {
		return fmt.Sprintf("%s%0*d", prefix, sequenceWidth, 1), nil
	}
	rest := strings.TrimPrefix(last, prefix)
	n, err := strconv.Atoi(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %q does not decompose into %q + integer", domain.ErrInvalidSequenceFormat, last, prefix)
	}
	return fmt.Sprintf("%s%0*d", prefix, sequenceWidth, n+1), nil
}

// LatestNumber returns the lexicographic maximum of a set of full identifiers
// (the caller-side tie-break rule for "last number", centralized). Returns ""
// for an empty set. String comparison, not numeric: correct only while the
// numeric portion never exceeds the fixed padded width.
func LatestNumber(numbers []string) string {
	latest := ""
	for _, n := range numbers {
		if n > latest {
			latest = n
		}
	}
	return latest
}
