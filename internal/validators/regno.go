package validators

import "strings"

// NormalizeRegNo returns the registration number the way it is kept in its
// input: upper-cased. The format itself is not checked.
func NormalizeRegNo(value string) string {
	return strings.ToUpper(value)
}
