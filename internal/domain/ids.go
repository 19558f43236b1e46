package domain

import "regexp"

const MaxIDLength = 64

var idRe = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// ValidID reports whether s is a well-formed external identifier for a
// candidate, vacancy or company.
func ValidID(s string) bool {
	if s == "" || len(s) > MaxIDLength {
		return false
	}
	return idRe.MatchString(s)
}
