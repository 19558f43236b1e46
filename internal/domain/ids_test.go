package domain

import (
	"strings"
	"testing"
)

func TestValidID(t *testing.T) {
	ok := []string{"c1", "candidate-vac-1", "emp_1", "acme:42", "a.b"}
	for _, s := range ok {
		if !ValidID(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	bad := []string{"", " ", "a b", "x/y", "naïve", strings.Repeat("a", MaxIDLength+1)}
	for _, s := range bad {
		if ValidID(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
