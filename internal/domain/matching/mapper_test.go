package matching

import "testing"

func TestParseVacancyMap_EmptyIsIdentity(t *testing.T) {
	m, err := ParseVacancyMap("  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := m.(IdentityMapper); !ok {
		t.Fatalf("expected IdentityMapper, got %T", m)
	}
	if !Reciprocal(m, "v1", "v1") {
		t.Fatalf("identity mapper should correlate equal ids")
	}
	if Reciprocal(m, "v1", "v2") {
		t.Fatalf("identity mapper should not correlate distinct ids")
	}
}

func TestParseVacancyMap_Bidirectional(t *testing.T) {
	m, err := ParseVacancyMap("candidate-vac-1=emp-1, candidate-vac-2 = emp-2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := m.EmployerSide("candidate-vac-1"); got != "emp-1" {
		t.Fatalf("unexpected employer side %q", got)
	}
	if got := m.CandidateSide("emp-2"); got != "candidate-vac-2" {
		t.Fatalf("unexpected candidate side %q", got)
	}
	if got := m.EmployerSide("unmapped"); got != "unmapped" {
		t.Fatalf("unmapped ids should pass through, got %q", got)
	}

	if !Reciprocal(m, "candidate-vac-1", "emp-1") {
		t.Fatalf("expected reciprocity through the table")
	}
	if Reciprocal(m, "candidate-vac-1", "emp-2") {
		t.Fatalf("unexpected reciprocity across openings")
	}
}

func TestParseVacancyMap_Malformed(t *testing.T) {
	for _, raw := range []string{"a", "a=", "=b", "a=x,b=x", "a=x,a=y", "a=b,b=c"} {
		if _, err := ParseVacancyMap(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestCandidateKey_ResolvesEitherSide(t *testing.T) {
	m, err := ParseVacancyMap("candidate-vac-1=emp-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, id := range []string{"candidate-vac-1", "emp-1"} {
		if got := CandidateKey(m, id); got != "candidate-vac-1" {
			t.Fatalf("CandidateKey(%q) = %q", id, got)
		}
		if got := EmployerKey(m, id); got != "emp-1" {
			t.Fatalf("EmployerKey(%q) = %q", id, got)
		}
	}
	if got := CandidateKey(m, "emp-9"); got != "emp-9" {
		t.Fatalf("unmapped id should pass through, got %q", got)
	}
	if got := CandidateKey(IdentityMapper{}, "emp-1"); got != "emp-1" {
		t.Fatalf("identity mapper should keep the id, got %q", got)
	}
}

func TestReciprocal_EmptyIDs(t *testing.T) {
	if Reciprocal(nil, "", "") {
		t.Fatalf("empty ids are never reciprocal")
	}
}
