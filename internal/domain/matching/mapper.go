package matching

import (
	"fmt"
	"strings"
)

// VacancyMapper correlates the vacancy id a candidate sees with the id the
// employer posted. Both describe the same opening.
type VacancyMapper interface {
	EmployerSide(candidateVacancyID string) string
	CandidateSide(employerVacancyID string) string
}

// IdentityMapper is used when both sides share one vacancy id.
type IdentityMapper struct{}

func (IdentityMapper) EmployerSide(id string) string  { return id }
func (IdentityMapper) CandidateSide(id string) string { return id }

// StaticMapper is a fixed bidirectional table. Ids absent from the table map
// to themselves.
type StaticMapper struct {
	toEmployer  map[string]string
	toCandidate map[string]string
}

// NewStaticMapper builds a mapper from candidate-side to employer-side ids.
// The table must be one-to-one so that it can be walked in both directions.
func NewStaticMapper(pairs map[string]string) (*StaticMapper, error) {
	m := &StaticMapper{
		toEmployer:  make(map[string]string, len(pairs)),
		toCandidate: make(map[string]string, len(pairs)),
	}
	for c, e := range pairs {
		if c == "" || e == "" {
			return nil, fmt.Errorf("vacancy map: empty id in pair %q=%q", c, e)
		}
		if prev, ok := m.toCandidate[e]; ok && prev != c {
			return nil, fmt.Errorf("vacancy map: %q is mapped from both %q and %q", e, prev, c)
		}
		m.toEmployer[c] = e
		m.toCandidate[e] = c
	}
	for c := range m.toEmployer {
		if _, ok := m.toCandidate[c]; ok && m.toEmployer[c] != c {
			return nil, fmt.Errorf("vacancy map: %q appears on both sides", c)
		}
	}
	return m, nil
}

func (m *StaticMapper) EmployerSide(id string) string {
	if e, ok := m.toEmployer[id]; ok {
		return e
	}
	return id
}

func (m *StaticMapper) CandidateSide(id string) string {
	if c, ok := m.toCandidate[id]; ok {
		return c
	}
	return id
}

// ParseVacancyMap reads "cand=emp,cand2=emp2". An empty string yields the
// identity mapping.
func ParseVacancyMap(raw string) (VacancyMapper, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return IdentityMapper{}, nil
	}

	pairs := map[string]string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, e, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("vacancy map: malformed pair %q", part)
		}
		c, e = strings.TrimSpace(c), strings.TrimSpace(e)
		if prev, dup := pairs[c]; dup && prev != e {
			return nil, fmt.Errorf("vacancy map: %q mapped twice", c)
		}
		pairs[c] = e
	}
	return NewStaticMapper(pairs)
}

// CandidateKey returns the id a candidate like on id is stored under. Either
// side's id of a mapped opening resolves to its candidate-side id.
func CandidateKey(m VacancyMapper, id string) string {
	if m == nil {
		return id
	}
	return m.CandidateSide(m.EmployerSide(id))
}

// EmployerKey returns the employer-side id of the opening id refers to.
func EmployerKey(m VacancyMapper, id string) string {
	if m == nil {
		return id
	}
	return m.EmployerSide(id)
}

// Reciprocal reports whether a candidate like on candidateVacancyID and an
// employer like on employerVacancyID concern the same opening.
func Reciprocal(m VacancyMapper, candidateVacancyID, employerVacancyID string) bool {
	if m == nil {
		m = IdentityMapper{}
	}
	if candidateVacancyID == "" || employerVacancyID == "" {
		return false
	}
	return m.EmployerSide(candidateVacancyID) == employerVacancyID
}
