package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobswipe/internal/domain/event"
)

func TestSwipe_CandidateFirstThenEmployer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "candidate-vac-1=emp-1")

	res, err := f.swipe.LikeVacancy(ctx, "C1", "candidate-vac-1")
	if err != nil {
		t.Fatalf("candidate like: %v", err)
	}
	if !res.LikeCreated || res.Match != nil {
		t.Fatalf("expected recorded like without match, got %+v", res)
	}
	if list, _ := f.matchUC.ListMatches(ctx, candidateC1, ""); len(list) != 0 {
		t.Fatalf("expected no matches yet, got %d", len(list))
	}

	res, err = f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil {
		t.Fatalf("employer like: %v", err)
	}
	if res.Match == nil || !res.MatchCreated {
		t.Fatalf("expected new match, got %+v", res)
	}
	m := *res.Match
	if m.VacancyID != "emp-1" || m.CandidateID != "C1" {
		t.Fatalf("unexpected match keys: %+v", m)
	}
	if m.CandidateName != "Ada" || m.VacancyTitle != "Go Engineer" || m.Company != "Acme" {
		t.Fatalf("display fields not denormalized: %+v", m)
	}

	again, err := f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil {
		t.Fatalf("repeat employer like: %v", err)
	}
	if again.LikeCreated || again.MatchCreated {
		t.Fatalf("repeat like must be a no-op, got %+v", again)
	}
	if again.Match == nil || again.Match.ID != m.ID {
		t.Fatalf("repeat like should surface the same match")
	}

	direct, err := f.reconciler.TryMatch(ctx, TryMatchInput{
		CandidateVacancyID: "candidate-vac-1",
		EmployerVacancyID:  "emp-1",
		CandidateID:        "C1",
	})
	if err != nil {
		t.Fatalf("try match: %v", err)
	}
	if direct.Match == nil || direct.Match.ID != m.ID || direct.Created {
		t.Fatalf("TryMatch should return the existing match, got %+v", direct)
	}

	if f.matches.Count() != 1 {
		t.Fatalf("expected one match, got %d", f.matches.Count())
	}
	if got := len(f.notifier.ofType(event.TypeMatchCreated)); got != 1 {
		t.Fatalf("expected one match_created event, got %d", got)
	}

	forCandidate, _ := f.matchUC.ListMatches(ctx, candidateC1, "")
	forEmployer, _ := f.matchUC.ListMatches(ctx, employerAcme, "emp-1")
	if len(forCandidate) != 1 || len(forEmployer) != 1 || forCandidate[0].ID != forEmployer[0].ID {
		t.Fatalf("both sides should list the same match")
	}
}

func TestSwipe_EmployerFirstYieldsSameMatch(t *testing.T) {
	ctx := context.Background()

	candidateFirst := newFixture(t, "")
	_, _ = candidateFirst.swipe.LikeVacancy(ctx, "C1", "emp-1")
	a, err := candidateFirst.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil || a.Match == nil {
		t.Fatalf("candidate-first: match=%v err=%v", a.Match, err)
	}

	employerFirst := newFixture(t, "")
	res, err := employerFirst.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil || res.Match != nil {
		t.Fatalf("employer like alone should not match: %+v err=%v", res, err)
	}
	b, err := employerFirst.swipe.LikeVacancy(ctx, "C1", "emp-1")
	if err != nil || b.Match == nil || !b.MatchCreated {
		t.Fatalf("employer-first: %+v err=%v", b, err)
	}

	if a.Match.VacancyID != b.Match.VacancyID || a.Match.CandidateID != b.Match.CandidateID {
		t.Fatalf("order changed the match: %+v vs %+v", a.Match, b.Match)
	}
	if candidateFirst.matches.Count() != 1 || employerFirst.matches.Count() != 1 {
		t.Fatalf("each order must yield exactly one match")
	}
}

func TestSwipe_ConcurrentReconciliation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	_, _ = f.likes.RecordCandidateLike(ctx, "C1", "emp-1")
	_, _ = f.likes.RecordEmployerLike(ctx, "emp-1", "C1")

	const n = 16
	outs := make([]MatchOutcome, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				outs[i], errs[i] = f.reconciler.AfterCandidateLike(ctx, "C1", "emp-1")
			} else {
				outs[i], errs[i] = f.reconciler.AfterEmployerLike(ctx, "emp-1", "C1")
			}
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d observed error: %v", i, errs[i])
		}
		if outs[i].Match == nil || outs[i].Match.ID != outs[0].Match.ID {
			t.Fatalf("caller %d observed a different match", i)
		}
		if outs[i].Created {
			created++
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one creator, got %d", created)
	}
	if f.matches.Count() != 1 {
		t.Fatalf("expected one stored match, got %d", f.matches.Count())
	}
}

func TestSwipe_ConcurrentOppositeLikes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := f.swipe.LikeVacancy(ctx, "C1", "emp-1"); err != nil {
			t.Errorf("candidate like: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1"); err != nil {
			t.Errorf("employer like: %v", err)
		}
	}()
	wg.Wait()

	if f.matches.Count() != 1 {
		t.Fatalf("expected the pair to match exactly once, got %d", f.matches.Count())
	}
}

func TestSwipe_DuplicateCandidateLikeLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	_, _ = f.swipe.LikeVacancy(ctx, "C1", "emp-1")
	before, _ := f.swipe.ListCandidateLikes(ctx, "C1")

	res, err := f.swipe.LikeVacancy(ctx, "C1", "emp-1")
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if res.LikeCreated {
		t.Fatalf("repeat like should not be created")
	}

	after, _ := f.swipe.ListCandidateLikes(ctx, "C1")
	if len(before) != 1 || len(after) != 1 || before[0] != after[0] {
		t.Fatalf("likes changed: before=%v after=%v", before, after)
	}
}

func TestSwipe_MappedVacancyIsNotReciprocalAcrossOpenings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "candidate-vac-1=emp-1,candidate-vac-2=emp-2")

	_, _ = f.swipe.LikeVacancy(ctx, "C1", "candidate-vac-2")
	res, err := f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil {
		t.Fatalf("employer like: %v", err)
	}
	if res.Match != nil {
		t.Fatalf("likes on different openings must not match")
	}

	out, err := f.reconciler.TryMatch(ctx, TryMatchInput{
		CandidateVacancyID: "candidate-vac-2",
		EmployerVacancyID:  "emp-1",
		CandidateID:        "C1",
	})
	if err != nil || out.Match != nil {
		t.Fatalf("TryMatch should report no match, got %+v err=%v", out, err)
	}
}

func TestSwipe_MappedEmployerSideIDMatchesInEitherOrder(t *testing.T) {
	ctx := context.Background()
	const vacancyMap = "candidate-vac-1=emp-1"

	candidateFirst := newFixture(t, vacancyMap)
	if _, err := candidateFirst.swipe.LikeVacancy(ctx, "C1", "emp-1"); err != nil {
		t.Fatalf("candidate like: %v", err)
	}
	a, err := candidateFirst.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if err != nil || a.Match == nil || !a.MatchCreated {
		t.Fatalf("candidate-first should match, got %+v err=%v", a, err)
	}

	employerFirst := newFixture(t, vacancyMap)
	if _, err := employerFirst.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1"); err != nil {
		t.Fatalf("employer like: %v", err)
	}
	b, err := employerFirst.swipe.LikeVacancy(ctx, "C1", "emp-1")
	if err != nil || b.Match == nil || !b.MatchCreated {
		t.Fatalf("employer-first should match, got %+v err=%v", b, err)
	}
	if a.Match.VacancyID != b.Match.VacancyID || a.Match.CandidateID != b.Match.CandidateID {
		t.Fatalf("orders disagree: %+v vs %+v", *a.Match, *b.Match)
	}

	f := candidateFirst
	again, err := f.swipe.LikeVacancy(ctx, "C1", "candidate-vac-1")
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if again.LikeCreated || again.MatchCreated {
		t.Fatalf("both ids name one opening, repeat must be a no-op: %+v", again)
	}
	likes, _ := f.swipe.ListCandidateLikes(ctx, "C1")
	if len(likes) != 1 || likes[0] != "candidate-vac-1" {
		t.Fatalf("expected one like under the candidate-side id, got %v", likes)
	}
	if f.matches.Count() != 1 {
		t.Fatalf("expected one match, got %d", f.matches.Count())
	}

	if err := f.swipe.WithdrawVacancyLike(ctx, "C1", "emp-1"); err != nil {
		t.Fatalf("withdraw by employer-side id: %v", err)
	}
	if likes, _ := f.swipe.ListCandidateLikes(ctx, "C1"); len(likes) != 0 {
		t.Fatalf("expected like removed, got %v", likes)
	}
}

func TestSwipe_WithdrawingLikeKeepsMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	_, _ = f.swipe.LikeVacancy(ctx, "C1", "emp-1")
	res, _ := f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	if res.Match == nil {
		t.Fatalf("expected match")
	}

	if err := f.swipe.WithdrawVacancyLike(ctx, "C1", "emp-1"); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if err := f.swipe.WithdrawVacancyLike(ctx, "C1", "emp-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second withdraw: expected ErrNotFound, got %v", err)
	}

	got, err := f.matchUC.GetMatch(ctx, candidateC1, res.Match.ID)
	if err != nil || got.ID != res.Match.ID {
		t.Fatalf("match should survive withdrawal: %v", err)
	}

	again, err := f.swipe.LikeVacancy(ctx, "C1", "emp-1")
	if err != nil || again.MatchCreated || again.Match == nil || again.Match.ID != res.Match.ID {
		t.Fatalf("re-like should surface the original match: %+v err=%v", again, err)
	}
}

func TestSwipe_EmployerCannotLikeForeignVacancy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	if _, err := f.swipe.LikeCandidate(ctx, "acme", "other-1", "C1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.swipe.WithdrawCandidateLike(ctx, "acme", "other-1", "C1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on withdraw, got %v", err)
	}
}

func TestSwipe_InputValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	if _, err := f.swipe.LikeVacancy(ctx, "C1", "bad id"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.swipe.LikeVacancy(ctx, "C1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown vacancy, got %v", err)
	}
	if _, err := f.swipe.LikeCandidate(ctx, "acme", "emp-1", "nobody"); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
	if likes, _ := f.likes.ListEmployerLikes(ctx); len(likes) != 0 {
		t.Fatalf("rejected likes must not be stored")
	}
}

func TestSwipe_ListEmployerLikesScopedToCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")

	_, _ = f.swipe.LikeCandidate(ctx, "acme", "emp-1", "C1")
	_, _ = f.swipe.LikeCandidate(ctx, "acme", "emp-2", "C2")
	_, _ = f.swipe.LikeCandidate(ctx, "globex", "other-1", "C1")

	acme, err := f.swipe.ListEmployerLikes(ctx, "acme")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(acme) != 2 {
		t.Fatalf("expected 2 acme likes, got %d", len(acme))
	}

	none, err := f.swipe.ListEmployerLikes(ctx, "initech")
	if err != nil || len(none) != 0 {
		t.Fatalf("company without vacancies should see nothing: %v %v", none, err)
	}
}
