package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
)

func TestLikeRepository_RecordIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewLikeRepository()

	created, err := r.RecordCandidateLike(ctx, "c1", "v1")
	if err != nil || !created {
		t.Fatalf("first record: created=%v err=%v", created, err)
	}
	created, err = r.RecordCandidateLike(ctx, "c1", "v1")
	if err != nil || created {
		t.Fatalf("second record: created=%v err=%v", created, err)
	}

	likes, err := r.ListCandidateLikes(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(likes) != 1 || likes[0].VacancyID != "v1" {
		t.Fatalf("unexpected likes: %+v", likes)
	}
}

func TestLikeRepository_SidesAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := NewLikeRepository()

	_, _ = r.RecordCandidateLike(ctx, "c1", "v1")
	has, _ := r.HasEmployerLike(ctx, "v1", "c1")
	if has {
		t.Fatalf("candidate like must not show up as employer like")
	}

	_, _ = r.RecordEmployerLike(ctx, "v1", "c1")
	_, _ = r.RecordEmployerLike(ctx, "v2", "c2")

	all, _ := r.ListEmployerLikes(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 employer likes, got %d", len(all))
	}
	filtered, _ := r.ListEmployerLikes(ctx, "v2")
	if len(filtered) != 1 || filtered[0].CandidateID != "c2" {
		t.Fatalf("unexpected filtered likes: %+v", filtered)
	}
}

func TestLikeRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewLikeRepository()

	_, _ = r.RecordEmployerLike(ctx, "v1", "c1")
	removed, _ := r.DeleteEmployerLike(ctx, "v1", "c1")
	if !removed {
		t.Fatalf("expected removal")
	}
	removed, _ = r.DeleteEmployerLike(ctx, "v1", "c1")
	if removed {
		t.Fatalf("second removal should report nothing removed")
	}
	if has, _ := r.HasEmployerLike(ctx, "v1", "c1"); has {
		t.Fatalf("like still present")
	}
}

func TestMatchRepository_CreateIsInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	r := NewMatchRepository()

	first, created, err := r.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c1", VacancyTitle: "Go dev"})
	if err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}

	second, created, err := r.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c1", VacancyTitle: "changed"})
	if err != nil || created {
		t.Fatalf("second create: created=%v err=%v", created, err)
	}
	if second.ID != first.ID || second.VacancyTitle != "Go dev" {
		t.Fatalf("expected stored match back, got %+v", second)
	}
}

func TestMatchRepository_ConcurrentCreateYieldsOneRow(t *testing.T) {
	ctx := context.Background()
	r := NewMatchRepository()

	const n = 32
	ids := make([]uuid.UUID, n)
	createdCount := 0
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, created, err := r.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c1"})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			mu.Lock()
			ids[i] = m.ID
			if created {
				createdCount++
			}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if r.Count() != 1 {
		t.Fatalf("expected exactly one match, got %d", r.Count())
	}
	if createdCount != 1 {
		t.Fatalf("expected exactly one creator, got %d", createdCount)
	}
	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("callers observed different match ids")
		}
	}
}

func TestMatchRepository_ListsOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	r := NewMatchRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	_, _, _ = r.Create(ctx, match.Match{VacancyID: "v2", CandidateID: "c1"})
	_, _, _ = r.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c1"})
	_, _, _ = r.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c2"})

	forC1, _ := r.ListForCandidate(ctx, "c1")
	if len(forC1) != 2 || forC1[0].VacancyID != "v2" || forC1[1].VacancyID != "v1" {
		t.Fatalf("unexpected candidate list: %+v", forC1)
	}

	forV1, _ := r.ListForEmployer(ctx, "v1")
	if len(forV1) != 2 || forV1[0].CandidateID != "c1" || forV1[1].CandidateID != "c2" {
		t.Fatalf("unexpected employer list: %+v", forV1)
	}

	if none, _ := r.ListForEmployer(ctx); len(none) != 0 {
		t.Fatalf("expected empty list without vacancies")
	}
}

func TestChatRepository_RefusesUnknownMatch(t *testing.T) {
	ctx := context.Background()
	r := NewChatRepository(NewMatchRepository())

	id := uuid.New()
	_, err := r.Append(ctx, chat.Message{MatchID: id, Sender: chat.SenderCandidate, Text: "hi"})
	if !errors.Is(err, chat.ErrUnknownMatch) {
		t.Fatalf("expected ErrUnknownMatch, got %v", err)
	}
	msgs, _ := r.List(ctx, id)
	if len(msgs) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestChatRepository_OrderSurvivesClockSkew(t *testing.T) {
	ctx := context.Background()
	matches := NewMatchRepository()
	m, _, _ := matches.Create(ctx, match.Match{VacancyID: "v1", CandidateID: "c1"})

	r := NewChatRepository(matches)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{base, base.Add(-time.Minute), base.Add(-time.Minute), base.Add(time.Second)}
	i := 0
	r.now = func() time.Time {
		ts := stamps[i]
		i++
		return ts
	}

	texts := []string{"one", "two", "three", "four"}
	for _, txt := range texts {
		if _, err := r.Append(ctx, chat.Message{MatchID: m.ID, Sender: chat.SenderEmployer, Text: txt}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	msgs, _ := r.List(ctx, m.ID)
	if len(msgs) != len(texts) {
		t.Fatalf("expected %d messages, got %d", len(texts), len(msgs))
	}
	for i := range texts {
		if msgs[i].Text != texts[i] {
			t.Fatalf("position %d: expected %q got %q", i, texts[i], msgs[i].Text)
		}
		if i > 0 && msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Fatalf("created_at went backwards at %d", i)
		}
	}
}
