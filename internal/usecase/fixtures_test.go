package usecase

import (
	"context"
	"sync"
	"testing"

	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/event"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/vacancy"
	"jobswipe/internal/repository/memory"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []event.Event
}

func (n *recordingNotifier) Publish(_ context.Context, evt event.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
	return nil
}

func (n *recordingNotifier) ofType(typ string) []event.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]event.Event, 0)
	for _, e := range n.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	likes      *memory.LikeRepository
	matches    *memory.MatchRepository
	messages   *memory.ChatRepository
	notifier   *recordingNotifier
	reconciler *Reconciler
	swipe      *Swipe
	matchUC    *Matches
	chat       *Chat
}

func newFixture(t *testing.T, vacancyMap string) *fixture {
	t.Helper()

	mapper, err := matching.ParseVacancyMap(vacancyMap)
	if err != nil {
		t.Fatalf("vacancy map: %v", err)
	}

	vacancies := memory.NewVacancyRepository(
		vacancy.Vacancy{ID: "emp-1", CompanyID: "acme", Company: "Acme", Title: "Go Engineer"},
		vacancy.Vacancy{ID: "emp-2", CompanyID: "acme", Company: "Acme", Title: "SRE"},
		vacancy.Vacancy{ID: "other-1", CompanyID: "globex", Company: "Globex", Title: "Analyst"},
	)
	candidates := memory.NewCandidateRepository(
		candidate.Candidate{ID: "C1", Name: "Ada"},
		candidate.Candidate{ID: "C2", Name: "Grace"},
	)

	f := &fixture{
		likes:    memory.NewLikeRepository(),
		matches:  memory.NewMatchRepository(),
		notifier: &recordingNotifier{},
	}
	f.messages = memory.NewChatRepository(f.matches)
	f.reconciler = NewReconciler(f.likes, f.matches, vacancies, candidates, mapper, nil)
	f.swipe = NewSwipeUsecase(f.likes, vacancies, candidates, f.reconciler, f.notifier, nil)
	f.matchUC = NewMatchUsecase(f.matches, vacancies, nil)
	f.chat = NewChatUsecase(f.messages, f.matchUC, f.notifier, 20, nil)
	return f
}

var (
	candidateC1    = Actor{Role: RoleCandidate, ID: "C1"}
	candidateC2    = Actor{Role: RoleCandidate, ID: "C2"}
	employerAcme   = Actor{Role: RoleEmployer, ID: "acme"}
	employerGlobex = Actor{Role: RoleEmployer, ID: "globex"}
)
