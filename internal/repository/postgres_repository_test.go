package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"jobswipe/internal/database"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: want %d values, got %d", len(dest), len(r.values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

// fakeDB answers QueryRow calls from a queue and records the queries.
type fakeDB struct {
	rows    []fakeRow
	queries []string
}

func (f *fakeDB) QueryRow(_ context.Context, query string, _ ...any) database.Row {
	f.queries = append(f.queries, query)
	if len(f.rows) == 0 {
		return fakeRow{err: errors.New("unexpected query")}
	}
	r := f.rows[0]
	f.rows = f.rows[1:]
	return r
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not implemented")
}
func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDB) SQLDB() *sql.DB { return nil }

func matchRow(m match.Match) fakeRow {
	return fakeRow{values: []any{m.ID, m.VacancyID, m.CandidateID, m.CandidateName, m.VacancyTitle, m.Company, m.CreatedAt}}
}

func TestPostgresMatchRepository_CreateInserts(t *testing.T) {
	want := match.Match{ID: uuid.New(), VacancyID: "emp-1", CandidateID: "C1", CreatedAt: time.Now().UTC()}
	db := &fakeDB{rows: []fakeRow{matchRow(want)}}

	got, created, err := NewPostgresMatchRepository(db).Create(context.Background(), want)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created || got.ID != want.ID {
		t.Fatalf("expected inserted match, got %+v created=%v", got, created)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected a single statement, got %d", len(db.queries))
	}
}

func TestPostgresMatchRepository_CreateConflictReturnsExisting(t *testing.T) {
	existing := match.Match{ID: uuid.New(), VacancyID: "emp-1", CandidateID: "C1", CreatedAt: time.Now().UTC()}
	db := &fakeDB{rows: []fakeRow{{err: database.ErrNoRows}, matchRow(existing)}}

	got, created, err := NewPostgresMatchRepository(db).Create(context.Background(), match.Match{VacancyID: "emp-1", CandidateID: "C1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created || got.ID != existing.ID {
		t.Fatalf("expected existing match, got %+v created=%v", got, created)
	}
	if len(db.queries) != 2 {
		t.Fatalf("expected insert then lookup, got %d queries", len(db.queries))
	}
}

func TestPostgresMatchRepository_GetNotFound(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{err: database.ErrNoRows}}}
	if _, err := NewPostgresMatchRepository(db).Get(context.Background(), uuid.New()); !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("expected match.ErrNotFound, got %v", err)
	}
}

func TestPostgresChatRepository_AppendUnknownMatch(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{err: &pgconn.PgError{Code: postgres.ForeignKeyViolation}}}}

	_, err := NewPostgresChatRepository(db).Append(context.Background(), chat.Message{
		MatchID: uuid.New(),
		Sender:  chat.SenderCandidate,
		Text:    "hi",
	})
	if !errors.Is(err, chat.ErrUnknownMatch) {
		t.Fatalf("expected chat.ErrUnknownMatch, got %v", err)
	}
}

func TestPostgresChatRepository_AppendStampsServerTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: []fakeRow{{values: []any{at}}}}

	msg, err := NewPostgresChatRepository(db).Append(context.Background(), chat.Message{
		MatchID: uuid.New(),
		Sender:  chat.SenderEmployer,
		Text:    "Hello",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if msg.ID == uuid.Nil || !msg.CreatedAt.Equal(at) {
		t.Fatalf("unexpected message: %+v", msg)
	}
}
