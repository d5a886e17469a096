package repository

import (
	"context"
	"testing"

	"autohire/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		if i >= len(r.vals) {
			break
		}
		if d, ok := dest[i].(*int); ok {
			*d = r.vals[i].(int)
		}
	}
	return nil
}

type fakeDB struct {
	execAffected int64
	execErr      error
	execCount    int
	row          database.Row
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }

func (f *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	f.execCount++
	return f.execAffected, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return f.row
}

func TestApplicationRepository_CreateIfAbsent(t *testing.T) {
	db := &fakeDB{execAffected: 1}
	r := NewPostgresApplicationRepository(db)

	created, err := r.CreateIfAbsent(context.Background(), uuid.New(), uuid.New(), 72)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true when a row was inserted")
	}

	db.execAffected = 0 // conflict path: row already there
	created, err = r.CreateIfAbsent(context.Background(), uuid.New(), uuid.New(), 72)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created {
		t.Fatalf("expected created=false on conflict")
	}
}

func TestApplicationRepository_CreateIfAbsent_NilIDs(t *testing.T) {
	db := &fakeDB{execAffected: 1}
	r := NewPostgresApplicationRepository(db)

	created, err := r.CreateIfAbsent(context.Background(), uuid.Nil, uuid.New(), 72)
	if err != nil || created {
		t.Fatalf("nil job id must be a no-op, got created=%v err=%v", created, err)
	}
	if db.execCount != 0 {
		t.Fatalf("no statement expected for nil ids")
	}
}

func TestApplicationRepository_Exists(t *testing.T) {
	r := NewPostgresApplicationRepository(&fakeDB{row: fakeRow{vals: []any{1}}})
	ok, err := r.Exists(context.Background(), uuid.New(), uuid.New())
	if err != nil || !ok {
		t.Fatalf("expected exists=true, got %v err=%v", ok, err)
	}

	r = NewPostgresApplicationRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	ok, err = r.Exists(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("no-rows must not be an error: %v", err)
	}
	if ok {
		t.Fatalf("expected exists=false for no rows")
	}
}
