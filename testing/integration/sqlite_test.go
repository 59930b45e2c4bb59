package integration

import (
	"context"
	"testing"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/sqlite"
	djtesting "github.com/soccer99/djazzle/testing"
)

// SQLite runs in-process, so no container is needed.

func setupSQLite(t *testing.T) *djazzle.Client {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}

	ctx := context.Background()
	for _, ddl := range []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			email TEXT,
			age INTEGER,
			active BOOLEAN,
			metadata TEXT
		)`,
		`CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			title TEXT,
			views INTEGER,
			published BOOLEAN
		)`,
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			total REAL,
			status TEXT
		)`,
	} {
		if err := db.Exec(ctx, ddl, nil); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
	}

	return djazzle.NewClient(djtesting.TestSchema(t), sqlite.New(), db)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := setupSQLite(t)

	// SQLite supports RETURNING.
	result, err := client.Run(ctx,
		djazzle.Insert(djazzle.T("users")).
			Values(djazzle.Row{"name": djazzle.Text("Dan"), "age": djazzle.Int(34)}).
			Returning(djazzle.F("id"), djazzle.F("name")))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if result.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", result.Len())
	}
	if result.Maps()[0]["name"] != "Dan" {
		t.Errorf("Maps() = %v", result.Maps())
	}

	result, err = client.Run(ctx,
		djazzle.Select(djazzle.T("users")).
			Fields(djazzle.F("name"), djazzle.F("age")).
			Where(djazzle.Between(djazzle.F("age"), djazzle.Int(30), djazzle.Int(40))))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if result.Len() != 1 {
		t.Errorf("Len() = %d, want 1", result.Len())
	}

	_, err = client.Run(ctx,
		djazzle.Delete(djazzle.T("users")).
			Where(djazzle.Eq(djazzle.F("name"), djazzle.Text("Dan"))))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	result, err = client.Run(ctx, djazzle.Select(djazzle.T("users")))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if result.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", result.Len())
	}
}

func TestSQLiteHydrate(t *testing.T) {
	ctx := context.Background()
	client := setupSQLite(t)

	_, err := client.Run(ctx,
		djazzle.Insert(djazzle.T("users")).
			Values(
				djazzle.Row{"name": djazzle.Text("Dan"), "age": djazzle.Int(34)},
				djazzle.Row{"name": djazzle.Text("Andrew"), "age": djazzle.Int(28)},
			))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	result, err := client.Run(ctx,
		djazzle.Select(djazzle.T("users")).
			Fields(djazzle.F("name"), djazzle.F("age")).
			OrderBy(djazzle.F("age"), djazzle.DESC))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}

	type user struct {
		Name string
		Age  int64
	}
	records, err := result.Hydrate(djazzle.HydratorFunc(func(row map[string]any) (any, error) {
		return user{Name: row["name"].(string), Age: row["age"].(int64)}, nil
	}))
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].(user).Name != "Dan" {
		t.Errorf("records[0] = %+v", records[0])
	}
}
