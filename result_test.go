package djazzle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/postgres"
	djtesting "github.com/soccer99/djazzle/testing"
)

func joinedResult(t *testing.T, conn *fakeConn, fields ...djazzle.Field) *djazzle.Result {
	t.Helper()

	client := djazzle.NewClient(djtesting.TestSchema(t), postgres.New(), conn)

	q := djazzle.Select(djazzle.T("users")).
		LeftJoin(djazzle.T("posts"), djazzle.EqCol(djazzle.F("users.id"), djazzle.F("posts.user_id")))
	if len(fields) > 0 {
		q = q.Fields(fields...)
	}

	result, err := client.Run(context.Background(), q)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func TestResult_AliasLabels(t *testing.T) {
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"name", "title"},
			Values:  [][]any{{"Dan", "First Post"}},
		},
	}
	result := joinedResult(t, conn,
		djazzle.F("users.name").As("author"),
		djazzle.F("posts.title"),
	)

	maps := result.Maps()
	if maps[0]["author"] != "Dan" {
		t.Errorf("alias label missing: %v", maps[0])
	}
	if maps[0]["posts.title"] != "First Post" {
		t.Errorf("qualified label missing: %v", maps[0])
	}
	if _, ok := maps[0]["name"]; ok {
		t.Error("driver name leaked past an explicit projection")
	}
}

func TestResult_StarUsesDriverNames(t *testing.T) {
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"id", "name"},
			Values:  [][]any{{int64(1), "Dan"}},
		},
	}
	result := joinedResult(t, conn)

	maps := result.Maps()
	if maps[0]["id"] != int64(1) || maps[0]["name"] != "Dan" {
		t.Errorf("Maps() = %v", maps)
	}
}

func TestResult_ShadowingLastWins(t *testing.T) {
	// Unqualified id projected from both joined tables: the
	// last-rendered column wins the mapping key.
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"id", "id"},
			Values:  [][]any{{int64(1), int64(100)}},
		},
	}
	result := joinedResult(t, conn, djazzle.F("id"), djazzle.F("id"))

	maps := result.Maps()
	if maps[0]["id"] != int64(100) {
		t.Errorf("id = %v, want the last-rendered value 100", maps[0]["id"])
	}

	_, err := result.MapsStrict()
	var dup djazzle.DuplicateColumnError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateColumnError, got %v", err)
	}
	if dup.Column != "id" {
		t.Errorf("Column = %q", dup.Column)
	}
}

func TestResult_QualifiedProjectionAvoidsShadowing(t *testing.T) {
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"id", "id"},
			Values:  [][]any{{int64(1), int64(100)}},
		},
	}
	result := joinedResult(t, conn, djazzle.F("users.id"), djazzle.F("posts.id"))

	maps, err := result.MapsStrict()
	if err != nil {
		t.Fatalf("MapsStrict() error = %v", err)
	}
	if maps[0]["users.id"] != int64(1) || maps[0]["posts.id"] != int64(100) {
		t.Errorf("MapsStrict() = %v", maps)
	}
}

type user struct {
	ID   int64
	Name string
}

func TestResult_Hydrate(t *testing.T) {
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"id", "name"},
			Values:  [][]any{{int64(1), "Dan"}, {int64(2), "Andrew"}},
		},
	}
	result := joinedResult(t, conn, djazzle.F("users.id").As("id"), djazzle.F("users.name").As("name"))

	records, err := result.Hydrate(djazzle.HydratorFunc(func(row map[string]any) (any, error) {
		return user{ID: row["id"].(int64), Name: row["name"].(string)}, nil
	}))
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[1].(user) != (user{ID: 2, Name: "Andrew"}) {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestResult_HydrateError(t *testing.T) {
	conn := &fakeConn{
		kind: djazzle.Blocking,
		rows: &djazzle.Rows{
			Columns: []string{"id"},
			Values:  [][]any{{int64(1)}},
		},
	}
	result := joinedResult(t, conn, djazzle.F("users.id"))

	wantErr := errors.New("bad record")
	_, err := result.Hydrate(djazzle.HydratorFunc(func(map[string]any) (any, error) {
		return nil, wantErr
	}))
	if !errors.Is(err, wantErr) {
		t.Errorf("Hydrate() error = %v, want %v", err, wantErr)
	}
}
