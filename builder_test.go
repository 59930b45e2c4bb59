package djazzle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/postgres"
)

func TestBuilder_InsertRejectsWhere(t *testing.T) {
	_, err := djazzle.Insert(djazzle.T("users")).
		Values(djazzle.Row{"name": djazzle.Text("Dan")}).
		Where(djazzle.Eq(djazzle.F("id"), djazzle.Int(1))).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
	if cerr.Op != "Where" {
		t.Errorf("Op = %q, want Where", cerr.Op)
	}
}

func TestBuilder_SelectRejectsValues(t *testing.T) {
	_, err := djazzle.Select(djazzle.T("users")).
		Values(djazzle.Row{"name": djazzle.Text("Dan")}).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
	if cerr.Op != "Values" {
		t.Errorf("Op = %q, want Values", cerr.Op)
	}
}

func TestBuilder_SelectRejectsReturning(t *testing.T) {
	_, err := djazzle.Select(djazzle.T("users")).
		Returning(djazzle.F("id")).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
}

func TestBuilder_DeleteRejectsOrderBy(t *testing.T) {
	_, err := djazzle.Delete(djazzle.T("users")).
		OrderBy(djazzle.F("id"), djazzle.ASC).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
}

func TestBuilder_UpdateRejectsOffset(t *testing.T) {
	_, err := djazzle.Update(djazzle.T("users")).
		Set(djazzle.F("name"), djazzle.Text("x")).
		Offset(10).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
}

func TestBuilder_NegativeLimit(t *testing.T) {
	_, err := djazzle.Select(djazzle.T("users")).Limit(-1).Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
	if !strings.Contains(cerr.Error(), "non-negative") {
		t.Errorf("Error() = %q", cerr.Error())
	}
}

func TestBuilder_JoinRequiresCondition(t *testing.T) {
	_, err := djazzle.Select(djazzle.T("users")).
		LeftJoin(djazzle.T("posts"), nil).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
}

func TestBuilder_JoinOnNonSelect(t *testing.T) {
	_, err := djazzle.Delete(djazzle.T("users")).
		InnerJoin(djazzle.T("posts"), djazzle.EqCol(djazzle.F("users.id"), djazzle.F("posts.user_id"))).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
}

func TestBuilder_InsertRequiresValues(t *testing.T) {
	_, err := djazzle.Insert(djazzle.T("users")).Build()
	if err == nil {
		t.Fatal("expected error for INSERT without rows")
	}
}

func TestBuilder_UpdateRequiresAssignments(t *testing.T) {
	_, err := djazzle.Update(djazzle.T("users")).Build()
	if err == nil {
		t.Fatal("expected error for UPDATE without assignments")
	}
}

func TestBuilder_StickyError(t *testing.T) {
	// The first misuse is reported even after further valid calls.
	_, err := djazzle.Insert(djazzle.T("users")).
		Limit(10).
		Values(djazzle.Row{"name": djazzle.Text("Dan")}).
		Build()

	var cerr djazzle.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %v", err)
	}
	if cerr.Op != "Limit" {
		t.Errorf("Op = %q, want Limit", cerr.Op)
	}
}

func TestBuilder_InvalidIdentifiers(t *testing.T) {
	if _, err := djazzle.TryT("users; DROP TABLE"); err == nil {
		t.Error("TryT accepted an invalid table name")
	}
	if _, err := djazzle.TryF(`na"me`); err == nil {
		t.Error("TryF accepted an invalid column name")
	}
	if _, err := djazzle.TryF("a.b.c"); err == nil {
		t.Error("TryF accepted a doubly-qualified name")
	}
}

func TestBuilder_PanicConstructors(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("T() did not panic on invalid identifier")
		}
	}()
	djazzle.T("bad name!")
}

func TestBuilder_QualifiedFieldParsing(t *testing.T) {
	f := djazzle.F("users.id")
	if f.Table != "users" || f.Name != "id" {
		t.Errorf("F(users.id) = %+v", f)
	}
	if f.Label() != "users.id" {
		t.Errorf("Label() = %q", f.Label())
	}
}

func TestBuilder_MustBuild(t *testing.T) {
	ast := djazzle.Select(djazzle.T("users")).MustBuild()
	if ast.Target.Name != "users" {
		t.Errorf("Target = %+v", ast.Target)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic on construction error")
		}
	}()
	djazzle.Select(djazzle.T("users")).Limit(-1).MustBuild()
}

func TestBuilder_SetAccumulates(t *testing.T) {
	stmt, err := djazzle.Update(djazzle.T("users")).
		SetMap(djazzle.Row{"name": djazzle.Text("a")}).
		Set(djazzle.F("age"), djazzle.Int(30)).
		Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stmt.SQL != `UPDATE "users" SET "age" = $1, "name" = $2` {
		t.Errorf("SQL = %q", stmt.SQL)
	}
}
