// Package testing provides test utilities for djazzle.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/soccer99/djazzle"
)

// TestProject builds the DBML project backing the shared test schema:
// users, posts and orders tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("name", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("metadata", "jsonb"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	return project
}

// TestSchema creates the shared schema from the DBML project. Every
// column is nullable, matching NewFromDBML's default.
func TestSchema(t *testing.T) *djazzle.Schema {
	t.Helper()

	schema, err := djazzle.NewFromDBML(TestProject())
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

// StrictSchema creates a natively-defined schema with exact nullability
// for validator tests: users(id, name, email, age, active, metadata)
// where id and name are NOT NULL.
func StrictSchema(t *testing.T) *djazzle.Schema {
	t.Helper()

	schema, err := djazzle.NewSchema(djazzle.TableDef{
		Name: "users",
		Columns: []djazzle.Column{
			{Name: "id", Type: djazzle.TypeInteger, PrimaryKey: true},
			{Name: "name", Type: djazzle.TypeText},
			{Name: "email", Type: djazzle.TypeText, Nullable: true},
			{Name: "age", Type: djazzle.TypeInteger, Nullable: true},
			{Name: "active", Type: djazzle.TypeBoolean, Nullable: true},
			{Name: "metadata", Type: djazzle.TypeStructured, Nullable: true},
			{Name: "owner_id", Type: djazzle.TypeForeignKey, Nullable: true},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}
