package djazzle_test

import (
	"fmt"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/mysql"
	"github.com/soccer99/djazzle/postgres"
)

func ExampleSelect() {
	stmt, _ := djazzle.Select(djazzle.T("users")).
		Fields(djazzle.F("id"), djazzle.F("name")).
		Where(
			djazzle.Gt(djazzle.F("age"), djazzle.Int(18)),
			djazzle.Eq(djazzle.F("active"), djazzle.Bool(true)),
		).
		OrderBy(djazzle.F("name"), djazzle.ASC).
		Limit(10).
		Render(postgres.New())

	fmt.Println(stmt.SQL)
	fmt.Println(stmt.Args)

	// Output:
	// SELECT "id", "name" FROM "users" WHERE ("age" > $1) AND ("active" = $2) ORDER BY "name" ASC LIMIT 10
	// [18 true]
}

func ExampleInsert() {
	stmt, _ := djazzle.Insert(djazzle.T("users")).
		Values(djazzle.Row{
			"name":  djazzle.Text("Dan"),
			"email": djazzle.Text("dan@example.com"),
		}).
		Returning(djazzle.F("id")).
		Render(postgres.New())

	fmt.Println(stmt.SQL)
	fmt.Println(stmt.Args)

	// Output:
	// INSERT INTO "users" ("email", "name") VALUES ($1, $2) RETURNING "id"
	// [dan@example.com Dan]
}

func ExampleUpdate() {
	stmt, _ := djazzle.Update(djazzle.T("users")).
		Set(djazzle.F("active"), djazzle.Bool(false)).
		Where(djazzle.Lt(djazzle.F("age"), djazzle.Int(18))).
		Render(mysql.New())

	fmt.Println(stmt.SQL)
	fmt.Println(stmt.Args)

	// Output:
	// UPDATE `users` SET `active` = ? WHERE `age` < ?
	// [false 18]
}

func ExampleBuilder_Render_unsupportedFeature() {
	_, err := djazzle.Insert(djazzle.T("users")).
		Values(djazzle.Row{"name": djazzle.Text("Dan")}).
		Returning().
		Render(mysql.New())

	fmt.Println(err)

	// Output:
	// mysql: RETURNING is not supported
}
