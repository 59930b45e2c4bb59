package djazzle

import (
	"fmt"
	"strings"

	"github.com/soccer99/djazzle/internal/types"
)

// TryF creates a validated column reference, returning an error if
// invalid. The name may be qualified as "table.column" to disambiguate
// joined tables.
func TryF(name string) (types.Field, error) {
	table := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		table = name[:idx]
		name = name[idx+1:]
		if !isValidSQLIdentifier(table) {
			return types.Field{}, fmt.Errorf("invalid table qualifier: %q", table)
		}
	}
	if !isValidSQLIdentifier(name) {
		return types.Field{}, fmt.Errorf("invalid column name: %q", name)
	}
	return types.Field{Name: name, Table: table}, nil
}

// F creates a validated column reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}
