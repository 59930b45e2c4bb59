package djazzle

import (
	"fmt"

	"github.com/soccer99/djazzle/internal/types"
)

// TryT creates a validated table reference, returning an error if the
// name is not a plain SQL identifier.
func TryT(name string) (types.Table, error) {
	if !isValidSQLIdentifier(name) {
		return types.Table{}, fmt.Errorf("invalid table name: %q", name)
	}
	return types.Table{Name: name}, nil
}

// T creates a validated table reference.
func T(name string) types.Table {
	t, err := TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}
