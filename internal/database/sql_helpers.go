package database

import (
	"database/sql"

	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// toNullableArg converts a pointer to an interface{} suitable for SQL args.
// Returns nil if pointer is nil, otherwise returns the dereferenced value.
func toNullableArg[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// rollbackWithLog rolls the transaction back, logging a rollback
// failure, and returns the original error.
func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("rollback", rbErr)
	}
	return err
}
