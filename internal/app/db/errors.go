package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrProcedure marks an error reported by a stored procedure itself, as opposed to
// a connection or syntax failure. Its message is meant for the end user.
var ErrProcedure = errors.New("stored procedure rejected the call")

// raiseException is the SQLSTATE of a plain RAISE EXCEPTION in PL/pgSQL.
const raiseException = "P0001"

// ProcedureError is a business error reported by a stored procedure.
type ProcedureError struct {
	Procedure string
	Message   string
}

// Error formats the procedure error with the procedure name.
func (e *ProcedureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Procedure, e.Message)
}

// Unwrap identifies a value of this type as synonymous with ErrProcedure.
func (e *ProcedureError) Unwrap() error {
	return ErrProcedure
}

// asProcedureError converts an exception raised inside procedure into a *ProcedureError.
// Other errors are returned unchanged.
func asProcedureError(procedure string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == raiseException {
		return &ProcedureError{Procedure: procedure, Message: pgErr.Message}
	}
	return err
}
