package db

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// querier is the subset of *pgxpool.Pool used to call procedures.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Procedures calls jsonb-returning functions in the public schema by name.
type Procedures struct {
	q querier
}

// NewProcedures returns a Procedures backed by pool.
func NewProcedures(pool *pgxpool.Pool) *Procedures {
	return &Procedures{q: pool}
}

// Call invokes the function name with args bound by parameter name and returns its jsonb result.
// Exceptions raised by the function are returned as *ProcedureError.
func (p *Procedures) Call(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	sql, values, err := buildCall(name, args)
	if err != nil {
		return nil, err
	}

	var result []byte
	if err := p.q.QueryRow(ctx, sql, values...).Scan(&result); err != nil {
		return nil, asProcedureError(name, err)
	}

	return json.RawMessage(result), nil
}

// buildCall renders `SELECT "public"."name"("k1" => $1, ...)` with keys in sorted order.
func buildCall(name string, args map[string]any) (string, []any, error) {
	if !identifierPattern.MatchString(name) {
		return "", nil, fmt.Errorf("invalid procedure name %q", name)
	}

	keys := make([]string, 0, len(args))
	for key := range args {
		if !identifierPattern.MatchString(key) {
			return "", nil, fmt.Errorf("invalid argument name %q for procedure %s", key, name)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make([]string, len(keys))
	values := make([]any, len(keys))
	for i, key := range keys {
		params[i] = fmt.Sprintf("%s => $%d", pgx.Identifier{key}.Sanitize(), i+1)
		values[i] = args[key]
	}

	sql := fmt.Sprintf("SELECT %s(%s)", pgx.Identifier{"public", name}.Sanitize(), strings.Join(params, ", "))
	return sql, values, nil
}
