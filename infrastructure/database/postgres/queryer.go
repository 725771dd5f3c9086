package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios.
// Também é satisfeito por *sql.Tx e pela conexão SQLite.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
