package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/postgres"
)

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = FULL",
	"PRAGMA busy_timeout = 5000",
}

// Connection é o backend embarcado para métricas e features quando não há Postgres
type Connection struct {
	*sql.DB
}

// Open abre (ou cria) o banco em path. Use ":memory:" para testes.
func Open(ctx context.Context, path string) (*Connection, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do banco: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco sqlite: %w", err)
	}

	// SQLite aceita um único escritor; com :memory: cada conexão seria um banco distinto
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao conectar no banco sqlite: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("erro ao aplicar %q: %w", pragma, err)
		}
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return postgres.RunInTransaction(ctx, c.DB, fn)
}
