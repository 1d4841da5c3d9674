package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Persistence контракт слоя доступа к БД для репозиториев
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
	NamedExec(ctx context.Context, query string, arg interface{}) error
	QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

// Transaction транзакция поверх Persistence
type Transaction interface {
	Persistence
	Commit() error
	Rollback() error
}
