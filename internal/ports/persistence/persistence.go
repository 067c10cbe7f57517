package persistence

import "context"

// Persistence интерфейс для работы с БД; контекст обязателен во всех
// вызовах, чтобы запросы снимались вместе с родительским запросом
type Persistence interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) error

	BeginTxx(ctx context.Context) (Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, Transaction) error) error
	Close() error
}

// Transaction транзакция БД с тем же набором операций
type Transaction interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) error

	Commit() error
	Rollback() error
}
