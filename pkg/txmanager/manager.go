package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
)

var (
	// ErrTransaction возвращается при ошибках начала/фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")
)

// Manager менеджер транзакций
// Все операции записи сериализуются одним мьютексом процесса (единственный писатель).
// Если задан db, дополнительно открывается SQL-транзакция, которая кладётся в контекст
// и подхватывается репозиториями через dbmetrics.GetExecutor
type Manager struct {
	sem chan struct{}
	db  dbmetrics.TxBeginner
}

// NewTransactionManager создает менеджер транзакций
// db может быть nil: тогда менеджер только сериализует запись (in-memory хранилище)
func NewTransactionManager(db dbmetrics.TxBeginner) *Manager {
	return &Manager{
		sem: make(chan struct{}, 1),
		db:  db,
	}
}

// Do выполняет fn под блокировкой писателя с уровнем изоляции по умолчанию
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn под блокировкой писателя в SERIALIZABLE транзакции
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов уже держит блокировку
	if dbmetrics.IsInTransaction(ctx) || isLocked(ctx) {
		return fn(ctx)
	}

	// 1. Захватываем блокировку писателя, уважая отмену контекста
	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-m.sem }()

	lockedCtx := withLock(ctx)

	// 2. Без БД достаточно блокировки
	if m.db == nil {
		return fn(lockedCtx)
	}

	// 3. Открываем транзакцию и кладём её в контекст
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(lockedCtx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

type lockKey struct{}

func withLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, lockKey{}, true)
}

func isLocked(ctx context.Context) bool {
	locked, _ := ctx.Value(lockKey{}).(bool)
	return locked
}
