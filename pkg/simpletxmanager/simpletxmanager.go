// Package simpletxmanager управляет сериализуемыми транзакциями напрямую
// поверх *sql.DB, без обёртки метрик.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avlasova/GCA-SchedulingService/pkg/dbmetrics"
)

// TransactionManager выполняет функции в сериализуемой транзакции
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция передается в fn через context (dbmetrics.WithExecutor).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin: %w", err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %w", err)
	}

	return nil
}
