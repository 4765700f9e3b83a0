package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"
)

// Store key-value хранилище поверх таблицы kv_records
type Store struct {
	db DBExecutor
}

// NewStore создает новый экземпляр хранилища
func NewStore(db DBExecutor) *Store {
	return &Store{db: db}
}

// Migrate создает таблицу, если её нет
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает значение по ключу
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := selectValueQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Put записывает значение ключа (upsert)
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: Put - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// PutMany записывает все ключи в одной транзакции
func (s *Store) PutMany(ctx context.Context, values map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: PutMany - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// детерминированный порядок, чтобы параллельные PutMany не ловили deadlock
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		query, args, err := upsertQuery(key, values[key])
		if err != nil {
			return fmt.Errorf("%w: PutMany - build upsert query: %v", ErrBuildQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: PutMany - execute upsert key=%s: %v", ErrExecQuery, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: PutMany - commit: %v", ErrTransaction, err)
	}
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := deleteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Keys возвращает все ключи
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	query, args, err := keysQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: Keys - scan key: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - iterate rows: %v", ErrScanRow, err)
	}

	return keys, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
