package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SIA-BookingService/pkg/psqlbuilder"
)

const (
	tableName = "kv_records"

	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS kv_records (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func selectValueQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Select(columnValue).
		From(tableName).
		Where(squirrel.Eq{columnKey: key}).
		ToSql()
}

// upsertQuery value передается строкой: lib/pq кодирует []byte как bytea
func upsertQuery(key string, value []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func deleteQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{columnKey: key}).
		ToSql()
}

func keysQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(columnKey).
		From(tableName).
		OrderBy(columnKey).
		ToSql()
}
