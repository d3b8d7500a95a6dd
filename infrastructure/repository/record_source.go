package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-performance-api/infrastructure/recordsource"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

const (
	monthlyRecordsTable = "monthly_store_records msr"
)

// RecordSourceRepository lê os registros mensais de um espelho da tabela
// hospedada mantido em Postgres. Implementa recordsource.RecordSource, de modo
// que a origem dos dados é transparente para o motor de agregação.
type recordSourceRepository struct {
	conn *postgres.Connection
}

func NewRecordSourceRepository(conn *postgres.Connection) recordsource.RecordSource {
	return &recordSourceRepository{
		conn: conn,
	}
}

func (r *recordSourceRepository) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	query, args, err := squirrel.
		Select(
			"to_char(msr.month, 'YYYY-MM') AS month",
			"msr.store_id",
			"coalesce(msr.store_name, '')",
			"coalesce(msr.incoming, 0)",
			"coalesce(msr.approved, 0)",
			"coalesce(msr.settled_trx, 0)",
			"coalesce(msr.gmv, 0)",
		).
		From(monthlyRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, recordsource.NewDataFetchError("records", err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		var record domain.RawRecord
		if err := rows.Scan(
			&record.Month,
			&record.StoreID,
			&record.StoreName,
			&record.Incoming,
			&record.Approved,
			&record.SettledTrx,
			&record.GMV,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro mensal: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, recordsource.NewDataFetchError("records", err)
	}

	return records, nil
}

func (r *recordSourceRepository) FetchStoreDirectory(ctx context.Context) ([]domain.StoreInfo, error) {
	query, args, err := squirrel.
		Select("msr.store_id", "coalesce(msr.store_name, '')").
		Distinct().
		From(monthlyRecordsTable).
		OrderBy("msr.store_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, recordsource.NewDataFetchError("stores", err)
	}
	defer rows.Close()

	var stores []domain.StoreInfo
	for rows.Next() {
		var store domain.StoreInfo
		if err := rows.Scan(&store.ID, &store.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}

		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, recordsource.NewDataFetchError("stores", err)
	}

	return stores, nil
}
