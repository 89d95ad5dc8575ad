package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const salesTable = "sales_auto_crm"

var saleColumns = []string{
	"id", "customer_id", "vehicle_id", "customer_name", "vehicle_details",
	"sale_price", "sale_date", "status", "notes", "created_at",
}

// Sales are append-mostly: the dashboard lists and records them but never
// edits or removes them, so the repository carries no update or delete path.
type SaleRepository interface {
	List(ctx context.Context) ([]*wire.SaleRecord, error)
	Create(ctx context.Context, rec *wire.SaleRecord) (*wire.SaleRecord, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) List(ctx context.Context) ([]*wire.SaleRecord, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wire.SaleRecord
	for rows.Next() {
		var rec wire.SaleRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.CustomerID,
			&rec.VehicleID,
			&rec.CustomerName,
			&rec.VehicleDetails,
			&rec.SalePrice,
			&rec.SaleDate,
			&rec.Status,
			&rec.Notes,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *saleRepository) Create(ctx context.Context, rec *wire.SaleRecord) (*wire.SaleRecord, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	queryBuilder := squirrel.
		Insert(salesTable).
		Columns(
			"id", "customer_id", "vehicle_id", "customer_name",
			"vehicle_details", "sale_price", "sale_date", "status", "notes",
			"created_at",
		).
		Values(
			id, rec.CustomerID, rec.VehicleID, rec.CustomerName,
			rec.VehicleDetails, rec.SalePrice, rec.SaleDate, rec.Status,
			rec.Notes, time.Now().UTC(),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	created := *rec
	err = r.conn.QueryRow(ctx, salesSQL, salesArgs...).Scan(
		&created.ID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
