package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const vehiclesTable = "vehicles_auto_crm"

var vehicleColumns = []string{
	"id", "make", "model", "year", "type", "vin", "color", "mileage",
	"price", "status", "description", "image_url", "created_at", "updated_at",
}

type VehicleRepository interface {
	List(ctx context.Context) ([]*wire.VehicleRecord, error)
	Create(ctx context.Context, rec *wire.VehicleRecord) (*wire.VehicleRecord, error)
	Update(ctx context.Context, id string, rec *wire.VehicleRecord) (*wire.VehicleRecord, error)
	Delete(ctx context.Context, id string) error
}

type vehicleRepository struct {
	conn postgres.Conn
}

func NewVehicleRepository(conn postgres.Conn) VehicleRepository {
	return &vehicleRepository{
		conn: conn,
	}
}

func (r *vehicleRepository) List(ctx context.Context) ([]*wire.VehicleRecord, error) {
	queryBuilder := squirrel.
		Select(vehicleColumns...).
		From(vehiclesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	vehiclesSQL, vehiclesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, vehiclesSQL, vehiclesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wire.VehicleRecord
	for rows.Next() {
		var rec wire.VehicleRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Make,
			&rec.Model,
			&rec.Year,
			&rec.Type,
			&rec.VIN,
			&rec.Color,
			&rec.Mileage,
			&rec.Price,
			&rec.Status,
			&rec.Description,
			&rec.ImageURL,
			&rec.CreatedAt,
			&rec.UpdatedAt,
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

func (r *vehicleRepository) Create(ctx context.Context, rec *wire.VehicleRecord) (*wire.VehicleRecord, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	queryBuilder := squirrel.
		Insert(vehiclesTable).
		Columns(
			"id", "make", "model", "year", "type", "vin", "color",
			"mileage", "price", "status", "description", "image_url",
			"created_at",
		).
		Values(
			id, rec.Make, rec.Model, rec.Year, rec.Type, rec.VIN, rec.Color,
			rec.Mileage, rec.Price, rec.Status, rec.Description, rec.ImageURL,
			time.Now().UTC(),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	vehiclesSQL, vehiclesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	created := *rec
	err = r.conn.QueryRow(ctx, vehiclesSQL, vehiclesArgs...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id string, rec *wire.VehicleRecord) (*wire.VehicleRecord, error) {
	queryBuilder := squirrel.
		Update(vehiclesTable).
		Set("make", rec.Make).
		Set("model", rec.Model).
		Set("year", rec.Year).
		Set("type", rec.Type).
		Set("vin", rec.VIN).
		Set("color", rec.Color).
		Set("mileage", rec.Mileage).
		Set("price", rec.Price).
		Set("status", rec.Status).
		Set("description", rec.Description).
		Set("image_url", rec.ImageURL).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	vehiclesSQL, vehiclesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *rec
	err = r.conn.QueryRow(ctx, vehiclesSQL, vehiclesArgs...).Scan(
		&updated.ID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	queryBuilder := squirrel.
		Delete(vehiclesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	vehiclesSQL, vehiclesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, vehiclesSQL, vehiclesArgs...)
	return err
}
