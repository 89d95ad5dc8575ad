package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const customersTable = "customers_auto_crm"

var customerColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "address", "city",
	"state", "zip_code", "interested_vehicle", "budget", "status",
	"lead_source", "notes", "tags", "created_at", "updated_at", "last_contact",
}

type CustomerRepository interface {
	List(ctx context.Context) ([]*wire.CustomerRecord, error)
	Create(ctx context.Context, rec *wire.CustomerRecord) (*wire.CustomerRecord, error)
	Update(ctx context.Context, id string, rec *wire.CustomerRecord) (*wire.CustomerRecord, error)
	Delete(ctx context.Context, id string) error
}

type customerRepository struct {
	conn postgres.Conn
}

func NewCustomerRepository(conn postgres.Conn) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]*wire.CustomerRecord, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, customersSQL, customersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wire.CustomerRecord
	for rows.Next() {
		var rec wire.CustomerRecord
		var rawTags []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.FirstName,
			&rec.LastName,
			&rec.Email,
			&rec.Phone,
			&rec.Address,
			&rec.City,
			&rec.State,
			&rec.ZipCode,
			&rec.InterestedVehicle,
			&rec.Budget,
			&rec.Status,
			&rec.LeadSource,
			&rec.Notes,
			&rawTags,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.LastContact,
		); err != nil {
			return nil, err
		}

		rec.Tags = unmarshalTags(rawTags)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *customerRepository) Create(ctx context.Context, rec *wire.CustomerRecord) (*wire.CustomerRecord, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	rawTags, err := marshalTags(rec.Tags)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(customersTable).
		Columns(
			"id", "first_name", "last_name", "email", "phone", "address",
			"city", "state", "zip_code", "interested_vehicle", "budget",
			"status", "lead_source", "notes", "tags", "created_at",
		).
		Values(
			id, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
			rec.Address, rec.City, rec.State, rec.ZipCode,
			rec.InterestedVehicle, rec.Budget, rec.Status, rec.LeadSource,
			rec.Notes, rawTags, time.Now().UTC(),
		).
		Suffix("RETURNING id, created_at, updated_at, last_contact").
		PlaceholderFormat(squirrel.Dollar)

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	created := *rec
	err = r.conn.QueryRow(ctx, customersSQL, customersArgs...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
		&created.LastContact,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *customerRepository) Update(ctx context.Context, id string, rec *wire.CustomerRecord) (*wire.CustomerRecord, error) {
	rawTags, err := marshalTags(rec.Tags)
	if err != nil {
		return nil, err
	}

	// Full-record replace: every column is re-sent, matching the caller-side
	// contract that update inputs always carry the complete record.
	queryBuilder := squirrel.
		Update(customersTable).
		Set("first_name", rec.FirstName).
		Set("last_name", rec.LastName).
		Set("email", rec.Email).
		Set("phone", rec.Phone).
		Set("address", rec.Address).
		Set("city", rec.City).
		Set("state", rec.State).
		Set("zip_code", rec.ZipCode).
		Set("interested_vehicle", rec.InterestedVehicle).
		Set("budget", rec.Budget).
		Set("status", rec.Status).
		Set("lead_source", rec.LeadSource).
		Set("notes", rec.Notes).
		Set("tags", rawTags).
		Set("last_contact", rec.LastContact).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at, last_contact").
		PlaceholderFormat(squirrel.Dollar)

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *rec
	err = r.conn.QueryRow(ctx, customersSQL, customersArgs...).Scan(
		&updated.ID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
		&updated.LastContact,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	queryBuilder := squirrel.
		Delete(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, customersSQL, customersArgs...)
	return err
}
