package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const leadsTable = "leads_auto_crm"

var leadColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "interested_vehicle",
	"budget", "status", "priority", "source", "follow_up_date", "notes",
	"tags", "created_at", "updated_at",
}

type LeadRepository interface {
	List(ctx context.Context) ([]*wire.LeadRecord, error)
	Create(ctx context.Context, rec *wire.LeadRecord) (*wire.LeadRecord, error)
	Update(ctx context.Context, id string, rec *wire.LeadRecord) (*wire.LeadRecord, error)
	Delete(ctx context.Context, id string) error
}

type leadRepository struct {
	conn postgres.Conn
}

func NewLeadRepository(conn postgres.Conn) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) List(ctx context.Context) ([]*wire.LeadRecord, error) {
	queryBuilder := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	leadsSQL, leadsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, leadsSQL, leadsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wire.LeadRecord
	for rows.Next() {
		var rec wire.LeadRecord
		var rawTags []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.FirstName,
			&rec.LastName,
			&rec.Email,
			&rec.Phone,
			&rec.InterestedVehicle,
			&rec.Budget,
			&rec.Status,
			&rec.Priority,
			&rec.Source,
			&rec.FollowUpDate,
			&rec.Notes,
			&rawTags,
			&rec.CreatedAt,
			&rec.UpdatedAt,
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

func (r *leadRepository) Create(ctx context.Context, rec *wire.LeadRecord) (*wire.LeadRecord, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	rawTags, err := marshalTags(rec.Tags)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(leadsTable).
		Columns(
			"id", "first_name", "last_name", "email", "phone",
			"interested_vehicle", "budget", "status", "priority", "source",
			"follow_up_date", "notes", "tags", "created_at",
		).
		Values(
			id, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
			rec.InterestedVehicle, rec.Budget, rec.Status, rec.Priority,
			rec.Source, rec.FollowUpDate, rec.Notes, rawTags, time.Now().UTC(),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	leadsSQL, leadsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	created := *rec
	err = r.conn.QueryRow(ctx, leadsSQL, leadsArgs...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *leadRepository) Update(ctx context.Context, id string, rec *wire.LeadRecord) (*wire.LeadRecord, error) {
	rawTags, err := marshalTags(rec.Tags)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Update(leadsTable).
		Set("first_name", rec.FirstName).
		Set("last_name", rec.LastName).
		Set("email", rec.Email).
		Set("phone", rec.Phone).
		Set("interested_vehicle", rec.InterestedVehicle).
		Set("budget", rec.Budget).
		Set("status", rec.Status).
		Set("priority", rec.Priority).
		Set("source", rec.Source).
		Set("follow_up_date", rec.FollowUpDate).
		Set("notes", rec.Notes).
		Set("tags", rawTags).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	leadsSQL, leadsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	updated := *rec
	err = r.conn.QueryRow(ctx, leadsSQL, leadsArgs...).Scan(
		&updated.ID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	queryBuilder := squirrel.
		Delete(leadsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	leadsSQL, leadsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, leadsSQL, leadsArgs...)
	return err
}
