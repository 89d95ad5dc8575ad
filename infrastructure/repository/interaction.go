package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/dealer-crm/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-crm/internal/wire"
)

const interactionsTable = "interactions_auto_crm"

var interactionColumns = []string{
	"id", "customer_id", "lead_id", "type", "notes", "timestamp", "created_at",
}

type InteractionRepository interface {
	List(ctx context.Context) ([]*wire.InteractionRecord, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*wire.InteractionRecord, error)
	ListByLead(ctx context.Context, leadID string) ([]*wire.InteractionRecord, error)
	Create(ctx context.Context, rec *wire.InteractionRecord) (*wire.InteractionRecord, error)
	Delete(ctx context.Context, id string) error
}

type interactionRepository struct {
	conn postgres.Conn
}

func NewInteractionRepository(conn postgres.Conn) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) List(ctx context.Context) ([]*wire.InteractionRecord, error) {
	return r.list(ctx, nil)
}

func (r *interactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]*wire.InteractionRecord, error) {
	return r.list(ctx, squirrel.Eq{"customer_id": customerID})
}

func (r *interactionRepository) ListByLead(ctx context.Context, leadID string) ([]*wire.InteractionRecord, error) {
	return r.list(ctx, squirrel.Eq{"lead_id": leadID})
}

func (r *interactionRepository) list(ctx context.Context, where squirrel.Eq) ([]*wire.InteractionRecord, error) {
	queryBuilder := squirrel.
		Select(interactionColumns...).
		From(interactionsTable).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, interactionsSQL, interactionsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*wire.InteractionRecord
	for rows.Next() {
		var rec wire.InteractionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.CustomerID,
			&rec.LeadID,
			&rec.Type,
			&rec.Notes,
			&rec.Timestamp,
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

// Create inserts the interaction and, when it references a customer, bumps
// that customer's last_contact inside the same transaction. Either both rows
// land or neither does.
func (r *interactionRepository) Create(ctx context.Context, rec *wire.InteractionRecord) (*wire.InteractionRecord, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	queryBuilder := squirrel.
		Insert(interactionsTable).
		Columns("id", "customer_id", "lead_id", "type", "notes", "timestamp", "created_at").
		Values(id, rec.CustomerID, rec.LeadID, rec.Type, rec.Notes, rec.Timestamp, time.Now().UTC()).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	created := *rec
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, interactionsSQL, interactionsArgs...).Scan(
			&created.ID,
			&created.CreatedAt,
		)
		if err != nil {
			return err
		}

		if rec.CustomerID == nil {
			return nil
		}

		bumpSQL, bumpArgs, err := squirrel.
			Update(customersTable).
			Set("last_contact", time.Now().UTC()).
			Where(squirrel.Eq{"id": *rec.CustomerID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, bumpSQL, bumpArgs...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *interactionRepository) Delete(ctx context.Context, id string) error {
	queryBuilder := squirrel.
		Delete(interactionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	interactionsSQL, interactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, interactionsSQL, interactionsArgs...)
	return err
}
