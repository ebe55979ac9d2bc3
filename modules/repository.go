package modules

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/isaacwassouf/cricket-betting-service/actions"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
)

// Schema describes how a record type maps onto its table.
type Schema[T any] struct {
	Table string
	// Columns lists the stored columns except the generated id.
	Columns []string
	// Values returns the column values of rec in Columns order.
	Values func(rec *T) []any
	// Dest returns scan destinations for id followed by Columns.
	Dest func(rec *T) []any
}

type record[T any] interface {
	*T
	Validate() error
}

// Repository implements create, list and get for a record type with no
// business rules beyond field validation.
type Repository[T any, PT record[T]] struct {
	db     *database.BettingServiceDB
	schema Schema[T]
}

func NewRepository[T any, PT record[T]](db *database.BettingServiceDB, schema Schema[T]) *Repository[T, PT] {
	return &Repository[T, PT]{db: db, schema: schema}
}

// Create validates rec, stores it and returns the stored row, id included.
func (r *Repository[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	var stored T
	if err := PT(&rec).Validate(); err != nil {
		return stored, err
	}

	insert := r.db.Builder().
		Insert(r.schema.Table).
		Columns(r.schema.Columns...).
		Values(r.schema.Values(&rec)...)

	_, err := actions.CreateRecord(ctx, r.db, insert, func(ctx context.Context, runner sq.BaseRunner, id int64) error {
		var err error
		stored, err = r.get(ctx, runner, id)
		return err
	})
	return stored, err
}

// List returns every record in insertion order.
func (r *Repository[T, PT]) List(ctx context.Context) ([]T, error) {
	rows, err := r.selectAll().
		OrderBy("id ASC").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		var rec T
		if err := rows.Scan(r.schema.Dest(&rec)...); err != nil {
			return nil, database.Classify(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Classify(err)
	}
	return records, nil
}

// Get returns the record with id or an ErrNotFound error.
func (r *Repository[T, PT]) Get(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, errNotFound(r.schema.Table, id)
	}
	rec, err := r.get(ctx, r.db.DB, id)
	if err != nil {
		return rec, database.Classify(err)
	}
	return rec, nil
}

func (r *Repository[T, PT]) get(ctx context.Context, runner sq.BaseRunner, id int64) (T, error) {
	var rec T
	err := r.selectAll().
		Where(sq.Eq{"id": id}).
		RunWith(runner).
		QueryRowContext(ctx).
		Scan(r.schema.Dest(&rec)...)
	if err != nil {
		return rec, fmt.Errorf("%s %d: %w", r.schema.Table, id, err)
	}
	return rec, nil
}

func (r *Repository[T, PT]) selectAll() sq.SelectBuilder {
	columns := append([]string{"id"}, r.schema.Columns...)
	return r.db.Builder().Select(columns...).From(r.schema.Table)
}

// errNotFound is returned for ids that can never exist.
func errNotFound(what string, id int64) error {
	return fmt.Errorf("%w: %s %d", models.ErrNotFound, what, id)
}
