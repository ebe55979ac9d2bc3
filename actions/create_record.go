package actions

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/isaacwassouf/cricket-betting-service/database"
)

// ReadBack loads the freshly inserted row with id through runner.
type ReadBack func(ctx context.Context, runner sq.BaseRunner, id int64) error

// CreateRecord runs insert and readBack in one transaction. Nothing is
// committed unless the row could be read back, so a failure at any step
// leaves no partial record behind.
func CreateRecord(ctx context.Context, db *database.BettingServiceDB, insert sq.InsertBuilder, readBack ReadBack) (int64, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, database.Classify(err)
	}
	defer tx.Rollback()

	id, err := db.InsertID(ctx, tx, insert)
	if err != nil {
		return 0, database.Classify(err)
	}

	if err := readBack(ctx, tx, id); err != nil {
		return 0, database.Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, database.Classify(err)
	}
	return id, nil
}
