package actions

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

// ValidatePrincipal fails with ErrDuplicateIdentity when the email is already
// registered for kind. It only gives an early answer, the unique constraint
// checked by CreatePrincipal is authoritative.
func ValidatePrincipal(ctx context.Context, db *database.BettingServiceDB, kind consts.PrincipalKind, email string) error {
	table, err := utils.PrincipalTable(kind)
	if err != nil {
		return err
	}

	var count int
	err = db.Builder().Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"email": email}).
		RunWith(db.DB).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return database.Classify(err)
	}
	if count != 0 {
		return fmt.Errorf("%w: %s", models.ErrDuplicateIdentity, email)
	}
	return nil
}

// CreatePrincipal inserts the principal row in a transaction and returns its id.
func CreatePrincipal(
	ctx context.Context,
	db *database.BettingServiceDB,
	kind consts.PrincipalKind,
	in models.Registration,
	hashedPassword string,
) (int64, error) {
	table, err := utils.PrincipalTable(kind)
	if err != nil {
		return 0, err
	}

	insert := db.Builder().Insert(table)
	switch kind {
	case consts.USER:
		insert = insert.
			Columns("full_name", "date_of_birth", "email", "hashed_password", "phone").
			Values(in.FullName, in.DateOfBirth, in.Email, hashedPassword, in.Phone)
	default:
		insert = insert.
			Columns("email", "hashed_password").
			Values(in.Email, hashedPassword)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, database.Classify(err)
	}
	defer tx.Rollback()

	id, err := db.InsertID(ctx, tx, insert)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", models.ErrDuplicateIdentity, in.Email)
		}
		return 0, database.Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, database.Classify(err)
	}
	return id, nil
}
