package utils

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/models"
)

// PrincipalTable returns the table holding principals of kind.
func PrincipalTable(kind consts.PrincipalKind) (string, error) {
	switch kind {
	case consts.USER:
		return consts.USERS_TABLE, nil
	case consts.ADMIN:
		return consts.ADMINS_TABLE, nil
	default:
		return "", fmt.Errorf("%w: unknown principal kind %q", models.ErrValidation, kind)
	}
}

func principalColumns(kind consts.PrincipalKind) []string {
	if kind == consts.USER {
		return []string{"id", "email", "hashed_password", "full_name", "date_of_birth", "phone"}
	}
	return []string{"id", "email", "hashed_password"}
}

// GetPrincipal loads a single principal of kind matching where. A miss is
// reported as sql.ErrNoRows.
func GetPrincipal(
	ctx context.Context,
	builder sq.StatementBuilderType,
	runner sq.BaseRunner,
	kind consts.PrincipalKind,
	where sq.Eq,
) (models.Principal, error) {
	principal := models.Principal{Kind: kind}

	table, err := PrincipalTable(kind)
	if err != nil {
		return principal, err
	}

	dest := []any{&principal.ID, &principal.Email, &principal.PasswordHash}
	if kind == consts.USER {
		dest = append(dest, &principal.FullName, &principal.DateOfBirth, &principal.Phone)
	}

	err = builder.Select(principalColumns(kind)...).
		From(table).
		Where(where).
		RunWith(runner).
		QueryRowContext(ctx).
		Scan(dest...)
	if err != nil {
		return principal, err
	}
	return principal, nil
}

// GetPrincipalByEmail looks a principal up inside its own namespace.
func GetPrincipalByEmail(
	ctx context.Context,
	builder sq.StatementBuilderType,
	runner sq.BaseRunner,
	kind consts.PrincipalKind,
	email string,
) (models.Principal, error) {
	return GetPrincipal(ctx, builder, runner, kind, sq.Eq{"email": email})
}

// GetPrincipalByID gets a principal by its generated id
func GetPrincipalByID(
	ctx context.Context,
	builder sq.StatementBuilderType,
	runner sq.BaseRunner,
	kind consts.PrincipalKind,
	id int64,
) (models.Principal, error) {
	return GetPrincipal(ctx, builder, runner, kind, sq.Eq{"id": id})
}
