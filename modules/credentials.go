package modules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isaacwassouf/cricket-betting-service/actions"
	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

// CredentialService registers and authenticates principals of every kind
// through a single hashing and verification path.
type CredentialService struct {
	db   *database.BettingServiceDB
	cost int
	// compared against when the email is unknown so both failure paths pay
	// for one bcrypt comparison
	dummyHash string
}

func NewCredentialService(db *database.BettingServiceDB, cost int) (*CredentialService, error) {
	dummyHash, err := utils.HashPassword("not-a-real-password", cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare the credential service: %w", err)
	}
	return &CredentialService{db: db, cost: cost, dummyHash: dummyHash}, nil
}

// Register stores a new principal of kind and returns its id.
func (s *CredentialService) Register(ctx context.Context, kind consts.PrincipalKind, in models.Registration) (int64, error) {
	if err := in.Validate(kind); err != nil {
		return 0, err
	}

	// check if the email is already registered
	if err := actions.ValidatePrincipal(ctx, s.db, kind, in.Email); err != nil {
		return 0, err
	}

	// hash the password
	hashedPassword, err := utils.HashPassword(in.Password, s.cost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash the password: %w", err)
	}

	// a concurrent registration may still win the race, the unique
	// constraint turns that into ErrDuplicateIdentity
	return actions.CreatePrincipal(ctx, s.db, kind, in, hashedPassword)
}

// Authenticate verifies password for the principal of kind registered with
// email. Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *CredentialService) Authenticate(ctx context.Context, kind consts.PrincipalKind, email, password string) (models.Principal, error) {
	if _, err := utils.PrincipalTable(kind); err != nil {
		return models.Principal{}, err
	}

	principal, err := utils.GetPrincipalByEmail(ctx, s.db.Builder(), s.db.DB, kind, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.CheckPasswordHash(password, s.dummyHash)
			return models.Principal{}, models.ErrInvalidCredentials
		}
		return models.Principal{}, database.Classify(err)
	}

	if !utils.CheckPasswordHash(password, principal.PasswordHash) {
		return models.Principal{}, models.ErrInvalidCredentials
	}
	return principal, nil
}

// Get returns the principal of kind with id.
func (s *CredentialService) Get(ctx context.Context, kind consts.PrincipalKind, id int64) (models.Principal, error) {
	principal, err := utils.GetPrincipalByID(ctx, s.db.Builder(), s.db.DB, kind, id)
	if err != nil {
		return models.Principal{}, database.Classify(err)
	}
	return principal, nil
}
