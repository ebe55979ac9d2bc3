package modules

import (
	"github.com/isaacwassouf/cricket-betting-service/config"
	"github.com/isaacwassouf/cricket-betting-service/database"
)

// BettingService bundles the services every transport calls into.
type BettingService struct {
	BettingServiceDB *database.BettingServiceDB
	Credentials      *CredentialService
	Matches          *MatchService
	Payments         *PaymentService
}

func NewBettingService(db *database.BettingServiceDB, cfg *config.Config) (*BettingService, error) {
	credentials, err := NewCredentialService(db, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &BettingService{
		BettingServiceDB: db,
		Credentials:      credentials,
		Matches:          NewMatchService(db),
		Payments:         NewPaymentService(db, cfg.UPIPayeeID, cfg.QRSize),
	}, nil
}
