package modules

import (
	"context"
	"fmt"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

var paymentSchema = Schema[models.Payment]{
	Table:   consts.PAYMENTS_TABLE,
	Columns: []string{"email", "name", "mobile", "country", "state", "city", "amount"},
	Values: func(p *models.Payment) []any {
		return []any{p.Email, p.Name, p.Mobile, p.Country, p.State, p.City, p.Amount}
	},
	Dest: func(p *models.Payment) []any {
		return []any{&p.ID, &p.Email, &p.Name, &p.Mobile, &p.Country, &p.State, &p.City, &p.Amount}
	},
}

// PaymentIntent is a stored payment together with its transfer reference.
type PaymentIntent struct {
	Payment   models.Payment
	Reference string
}

// PaymentService records payment claims. Settlement happens out of band, no
// ledger is consulted and resubmitting creates a new record.
type PaymentService struct {
	*Repository[models.Payment, *models.Payment]
	payeeID string
	qrSize  int
}

func NewPaymentService(db *database.BettingServiceDB, payeeID string, qrSize int) *PaymentService {
	return &PaymentService{
		Repository: NewRepository[models.Payment, *models.Payment](db, paymentSchema),
		payeeID:    payeeID,
		qrSize:     qrSize,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, in models.Payment) (PaymentIntent, error) {
	payment, err := s.Create(ctx, in)
	if err != nil {
		return PaymentIntent{}, err
	}
	return PaymentIntent{
		Payment:   payment,
		Reference: utils.BuildTransferReference(s.payeeID, payment.Amount),
	}, nil
}

// TransferReference returns the UPI instruction for amount.
func (s *PaymentService) TransferReference(amount int64) (string, error) {
	if err := models.ValidateAmount(amount); err != nil {
		return "", err
	}
	return utils.BuildTransferReference(s.payeeID, amount), nil
}

// QRCode renders the transfer reference for amount as a PNG image.
func (s *PaymentService) QRCode(amount int64) ([]byte, error) {
	reference, err := s.TransferReference(amount)
	if err != nil {
		return nil, err
	}
	png, err := utils.RenderQRCode(reference, s.qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render the QR code: %w", err)
	}
	return png, nil
}
