package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/helpers"
	"github.com/yigit/admission/internal/pkg/logger"
)

// PaymentRepository handles the Payment table
type PaymentRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(provider *db.Provider) *PaymentRepository {
	return &PaymentRepository{db: provider, sb: provider.Builder()}
}

func scanPayment(row db.RowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(&p.PaymentID, &p.ApplicationID, &p.Amount, helpers.DateText(&p.PaymentDate))
	return p, err
}

func (r *PaymentRepository) selectPayments() squirrel.SelectBuilder {
	return r.sb.Select("PaymentID", "ApplicationID", "Amount", "PaymentDate").From("Payment")
}

// GetAllPayments lists every payment
func (r *PaymentRepository) GetAllPayments(ctx context.Context) ([]*models.Payment, error) {
	return db.FetchAll(ctx, r.db, r.selectPayments().OrderBy("PaymentID"), scanPayment)
}

// GetPaymentByID retrieves a single payment
func (r *PaymentRepository) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := r.selectPayments().Where(squirrel.Eq{"PaymentID": id})
	return db.FetchOne(ctx, r.db, query, scanPayment, apperrors.NotFoundWithID("Payment", id))
}

// CreatePayment inserts a payment
func (r *PaymentRepository) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := r.sb.Insert("Payment").
		Columns("PaymentID", "ApplicationID", "Amount", "PaymentDate").
		Values(p.PaymentID, p.ApplicationID, p.Amount, p.PaymentDate)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("paymentID", p.PaymentID).Msg("Error creating payment")
		return err
	}
	return nil
}

// UpdatePayment updates application, amount and date of a payment
func (r *PaymentRepository) UpdatePayment(ctx context.Context, id int64, p *models.Payment) error {
	query := r.sb.Update("Payment").
		Set("ApplicationID", p.ApplicationID).
		Set("Amount", p.Amount).
		Set("PaymentDate", p.PaymentDate).
		Where(squirrel.Eq{"PaymentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Payment", id))
}

// DeletePayment deletes a payment
func (r *PaymentRepository) DeletePayment(ctx context.Context, id int64) error {
	query := r.sb.Delete("Payment").Where(squirrel.Eq{"PaymentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Payment", id))
}
