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

// AdmitCardRepository handles the AdmitCard table
type AdmitCardRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewAdmitCardRepository creates a new AdmitCardRepository
func NewAdmitCardRepository(provider *db.Provider) *AdmitCardRepository {
	return &AdmitCardRepository{db: provider, sb: provider.Builder()}
}

func scanAdmitCard(row db.RowScanner) (*models.AdmitCard, error) {
	card := &models.AdmitCard{}
	err := row.Scan(&card.AdmitCardID, &card.ApplicationID, &card.ExamScheduleID, helpers.DateText(&card.AdmitDate))
	return card, err
}

func (r *AdmitCardRepository) selectAdmitCards() squirrel.SelectBuilder {
	return r.sb.Select("AdmitCardID", "ApplicationID", "ExamScheduleID", "AdmitDate").From("AdmitCard")
}

// GetAllAdmitCards lists every admit card
func (r *AdmitCardRepository) GetAllAdmitCards(ctx context.Context) ([]*models.AdmitCard, error) {
	return db.FetchAll(ctx, r.db, r.selectAdmitCards().OrderBy("AdmitCardID"), scanAdmitCard)
}

// GetAdmitCardByID retrieves a single admit card
func (r *AdmitCardRepository) GetAdmitCardByID(ctx context.Context, id int64) (*models.AdmitCard, error) {
	query := r.selectAdmitCards().Where(squirrel.Eq{"AdmitCardID": id})
	return db.FetchOne(ctx, r.db, query, scanAdmitCard, apperrors.NotFoundWithID("AdmitCard", id))
}

// CreateAdmitCard inserts an admit card
func (r *AdmitCardRepository) CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error {
	query := r.sb.Insert("AdmitCard").
		Columns("AdmitCardID", "ApplicationID", "ExamScheduleID", "AdmitDate").
		Values(card.AdmitCardID, card.ApplicationID, card.ExamScheduleID, card.AdmitDate)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("admitCardID", card.AdmitCardID).Msg("Error creating admit card")
		return err
	}
	return nil
}

// UpdateAdmitCard updates application, schedule and date of an admit card
func (r *AdmitCardRepository) UpdateAdmitCard(ctx context.Context, id int64, card *models.AdmitCard) error {
	query := r.sb.Update("AdmitCard").
		Set("ApplicationID", card.ApplicationID).
		Set("ExamScheduleID", card.ExamScheduleID).
		Set("AdmitDate", card.AdmitDate).
		Where(squirrel.Eq{"AdmitCardID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("AdmitCard", id))
}

// DeleteAdmitCard deletes an admit card
func (r *AdmitCardRepository) DeleteAdmitCard(ctx context.Context, id int64) error {
	query := r.sb.Delete("AdmitCard").Where(squirrel.Eq{"AdmitCardID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("AdmitCard", id))
}
