package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/admission/internal/app/models"
	appRepos "github.com/yigit/admission/internal/app/repositories"
	"github.com/yigit/admission/internal/config"
	"github.com/yigit/admission/internal/pkg/apperrors"
)

// CreateDefaultData creates the configured application statuses if they don't exist.
// Tables are expected to exist already.
func CreateDefaultData(ctx context.Context, statusRepo *appRepos.StatusRepository, statuses []config.StatusSeed, lgr zerolog.Logger) error {
	lgr.Info().Int("count", len(statuses)).Msg("Checking/Creating default application statuses...")
	var finalErr error

	created := 0
	for _, s := range statuses {
		status := &appModels.ApplicationStatus{StatusID: s.ID, StatusDescription: s.Description}
		err := statusRepo.CreateStatus(ctx, status)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			lgr.Debug().Int64("statusID", s.ID).Msg("Application status already exists")
		default:
			lgr.Error().Err(err).Int64("statusID", s.ID).Msg("Error creating application status")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
