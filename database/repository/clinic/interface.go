package clinicRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrSettingsNotFound signals that the singleton clinic settings record has
// never been written. Operations cannot proceed without it.
var ErrSettingsNotFound = errors.New("clinic settings not configured")

// ClinicRepository persists the singleton clinic configuration record.
type ClinicRepository interface {
	GetSettings(ctx context.Context) (*models.ClinicSettings, error)
	UpsertSettings(ctx context.Context, settings *models.ClinicSettings) error
}
