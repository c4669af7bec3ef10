package handlers

import (
	"errors"
	"net/http"

	clinicRepo "clinicbook/database/repository/clinic"

	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClinicHandler manages the singleton clinic settings record.
type ClinicHandler struct {
	Repo     clinicRepo.ClinicRepository
	Settings *schedule.CachedSettingsProvider
	Logger   *zap.Logger
}

func NewClinicHandler(repo clinicRepo.ClinicRepository, settings *schedule.CachedSettingsProvider, logger *zap.Logger) *ClinicHandler {
	return &ClinicHandler{Repo: repo, Settings: settings, Logger: logger}
}

// GetSettings handles GET /api/clinic/settings.
func (h *ClinicHandler) GetSettings(c *gin.Context) {
	cfg, err := h.Repo.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, clinicRepo.ErrSettingsNotFound) {
			utils.JSONError(c, http.StatusNotFound, "SETTINGS_NOT_FOUND", "clinic settings have not been configured")
			return
		}
		h.Logger.Error("failed to load clinic settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PutSettings handles PUT /api/clinic/settings: validates, upserts the
// singleton record and drops the cached snapshot.
func (h *ClinicHandler) PutSettings(c *gin.Context) {
	var cfg models.ClinicSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if verr := validateSettings(&cfg); verr != "" {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_SETTINGS", verr)
		return
	}

	if err := h.Repo.UpsertSettings(c.Request.Context(), &cfg); err != nil {
		h.Logger.Error("failed to save clinic settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal Server Error"})
		return
	}
	if h.Settings != nil {
		h.Settings.Invalidate(c.Request.Context())
	}
	c.JSON(http.StatusOK, cfg)
}

func validateSettings(cfg *models.ClinicSettings) string {
	if cfg.SlotMinutes <= 0 {
		return "slotMinutes must be positive"
	}
	if cfg.MaxDaysAhead < 0 {
		return "maxDaysAhead must not be negative"
	}
	if cfg.Timezone == "" {
		return "timezone is required"
	}
	if _, err := schedule.ParseClock(cfg.WorkHours.Start); err != nil {
		return "workHours.start must be HH:MM"
	}
	if _, err := schedule.ParseClock(cfg.WorkHours.End); err != nil {
		return "workHours.end must be HH:MM"
	}
	for _, b := range cfg.Breaks {
		if _, err := schedule.ParseClock(b.Start); err != nil {
			return "break start must be HH:MM"
		}
		if _, err := schedule.ParseClock(b.End); err != nil {
			return "break end must be HH:MM"
		}
	}
	return ""
}
