package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	clinicRepo "clinicbook/database/repository/clinic"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SettingsProvider hands the scheduling engine its per-request configuration
// snapshot. The engine itself stays stateless; whoever implements this owns
// the staleness/refresh policy.
type SettingsProvider interface {
	Get(ctx context.Context) (*models.ClinicSettings, error)
}

const settingsCacheKey = "clinic:settings"

// CachedSettingsProvider reads clinic settings through a Redis snapshot with
// a short TTL, falling back to the repository on a miss or any cache error.
type CachedSettingsProvider struct {
	Repo  clinicRepo.ClinicRepository
	Cache *redis.Client
	TTL   time.Duration
}

func (p *CachedSettingsProvider) Get(ctx context.Context) (*models.ClinicSettings, error) {
	logger := utils.GetLogger()

	if p.Cache != nil {
		data, err := p.Cache.Get(ctx, settingsCacheKey).Result()
		if err == nil {
			var cfg models.ClinicSettings
			if err := json.Unmarshal([]byte(data), &cfg); err == nil {
				return &cfg, nil
			}
			logger.Warn("discarding unreadable settings cache entry", zap.Error(err))
		} else if err != redis.Nil {
			logger.Warn("settings cache read failed, falling back to store", zap.Error(err))
		}
	}

	cfg, err := p.Repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clinic settings: %w", err)
	}

	if p.Cache != nil {
		if data, err := json.Marshal(cfg); err == nil {
			if err := p.Cache.Set(ctx, settingsCacheKey, data, p.TTL).Err(); err != nil {
				logger.Warn("settings cache write failed", zap.Error(err))
			}
		}
	}
	return cfg, nil
}

// Invalidate drops the cached snapshot, forcing the next Get to hit the store.
func (p *CachedSettingsProvider) Invalidate(ctx context.Context) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.Del(ctx, settingsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("settings cache invalidation failed", zap.Error(err))
	}
}
