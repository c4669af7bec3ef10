package schedule

import (
	"context"
	"fmt"

	"clinicbook/models"
	"clinicbook/utils"
)

func (s *DefaultScheduleService) GetAvailability(ctx context.Context, dateISO string) (*models.DayAvailability, error) {
	cfg, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	window, err := dayWindow(cfg)
	if err != nil {
		return nil, err
	}
	if err := window.Validate(dateISO); err != nil {
		return nil, err
	}
	slots, err := daySlots(dateISO, cfg)
	if err != nil {
		return nil, err
	}

	annotated, err := s.resolveAvailability(ctx, slots)
	if err != nil {
		return nil, err
	}
	return &models.DayAvailability{
		Date:        dateISO,
		SlotMinutes: cfg.SlotMinutes,
		Slots:       annotated,
	}, nil
}

// resolveAvailability cross-references the generated slots against reservation
// markers and active appointments. A slot is free only when its key appears in
// neither set. The two reads are not one consistent snapshot — a slot reported
// free can be claimed a moment later — which is fine because the reservation
// transaction re-checks authoritatively.
func (s *DefaultScheduleService) resolveAvailability(ctx context.Context, slots []models.Slot) ([]models.AvailableSlot, error) {
	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.Key
	}

	taken := make(map[string]struct{})
	for _, chunk := range utils.ChunkStrings(keys, s.batchLimit()) {
		existing, err := s.Repo.ExistingMarkerKeys(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("fetch reservation markers: %w", err)
		}
		for key := range existing {
			taken[key] = struct{}{}
		}
	}
	for _, chunk := range utils.ChunkStrings(keys, s.batchLimit()) {
		active, err := s.Repo.ActiveSlotKeys(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("fetch active appointments: %w", err)
		}
		for key := range active {
			taken[key] = struct{}{}
		}
	}

	annotated := make([]models.AvailableSlot, len(slots))
	for i, slot := range slots {
		_, claimed := taken[slot.Key]
		annotated[i] = models.AvailableSlot{
			Key:       slot.Key,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: !claimed,
		}
	}
	return annotated, nil
}
