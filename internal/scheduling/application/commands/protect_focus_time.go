package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/felixgeelhaar/tempo/pkg/observability"
)

const (
	focusProtectionDays   = 5
	focusFlexibilityScore = 20

	morningFocusHour   = 9
	afternoonFocusHour = 14
)

// ProtectFocusTimeCommand contains the data needed to reserve deep-work
// blocks.
type ProtectFocusTimeCommand struct {
	HoursPerDay   int
	PreferredTime string
}

// ProtectFocusTimeResult contains the reserved blocks.
type ProtectFocusTimeResult struct {
	Blocks []*domain.ScheduleBlock
}

// ProtectFocusTimeHandler handles the ProtectFocusTimeCommand.
type ProtectFocusTimeHandler struct {
	store   *domain.ScheduleStore
	clock   services.Clock
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewProtectFocusTimeHandler creates a new ProtectFocusTimeHandler.
func NewProtectFocusTimeHandler(store *domain.ScheduleStore, clock services.Clock, logger *slog.Logger, metrics observability.Metrics) *ProtectFocusTimeHandler {
	if clock == nil {
		clock = services.SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ProtectFocusTimeHandler{
		store:   store,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle reserves one non-flexible focus block per day for the next five
// days. Blocks are inserted without overlap checking: protecting time is
// a declaration, and any resulting conflicts surface on the next
// detection pass.
func (h *ProtectFocusTimeHandler) Handle(ctx context.Context, cmd ProtectFocusTimeCommand) (*ProtectFocusTimeResult, error) {
	hoursPerDay := cmd.HoursPerDay
	if hoursPerDay == 0 {
		hoursPerDay = 2
	}
	if hoursPerDay < 0 {
		return nil, fmt.Errorf("hours per day must be positive, got %d", hoursPerDay)
	}

	preferred, err := domain.ParsePreferredTime(cmd.PreferredTime)
	if err != nil {
		return nil, err
	}
	var startHour int
	switch preferred {
	case domain.PreferredMorning:
		startHour = morningFocusHour
	case domain.PreferredAfternoon:
		startHour = afternoonFocusHour
	default:
		return nil, fmt.Errorf("focus time must be morning or afternoon, got %q", preferred)
	}

	now := h.clock.Now()
	blocks := make([]*domain.ScheduleBlock, 0, focusProtectionDays)
	for day := 0; day < focusProtectionDays; day++ {
		date := now.AddDate(0, 0, day)
		start := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, now.Location())
		end := start.Add(time.Duration(hoursPerDay) * time.Hour)

		block, err := domain.NewScheduleBlock("Deep Work", domain.BlockTypeFocus, domain.PriorityHigh, start, end)
		if err != nil {
			return nil, err
		}
		if err := block.SetFlexibility(false, focusFlexibilityScore); err != nil {
			return nil, err
		}
		if err := block.SetEnergyLevel(domain.EnergyHigh); err != nil {
			return nil, err
		}
		if err := block.SetSource(domain.SourceAuto); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	if err := h.store.InsertAll(blocks); err != nil {
		return nil, err
	}

	h.metrics.Counter("scheduling.focus.protected", int64(len(blocks)))
	h.logger.Info("focus time protected",
		"days", focusProtectionDays,
		"hours_per_day", hoursPerDay,
		"preferred_time", preferred,
	)

	return &ProtectFocusTimeResult{Blocks: blocks}, nil
}
