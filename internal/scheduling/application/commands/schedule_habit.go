package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/felixgeelhaar/tempo/pkg/observability"
)

const (
	habitPlanningDays            = 14
	defaultHabitFlexibilityScore = 60

	morningHabitHour   = 7
	afternoonHabitHour = 14
	eveningHabitHour   = 19
)

// ScheduleHabitCommand contains the data needed to plan a recurring habit.
type ScheduleHabitCommand struct {
	Title            string
	DurationMins     int
	Frequency        string
	PreferredTime    string
	FlexibilityScore *int
}

// ScheduleHabitResult contains the generated habit blocks.
type ScheduleHabitResult struct {
	Blocks []*domain.ScheduleBlock
}

// ScheduleHabitHandler handles the ScheduleHabitCommand.
type ScheduleHabitHandler struct {
	store   *domain.ScheduleStore
	clock   services.Clock
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewScheduleHabitHandler creates a new ScheduleHabitHandler.
func NewScheduleHabitHandler(store *domain.ScheduleStore, clock services.Clock, logger *slog.Logger, metrics observability.Metrics) *ScheduleHabitHandler {
	if clock == nil {
		clock = services.SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ScheduleHabitHandler{
		store:   store,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle expands the habit's recurrence over the next fourteen days and
// bulk-inserts one block per occurrence. No overlap checking here either;
// conflicts surface on the next detection pass.
func (h *ScheduleHabitHandler) Handle(ctx context.Context, cmd ScheduleHabitCommand) (*ScheduleHabitResult, error) {
	if cmd.DurationMins <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", cmd.DurationMins)
	}
	frequency, err := domain.ParseFrequency(cmd.Frequency)
	if err != nil {
		return nil, err
	}
	preferred, err := domain.ParsePreferredTime(cmd.PreferredTime)
	if err != nil {
		return nil, err
	}

	score := defaultHabitFlexibilityScore
	if cmd.FlexibilityScore != nil {
		score = *cmd.FlexibilityScore
	}

	startHour := habitHourFor(preferred)
	energy := domain.EnergyLow
	if preferred == domain.PreferredMorning {
		energy = domain.EnergyMedium
	}

	now := h.clock.Now()
	occurrences, err := habitOccurrences(now, startHour, frequency)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(cmd.DurationMins) * time.Minute
	blocks := make([]*domain.ScheduleBlock, 0, len(occurrences))
	for _, start := range occurrences {
		block, err := domain.NewScheduleBlock(cmd.Title, domain.BlockTypePersonal, domain.PriorityMedium, start, start.Add(duration))
		if err != nil {
			return nil, err
		}
		if err := block.SetFlexibility(true, score); err != nil {
			return nil, err
		}
		if err := block.SetEnergyLevel(energy); err != nil {
			return nil, err
		}
		if err := block.SetSource(domain.SourceAuto); err != nil {
			return nil, err
		}
		block.SetCategory("habit")
		blocks = append(blocks, block)
	}

	if err := h.store.InsertAll(blocks); err != nil {
		return nil, err
	}

	h.metrics.Counter("scheduling.habit.planned", int64(len(blocks)),
		observability.T("frequency", string(frequency)))
	h.logger.Info("habit scheduled",
		"title", cmd.Title,
		"frequency", frequency,
		"occurrences", len(blocks),
	)

	return &ScheduleHabitResult{Blocks: blocks}, nil
}

// habitOccurrences expands the frequency into concrete start times over
// the planning window, beginning today.
func habitOccurrences(now time.Time, startHour int, frequency domain.Frequency) ([]time.Time, error) {
	dtstart := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, now.Location())
	until := dtstart.AddDate(0, 0, habitPlanningDays-1)

	opts := rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: dtstart,
		Until:   until,
	}
	switch frequency {
	case domain.FrequencyWeekdays:
		opts.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	case domain.FrequencyWeekends:
		opts.Byweekday = []rrule.Weekday{rrule.SA, rrule.SU}
	}

	rule, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, fmt.Errorf("build recurrence: %w", err)
	}
	return rule.All(), nil
}

func habitHourFor(preferred domain.PreferredTime) int {
	switch preferred {
	case domain.PreferredMorning:
		return morningHabitHour
	case domain.PreferredAfternoon:
		return afternoonHabitHour
	default:
		return eveningHabitHour
	}
}
