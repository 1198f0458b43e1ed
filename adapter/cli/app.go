package cli

import (
	"context"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/tempo/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

// App holds the CLI application dependencies.
type App struct {
	Store *domain.ScheduleStore
	Repo  domain.BlockRepository

	// Command handlers
	AutoScheduleTaskHandler *commands.AutoScheduleTaskHandler
	ProtectFocusTimeHandler *commands.ProtectFocusTimeHandler
	ScheduleHabitHandler    *commands.ScheduleHabitHandler

	// Query handlers
	ScheduleEfficiencyHandler *queries.ScheduleEfficiencyHandler
	FindOptimalSlotHandler    *queries.FindOptimalSlotHandler

	// Conflict resolution
	Rescheduler *services.Rescheduler
}

var app *App

// SetApp sets the CLI application.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application.
func GetApp() *App {
	return app
}

// SetDefaults overrides flag defaults from configuration. Explicit flags
// still win.
func SetDefaults(focusHoursPerDay int, focusPreferredTime string, habitFlexibility int) {
	focusHours = focusHoursPerDay
	focusTime = focusPreferredTime
	habitFlex = habitFlexibility
}

// Save flushes the store's current contents through the repository.
// A nil repository means the session is in-memory only.
func (a *App) Save(ctx context.Context) error {
	if a.Repo == nil {
		return nil
	}
	return a.Repo.SaveAll(ctx, a.Store.List())
}
