package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/config"
	"tableflip.dev/habitus/pkg/logging"
	"tableflip.dev/habitus/pkg/runner/demo"
	teaui "tableflip.dev/habitus/pkg/tui/app"
)

// UI runs the interactive tracker.
type UI struct {
	Config config.Config
	// Demo seeds the session with sample data.
	Demo  bool
	Clock calendar.Clock
}

func (u *UI) Do(ctx context.Context) error {
	log, err := logging.New(logging.Options{File: u.Config.LogFile, Level: u.Config.LogLevel})
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if u.Config.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	clock := u.Clock
	if clock == nil {
		clock = time.Now
	}
	session := app.NewSession(app.Options{
		Clock:         clock,
		Logger:        log,
		SleepMaxHours: u.Config.SleepMaxHours,
	})
	if u.Demo {
		demo.Seed(session)
	}

	log.Info("starting ui",
		zap.String("session", session.ID),
		zap.String("month", string(session.Month().Key)),
		zap.String("tab", string(u.Config.StartTab)),
		zap.Int("sleep_max_hours", session.Sleep.MaxHours()),
		zap.Bool("demo", u.Demo))

	return teaui.Run(ctx, session, teaui.Options{
		StartTab: u.Config.StartTab,
		Logger:   log,
	})
}
