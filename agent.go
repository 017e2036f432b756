package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotcorner/config"
	"hotcorner/corner"
	"hotcorner/platform"
	"hotcorner/shortcut"
	"hotcorner/storage"
)

// Agent coordinates corner detection, input synthesis, and the exit hotkey
type Agent struct {
	cfg      *config.Config
	detector *corner.Detector
	cursor   platform.Cursor
	injector platform.Injector
	exit     shortcut.Listener
	sequence []platform.KeyEvent
	db       *storage.DB
}

// NewAgent creates a new agent instance. db may be nil, in which case no
// activation history is recorded.
func NewAgent(cfg *config.Config, db *storage.DB) (*Agent, error) {
	combo, err := config.ParseHotkey(cfg.Exit.Combo)
	if err != nil {
		return nil, fmt.Errorf("failed to parse exit hotkey: %w", err)
	}

	exit, err := shortcut.NewExit(combo)
	if err != nil {
		return nil, fmt.Errorf("failed to create exit listener: %w", err)
	}

	sequence, err := platform.SequenceFromNames(cfg.Trigger.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to build trigger sequence: %w", err)
	}

	region := corner.RegionAt(cfg.Corner.X, cfg.Corner.Y, cfg.Corner.Size)

	return &Agent{
		cfg:      cfg,
		detector: corner.NewDetector(region),
		cursor:   platform.NewCursor(),
		injector: platform.NewInjector(),
		exit:     exit,
		sequence: sequence,
		db:       db,
	}, nil
}

// Run registers the exit hotkey and drives the polling loop until the
// hotkey fires or ctx is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.exit.Register(); err != nil {
		return fmt.Errorf("failed to register exit hotkey %q: %w", a.cfg.Exit.Combo, err)
	}
	defer a.exit.Unregister()

	slog.Info("Hot corner armed",
		"x", a.cfg.Corner.X, "y", a.cfg.Corner.Y, "size", a.cfg.Corner.Size,
		"exit", a.cfg.Exit.Combo)

	ticker := time.NewTicker(a.cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-a.exit.Keydown():
			slog.Info("Exit hotkey pressed")
			return nil

		case <-ticker.C:
			if a.step() {
				slog.Info("Exit hotkey pressed")
				return nil
			}
		}
	}
}

// step runs one tick and reports whether shutdown was requested. A
// pending exit notification is drained before the cursor is polled, so
// shutdown always wins over a trigger that would fire on the same tick.
func (a *Agent) step() bool {
	select {
	case <-a.exit.Keydown():
		return true
	default:
	}

	pos, err := a.cursor.Position()
	if err != nil {
		// Fail safe: an unreadable position counts as outside the
		// region, never as a trigger.
		slog.Warn("Failed to read cursor position", "error", err)
		a.detector.Reset()
		return false
	}

	if a.detector.Poll(pos) {
		a.activate(pos)
	}

	return false
}

// activate emits the trigger sequence and records the attempt. Failures
// are logged and contained within the tick.
func (a *Agent) activate(pos platform.Point) {
	err := a.injector.Send(a.sequence)
	if err != nil {
		slog.Error("Failed to send trigger input", "error", err)
	} else {
		slog.Info("Hot corner activated", "x", pos.X, "y", pos.Y)
	}

	a.record(pos, err)
}

func (a *Agent) record(pos platform.Point, sendErr error) {
	if a.db == nil {
		return
	}

	act := storage.Activation{
		CursorX: pos.X,
		CursorY: pos.Y,
		Success: sendErr == nil,
	}
	if sendErr != nil {
		act.ErrorMessage = sendErr.Error()
	}

	if err := a.db.SaveActivation(&act); err != nil {
		slog.Warn("Failed to record activation", "error", err)
	}
}
