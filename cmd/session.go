package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/application"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSessionCmd(app *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Run therapy sessions",
	}

	sessionCmd.AddCommand(newSessionStartCmd(app))
	return sessionCmd
}

func newSessionStartCmd(app *app) *cobra.Command {
	var (
		selection application.MenuSelection
		tui       bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Boot, run one therapy session and return to the main menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := newSessionRun(app, selection)

			var (
				record *domain.SessionRecord
				err    error
			)
			if tui {
				record, err = runSessionView(ctx, cmd.OutOrStdout(), run)
			} else {
				record, err = run.headless(ctx)
			}
			if err != nil {
				return err
			}

			return writeSessionSummary(cmd.OutOrStdout(), app, record)
		},
	}

	cmd.Flags().StringVar(&selection.UserName, "user", "", "User name recorded with the session (default guest)")
	cmd.Flags().IntVar(&selection.PatternIndex, "pattern", 0, "Pattern index, see 'vrt patterns'")
	cmd.Flags().IntVar(&selection.DurationIndex, "duration", 0, "Duration index, see 'vrt patterns'")
	cmd.Flags().BoolVar(&tui, "tui", true, "Show the interactive session view")

	return cmd
}

// sessionRun drives one boot-to-menu cycle on the app loop. Every callback
// runs on the goroutine that advances the loop.
type sessionRun struct {
	app       *app
	selection application.MenuSelection

	launched  bool
	canceled  bool
	startErr  error
	config    domain.SessionConfig
	record    *domain.SessionRecord
	finished  bool
	unsubs    []func()
	bootStart bool
}

func newSessionRun(app *app, selection application.MenuSelection) *sessionRun {
	return &sessionRun{app: app, selection: selection}
}

// begin boots the scenes. The therapy launches the first time the main menu
// loads.
func (r *sessionRun) begin(ctx context.Context) {
	if r.bootStart {
		return
	}
	r.bootStart = true

	r.unsubs = append(r.unsubs,
		r.app.sessions.Subscribe(func(event domain.SessionEvent) {
			if event.Kind == domain.EventStarted {
				return
			}
			r.finished = true
			r.record = event.Record
		}),
		r.app.scenes.OnSceneLoaded(func(scene domain.SceneName) {
			if scene != domain.SceneMainMenu || r.launched || r.canceled {
				return
			}
			r.launched = true
			r.app.menu.Enter(ctx)
			r.config, r.startErr = r.app.menu.StartTherapy(ctx, r.selection)
		}),
	)

	r.app.boot.Boot(ctx)
}

func (r *sessionRun) done() bool {
	if r.startErr != nil {
		return true
	}
	if r.app.scenes.Current() != domain.SceneMainMenu {
		return false
	}
	return r.finished || (r.canceled && !r.launched)
}

// cancel force-ends the running session. Before launch it only stops the
// therapy from starting.
func (r *sessionRun) cancel(ctx context.Context) error {
	if r.canceled {
		return nil
	}
	r.canceled = true

	if _, err := r.app.sessions.ForceEndSession(ctx); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
		return err
	}
	return nil
}

func (r *sessionRun) close() {
	for _, unsubscribe := range r.unsubs {
		unsubscribe()
	}
	r.unsubs = nil
}

func (r *sessionRun) result() (*domain.SessionRecord, error) {
	if r.startErr != nil {
		return nil, fmt.Errorf("start therapy: %w", r.startErr)
	}
	return r.record, nil
}

func (r *sessionRun) headless(ctx context.Context) (*domain.SessionRecord, error) {
	defer r.close()

	appCtx := context.WithoutCancel(ctx)
	tick := r.app.config.Loop.TickInterval

	r.begin(appCtx)
	err := r.app.loop.Run(ctx, tick, r.done)
	if errors.Is(err, context.Canceled) {
		r.app.logger.Info("interrupted, ending session")
		if err := r.cancel(appCtx); err != nil {
			return nil, err
		}
		err = r.app.loop.Run(appCtx, tick, r.done)
	}
	if err != nil {
		return nil, err
	}

	return r.result()
}

func writeSessionSummary(w io.Writer, app *app, record *domain.SessionRecord) error {
	if record == nil {
		_, err := fmt.Fprintln(w, "session canceled before it started")
		return err
	}

	pattern := string(record.PatternID)
	if p, ok := app.config.Catalog.PatternByID(record.PatternID); ok {
		pattern = p.Name
	}

	app.logger.Debug("session summary", zap.String("id", record.ID))
	_, err := fmt.Fprintf(w, "session %s: user %s, pattern %s, %s of %s\n",
		record.Outcome,
		record.UserID,
		pattern,
		record.Elapsed().Round(time.Millisecond),
		record.Planned,
	)
	return err
}
