package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	historyrender "github.com/bnema/vr-therapy-cli/internal/adapters/render/history"
	"github.com/bnema/vr-therapy-cli/internal/application"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged therapy sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}

			return writeHistoryOutput(cmd, app, entries, limit, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print history as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the N most recent sessions")

	return cmd
}

type historyJSON struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	PatternID  string  `json:"pattern_id"`
	Pattern    string  `json:"pattern"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	ElapsedSec float64 `json:"elapsed_seconds"`
	PlannedSec float64 `json:"planned_seconds"`
	Outcome    string  `json:"outcome"`
}

func writeHistoryOutput(cmd *cobra.Command, app *app, entries []application.HistoryEntry, limit int, asJSON bool) error {
	if asJSON {
		recent := application.LatestEntries(entries, limit)
		out := make([]historyJSON, 0, len(recent))
		for _, entry := range recent {
			record := entry.Record
			out = append(out, historyJSON{
				ID:         record.ID,
				UserID:     record.UserID,
				PatternID:  string(record.PatternID),
				Pattern:    entry.PatternName,
				StartTime:  record.StartTime.Format(time.RFC3339Nano),
				EndTime:    record.EndTime.Format(time.RFC3339Nano),
				ElapsedSec: entry.Elapsed.Seconds(),
				PlannedSec: record.Planned.Seconds(),
				Outcome:    string(record.Outcome),
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.historyRenderer(entries, historyrender.RenderOptions{
		Now:   app.now(),
		Limit: limit,
	})
	if err != nil {
		return fmt.Errorf("render history: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
