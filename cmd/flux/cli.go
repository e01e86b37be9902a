package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/ops"
	"github.com/hpungsan/flux/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(session *ops.Session, cfg *config.Config, exportDir string) *cli.App {
	app := &cli.App{
		Name:    "flux",
		Usage:   "Personal mood and medication journal",
		Version: Version,
		Commands: []*cli.Command{
			todayCmd(session),
			recordCmd(session),
			historyCmd(session),
			trendCmd(session, cfg),
			medCmd(session),
			medsCmd(session),
			planCmd(session),
			planSaveCmd(session),
			exportCmd(session, exportDir),
			webCmd(session, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// todayCmd creates the today command.
func todayCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Show today's record (a default is shown if nothing is logged yet)",
		Action: func(c *cli.Context) error {
			output, err := ops.Today(session, ops.TodayInput{})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// recordCmd creates the record command.
func recordCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "Update today's record (only the given flags change; set flags replace the whole set)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Calendar day YYYY-MM-DD (default: today)"},
			&cli.IntFlag{Name: "mood", Aliases: []string{"m"}, Usage: "Mood rating, -5 to 5"},
			&cli.StringFlag{Name: "energy", Aliases: []string{"e"}, Usage: "Energy level: Low|Medium|High"},
			&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Free-text note"},
			&cli.StringFlag{Name: "keywords", Usage: "Comma-separated mood keywords (replaces the set)"},
			&cli.StringSliceFlag{Name: "toggle-keyword", Usage: "Toggle a mood keyword in the current set (repeatable)"},
			&cli.StringFlag{Name: "sleep-time", Usage: "Bedtime, HH:MM"},
			&cli.StringFlag{Name: "wake-time", Usage: "Wake time, HH:MM"},
			&cli.IntFlag{Name: "sleep-quality", Usage: "Sleep quality, 1 to 5"},
			&cli.StringFlag{Name: "sleep-issues", Usage: "Comma-separated sleep issues (replaces the set)"},
			&cli.StringSliceFlag{Name: "toggle-sleep-issue", Usage: "Toggle a sleep issue in the current set (repeatable)"},
			&cli.StringFlag{Name: "events", Usage: "Comma-separated events (replaces the set)"},
			&cli.StringSliceFlag{Name: "toggle-event", Usage: "Toggle an event in the current set (repeatable)"},
			&cli.StringFlag{Name: "impact", Usage: "Event impact: negative|neutral|positive"},
			&cli.StringFlag{Name: "warning-signs", Usage: "Comma-separated warning signs (replaces the set)"},
			&cli.StringSliceFlag{Name: "toggle-warning-sign", Usage: "Toggle a warning sign in the current set (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			date := c.String("date")
			active := activeRecord(session, date)

			partial := journal.Partial{}

			if c.IsSet("mood") {
				mood := c.Int("mood")
				partial.MoodValue = &mood
			}
			if c.IsSet("energy") {
				energy := journal.EnergyLevel(c.String("energy"))
				partial.EnergyLevel = &energy
			}
			if c.IsSet("note") {
				note := c.String("note")
				partial.Note = &note
			}
			if c.IsSet("sleep-time") {
				st := c.String("sleep-time")
				partial.SleepTime = &st
			}
			if c.IsSet("wake-time") {
				wt := c.String("wake-time")
				partial.WakeTime = &wt
			}
			if c.IsSet("sleep-quality") {
				q := c.Int("sleep-quality")
				partial.SleepQuality = &q
			}
			if c.IsSet("impact") {
				impact := journal.EventImpact(c.String("impact"))
				partial.EventImpact = &impact
			}

			partial.Keywords = resolveTagSet(c, "keywords", "toggle-keyword", active.Keywords)
			partial.SleepIssues = resolveTagSet(c, "sleep-issues", "toggle-sleep-issue", active.SleepIssues)
			partial.Events = resolveTagSet(c, "events", "toggle-event", active.Events)
			partial.WarningSigns = resolveTagSet(c, "warning-signs", "toggle-warning-sign", active.WarningSigns)

			output, err := ops.Record(session, ops.RecordInput{
				Date:    date,
				Partial: partial,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// historyCmd creates the history command.
func historyCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Page through daily records",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultHistoryLimit, Usage: "Maximum records to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "Records to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.History(session, ops.HistoryInput{
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// trendCmd creates the trend command.
func trendCmd(session *ops.Session, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "trend",
		Usage: "Chart-ready projection of recent days (mood, sleep, energy)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Aliases: []string{"d"}, Usage: "Window size in entries (default from config)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Trend(session, cfg, ops.TrendInput{
				Days: c.Int("days"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// medCmd creates the med command.
func medCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "med",
		Usage: "Log a medication dose taken now",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Dose label (default: Quick Dose)"},
			&cli.StringFlag{Name: "photo", Aliases: []string{"p"}, Usage: "Photo attachment reference"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.MedLog(session, ops.MedLogInput{
				Name:     c.String("name"),
				PhotoRef: c.String("photo"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// medsCmd creates the meds command.
func medsCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "meds",
		Usage: "Show today's medication history, most recent first",
		Action: func(c *cli.Context) error {
			output, err := ops.MedList(session, ops.MedListInput{})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// planCmd creates the plan command.
func planCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Show the safety plan",
		Action: func(c *cli.Context) error {
			output, err := ops.PlanGet(session)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// planSaveCmd creates the plan-save command.
func planSaveCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "plan-save",
		Usage: "Replace the safety plan (reads the plan as JSON from stdin)",
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("plan JSON must be piped via stdin"))
			}

			raw, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			var plan journal.SafetyPlan
			if err := json.Unmarshal([]byte(raw), &plan); err != nil {
				return outputError(errors.NewInvalidRequest("invalid plan JSON: " + err.Error()))
			}

			output, err := ops.PlanSave(session, ops.PlanSaveInput{Plan: plan})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(session *ops.Session, exportDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all records and medication logs to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Target directory (default: ~/.flux/exports)"},
		},
		Action: func(c *cli.Context) error {
			dir := c.String("dir")
			if dir == "" {
				dir = exportDir
			}

			output, err := ops.Export(session, ops.ExportInput{Dir: dir})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(session *ops.Session, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the read-mostly web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind := c.String("bind")
			if bind == "" {
				bind = cfg.WebBind
			}
			port := c.Int("port")
			if port == 0 {
				port = cfg.WebPort
			}

			srv := web.NewServer(session, cfg, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// Helper functions

// activeRecord returns the record toggles operate against: the stored record
// for the date if one exists, otherwise a default day.
func activeRecord(session *ops.Session, date string) journal.DailyRecord {
	if date == "" {
		date = journal.DateKey(time.Now())
	}
	if rec, ok := journal.FindByDate(session.Records(), date); ok {
		return rec
	}
	return journal.NewDailyRecord("", date, time.Now())
}

// resolveTagSet combines a full-replacement flag with toggle flags against
// the current set. Returns nil when neither flag was given.
func resolveTagSet(c *cli.Context, setFlag, toggleFlag string, current []string) *[]string {
	if !c.IsSet(setFlag) && !c.IsSet(toggleFlag) {
		return nil
	}

	set := current
	if c.IsSet(setFlag) {
		set = parseTags(c.String(setFlag))
	}
	for _, item := range c.StringSlice(toggleFlag) {
		set = journal.Toggle(set, strings.TrimSpace(item))
	}
	return &set
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if fluxErr, ok := err.(*errors.FluxError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", fluxErr.Code, fluxErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseTags splits a comma-separated string into a slice of tags.
func parseTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
