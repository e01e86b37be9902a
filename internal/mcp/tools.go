package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// stringItems is the JSON schema for tag-set array parameters.
var stringItems = map[string]any{"type": "string"}

var todayToolDef = mcp.NewTool("journal_today",
	mcp.WithDescription("Get the active daily record for the current calendar date. Returns a default record (mood 0, energy Medium, empty tag sets) when no entry exists yet; nothing is persisted until journal_record."),
)

var recordToolDef = mcp.NewTool("journal_record",
	mcp.WithDescription("Merge field updates into the day's record and persist the collection. Omitted fields are untouched; tag-set fields replace the whole set (toggle by sending the full new set). Returns the merged record plus crisis/elevated mood flags."),
	mcp.WithString("date",
		mcp.Description("Calendar day YYYY-MM-DD (default: today)"),
	),
	mcp.WithNumber("mood_value",
		mcp.Description("Mood rating, -5 (worst) to 5 (manic high), 0 neutral"),
	),
	mcp.WithString("energy_level",
		mcp.Description("Coarse energy rating"),
		mcp.Enum("Low", "Medium", "High"),
	),
	mcp.WithArray("keywords",
		mcp.Description("Mood keyword tags, full replacement"),
		mcp.Items(stringItems),
	),
	mcp.WithString("note",
		mcp.Description("Free-text note about the day"),
	),
	mcp.WithString("sleep_time",
		mcp.Description("Bedtime, HH:MM"),
	),
	mcp.WithString("wake_time",
		mcp.Description("Wake time, HH:MM"),
	),
	mcp.WithNumber("sleep_quality",
		mcp.Description("Sleep quality, 1 to 5"),
	),
	mcp.WithArray("sleep_issues",
		mcp.Description("Sleep issue tags, full replacement"),
		mcp.Items(stringItems),
	),
	mcp.WithArray("events",
		mcp.Description("Daily event tags, full replacement"),
		mcp.Items(stringItems),
	),
	mcp.WithString("event_impact",
		mcp.Description("Overall impact of the day's events"),
		mcp.Enum("negative", "neutral", "positive"),
	),
	mcp.WithArray("warning_signs",
		mcp.Description("Episode warning-sign tags, full replacement"),
		mcp.Items(stringItems),
	),
)

var historyToolDef = mcp.NewTool("journal_history",
	mcp.WithDescription("Page through daily records in storage order."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum items to return (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Items to skip"),
	),
)

var trendToolDef = mcp.NewTool("journal_trend",
	mcp.WithDescription("Chart-ready projection of recent days, date ascending: mood, sleep quality, and numeric energy (Low=1, Medium=3, High=5). Read-only."),
	mcp.WithNumber("days",
		mcp.Description("Window size in entries (default from config, normally 14)"),
	),
)

var exportToolDef = mcp.NewTool("journal_export",
	mcp.WithDescription("Export all daily records and medication logs to a JSONL file in the exports directory, e.g. for sharing with a clinician."),
)

var medLogToolDef = mcp.NewTool("med_log",
	mcp.WithDescription("Log a medication as taken right now. Append-only: every call adds a new entry."),
	mcp.WithString("name",
		mcp.Description("Dose label (default: Quick Dose)"),
	),
	mcp.WithString("photo_ref",
		mcp.Description("Opaque photo attachment reference"),
	),
)

var medListToolDef = mcp.NewTool("med_list",
	mcp.WithDescription("Today's medication history, most recent first."),
)

var planGetToolDef = mcp.NewTool("plan_get",
	mcp.WithDescription("Get the safety plan: emergency contacts and grounding reminders. Returns the built-in template when none has been saved."),
)

var planSaveToolDef = mcp.NewTool("plan_save",
	mcp.WithDescription("Replace the safety plan with the given contacts and reminders."),
	mcp.WithArray("contacts",
		mcp.Description("Ordered contacts, each {name, phone, relation}"),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":     map[string]any{"type": "string"},
				"phone":    map[string]any{"type": "string"},
				"relation": map[string]any{"type": "string"},
			},
		}),
	),
	mcp.WithArray("reminders",
		mcp.Description("Ordered free-text reminders"),
		mcp.Items(stringItems),
	),
)
