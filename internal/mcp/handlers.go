package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	session   *ops.Session
	cfg       *config.Config
	exportDir string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(session *ops.Session, cfg *config.Config, exportDir string) *Handlers {
	return &Handlers{session: session, cfg: cfg, exportDir: exportDir}
}

// Request types for each tool

// RecordRequest represents the arguments for journal_record. The embedded
// partial carries the field updates; absent arguments stay nil.
type RecordRequest struct {
	Date string `json:"date,omitempty"`
	journal.Partial
}

// HistoryRequest represents the arguments for journal_history.
type HistoryRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// TrendRequest represents the arguments for journal_trend.
type TrendRequest struct {
	Days int `json:"days,omitempty"`
}

// MedLogRequest represents the arguments for med_log.
type MedLogRequest struct {
	Name     string `json:"name,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

// PlanSaveRequest represents the arguments for plan_save.
type PlanSaveRequest struct {
	Contacts  []journal.Contact `json:"contacts,omitempty"`
	Reminders []string          `json:"reminders,omitempty"`
}

// decode unmarshals MCP request arguments into a typed struct.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	args := req.GetArguments()
	b, err := json.Marshal(args)
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

// Handler implementations

// HandleToday handles the journal_today tool call.
func (h *Handlers) HandleToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Today(h.session, ops.TodayInput{})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRecord handles the journal_record tool call.
func (h *Handlers) HandleRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RecordRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Record(h.session, ops.RecordInput{
		Date:    input.Date,
		Partial: input.Partial,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHistory handles the journal_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HistoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.History(h.session, ops.HistoryInput{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTrend handles the journal_trend tool call.
func (h *Handlers) HandleTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TrendRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Trend(h.session, h.cfg, ops.TrendInput{
		Days: input.Days,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the journal_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Export(h.session, ops.ExportInput{Dir: h.exportDir})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleMedLog handles the med_log tool call.
func (h *Handlers) HandleMedLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MedLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.MedLog(h.session, ops.MedLogInput{
		Name:     input.Name,
		PhotoRef: input.PhotoRef,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleMedList handles the med_list tool call.
func (h *Handlers) HandleMedList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.MedList(h.session, ops.MedListInput{})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePlanGet handles the plan_get tool call.
func (h *Handlers) HandlePlanGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.PlanGet(h.session)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePlanSave handles the plan_save tool call.
func (h *Handlers) HandlePlanSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PlanSaveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.PlanSave(h.session, ops.PlanSaveInput{
		Plan: journal.SafetyPlan{
			Contacts:  input.Contacts,
			Reminders: input.Reminders,
		},
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult creates an MCP error result from a FluxError or generic error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if fluxErr, ok := err.(*errors.FluxError); ok {
		errorObj := map[string]any{
			"code":    fluxErr.Code,
			"message": fluxErr.Message,
			"status":  fluxErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if fluxErr.Code != errors.ErrInternal && fluxErr.Details != nil {
			errorObj["details"] = fluxErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
