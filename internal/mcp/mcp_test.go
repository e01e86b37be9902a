package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/ops"
	"github.com/hpungsan/flux/internal/store"
)

// testSetup creates a temporary store, session, and config for testing.
func testSetup(t *testing.T) (*ops.Session, *config.Config, string) {
	t.Helper()

	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	session, err := ops.OpenSession(database)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	return session, config.DefaultConfig(), tmpDir
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func TestHandleRecord(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "record mood for today",
			args: map[string]any{
				"mood_value": -2,
				"note":       "rough morning",
			},
			wantError: false,
		},
		{
			name: "record with explicit date",
			args: map[string]any{
				"date":       "2024-03-01",
				"mood_value": 1,
			},
			wantError: false,
		},
		{
			name:      "record without any fields",
			args:      map[string]any{},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name: "record with malformed date",
			args: map[string]any{
				"date":       "03/01/2024",
				"mood_value": 1,
			},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := makeRequest(tt.args)
			result, err := h.HandleRecord(ctx, req)

			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else {
				if result.IsError {
					t.Errorf("expected success, got error: %v", extractErrorMessage(result))
				}
			}
		})
	}
}

func TestHandleRecord_CrisisFlag(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)

	result, err := h.HandleRecord(context.Background(), makeRequest(map[string]any{
		"mood_value": -4,
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}

	payload := parsePayload(t, result)
	if payload["crisis"] != true {
		t.Errorf("crisis = %v, want true", payload["crisis"])
	}
	if payload["elevated"] != false {
		t.Errorf("elevated = %v, want false", payload["elevated"])
	}
}

func TestHandleToday(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	result, err := h.HandleToday(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}

	payload := parsePayload(t, result)
	if payload["created"] != true {
		t.Errorf("created = %v, want true for a fresh day", payload["created"])
	}

	// After a record exists, today should return it instead of a default
	if _, err := h.HandleRecord(ctx, makeRequest(map[string]any{"mood_value": 3})); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	result, err = h.HandleToday(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload = parsePayload(t, result)
	if payload["created"] != false {
		t.Errorf("created = %v, want false once a record exists", payload["created"])
	}
}

func TestHandleMedLogAndList(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	result, err := h.HandleMedLog(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	payload := parsePayload(t, result)
	log := payload["log"].(map[string]any)
	if log["name"] != "Quick Dose" {
		t.Errorf("name = %v, want Quick Dose", log["name"])
	}

	if _, err := h.HandleMedLog(ctx, makeRequest(map[string]any{"name": "Lamotrigine 200mg"})); err != nil {
		t.Fatalf("second log failed: %v", err)
	}

	result, err = h.HandleMedList(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload = parsePayload(t, result)
	if payload["count"].(float64) != 2 {
		t.Errorf("count = %v, want 2", payload["count"])
	}
	logs := payload["logs"].([]any)
	first := logs[0].(map[string]any)
	if first["name"] != "Lamotrigine 200mg" {
		t.Errorf("first listed = %v, want the most recent entry", first["name"])
	}
}

func TestHandleHistoryAndTrend(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		args := map[string]any{
			"date":       fmt.Sprintf("2024-03-%02d", i),
			"mood_value": i,
		}
		if _, err := h.HandleRecord(ctx, makeRequest(args)); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	result, err := h.HandleHistory(ctx, makeRequest(map[string]any{"limit": 2}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload := parsePayload(t, result)
	items := payload["items"].([]any)
	if len(items) != 2 {
		t.Errorf("history items = %d, want 2", len(items))
	}
	pagination := payload["pagination"].(map[string]any)
	if pagination["has_more"] != true {
		t.Errorf("has_more = %v, want true", pagination["has_more"])
	}

	result, err = h.HandleTrend(ctx, makeRequest(map[string]any{"days": 2}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload = parsePayload(t, result)
	points := payload["points"].([]any)
	if len(points) != 2 {
		t.Fatalf("trend points = %d, want 2", len(points))
	}
	last := points[1].(map[string]any)
	if last["date"] != "2024-03-03" {
		t.Errorf("last trend date = %v, want 2024-03-03", last["date"])
	}
}

func TestHandlePlanGetAndSave(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	result, err := h.HandlePlanGet(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload := parsePayload(t, result)
	plan := payload["plan"].(map[string]any)
	contacts := plan["contacts"].([]any)
	if len(contacts) != 2 {
		t.Errorf("default plan contacts = %d, want 2", len(contacts))
	}

	result, err = h.HandlePlanSave(ctx, makeRequest(map[string]any{
		"contacts": []any{
			map[string]any{"name": "Dr. Okafor", "phone": "555-0110", "relation": "Psychiatrist"},
		},
		"reminders": []any{"Call before it gets dark."},
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}

	result, err = h.HandlePlanSave(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error for an empty plan")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleExport(t *testing.T) {
	session, cfg, dir := testSetup(t)
	h := NewHandlers(session, cfg, dir)
	ctx := context.Background()

	if _, err := h.HandleRecord(ctx, makeRequest(map[string]any{"mood_value": 2})); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	result, err := h.HandleExport(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	payload := parsePayload(t, result)
	if payload["records"].(float64) != 1 {
		t.Errorf("records = %v, want 1", payload["records"])
	}
	if payload["path"] == "" {
		t.Error("expected a non-empty export path")
	}
}

func TestServerRegistration(t *testing.T) {
	session, cfg, dir := testSetup(t)

	s := NewServer(session, cfg, dir, "test")
	tools := s.ListTools()
	if tools == nil {
		t.Fatal("expected tools to be registered, got nil")
	}

	expectedTools := []string{
		"journal_today",
		"journal_record",
		"journal_history",
		"journal_trend",
		"journal_export",
		"med_log",
		"med_list",
		"plan_get",
		"plan_save",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}

	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	session, cfg, dir := testSetup(t)
	cfg.DisabledTools = []string{"journal_export", "plan_save"}

	s := NewServer(session, cfg, dir, "test")
	tools := s.ListTools()

	if _, ok := tools["journal_export"]; ok {
		t.Error("journal_export should be disabled")
	}
	if _, ok := tools["plan_save"]; ok {
		t.Error("plan_save should be disabled")
	}
	if _, ok := tools["journal_today"]; !ok {
		t.Error("journal_today should remain registered")
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{
			name:    "all valid",
			input:   []string{"journal_export", "med_log"},
			wantLen: 0,
		},
		{
			name:    "one unknown",
			input:   []string{"med_log", "fake_tool"},
			wantLen: 1,
		},
		{
			name:    "all unknown",
			input:   []string{"foo", "bar", "baz"},
			wantLen: 3,
		},
		{
			name:    "empty list",
			input:   []string{},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != len(toolRegistry) {
		t.Errorf("AllToolNames() returned %d names, want %d", len(names), len(toolRegistry))
	}
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	r := errorResult(errors.NewInternal(fmt.Errorf("sql error: open /tmp/secret.db: permission denied")))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrInternal) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrInternal)
	}
	if _, ok := errObj["details"]; ok {
		t.Fatal("expected INTERNAL errors to omit details")
	}
}

func TestErrorResult_NonFluxError(t *testing.T) {
	r := errorResult(fmt.Errorf("plain error"))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}
	assertErrorCode(t, r, "INTERNAL")
}

// parsePayload unmarshals a success result's JSON text content.
func parsePayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("content is not TextContent")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	return payload
}

// assertErrorCode checks that an error result carries the expected code.
func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}
	if code != expectedCode {
		t.Errorf("error code = %s, want %s", code, expectedCode)
	}
}

// extractErrorMessage returns the raw text content of a result for messages.
func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}
