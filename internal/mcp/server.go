package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"journal_today": {
		def:     todayToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToday },
	},
	"journal_record": {
		def:     recordToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRecord },
	},
	"journal_history": {
		def:     historyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHistory },
	},
	"journal_trend": {
		def:     trendToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTrend },
	},
	"journal_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
	"med_log": {
		def:     medLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMedLog },
	},
	"med_list": {
		def:     medListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMedList },
	},
	"plan_get": {
		def:     planGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePlanGet },
	},
	"plan_save": {
		def:     planSaveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePlanSave },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Flux tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(session *ops.Session, cfg *config.Config, exportDir, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"flux",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(session, cfg, exportDir)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	// Register tools (skip disabled)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(session *ops.Session, cfg *config.Config, exportDir, version string) error {
	s := NewServer(session, cfg, exportDir, version)
	return server.ServeStdio(s)
}
