// Package mcp exposes the journal catalog as Model Context Protocol tools
// served over the streamable HTTP transport.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// Tool names.
const (
	ToolGetEntity            = "get_entity"
	ToolSearchJournals       = "search_journals"
	ToolListCategories       = "list_categories"
	ToolListAreas            = "list_areas"
	ToolJournalsInCategories = "journals_in_categories"
	ToolJournalsInAreas      = "journals_in_areas"
	ToolDiamondJournals      = "diamond_journals"
)

// Config contains configuration for the MCP server.
type Config struct {
	Name    string
	Version string
	Logger  *slog.Logger
}

// Server registers the catalog tools on an MCP server.
type Server struct {
	catalog handlers.CatalogService
	logger  *slog.Logger
	srv     *sdk.Server
}

// New creates an MCP server with every catalog tool registered.
func New(catalog handlers.CatalogService, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Name == "" {
		cfg.Name = "journal-catalog"
	}

	s := &Server{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "mcp")),
		srv: sdk.NewServer(&sdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
	}

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolGetEntity,
		Description: "Resolve an ISSN, EISSN, category name or area name to the journal, category or area it identifies",
	}, s.GetEntity)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolSearchJournals,
		Description: "List journals, optionally filtered by exactly one of title, publisher, license, apc or seal",
	}, s.SearchJournals)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolListCategories,
		Description: "List categories, optionally restricted to quartiles or to the categories assigned to areas",
	}, s.ListCategories)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolListAreas,
		Description: "List areas, optionally restricted to the areas assigned to categories",
	}, s.ListAreas)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolJournalsInCategories,
		Description: "List journals assigned to any of the categories with any of the quartiles",
	}, s.JournalsInCategories)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolJournalsInAreas,
		Description: "List journals assigned to any of the areas and carrying any of the licenses",
	}, s.JournalsInAreas)

	sdk.AddTool(s.srv, &sdk.Tool{
		Name:        ToolDiamondJournals,
		Description: "List diamond open access journals (no APC, DOAJ seal) in the areas and categories with the quartiles",
	}, s.DiamondJournals)

	return s
}

// MCP returns the underlying server, for running it over another transport.
func (s *Server) MCP() *sdk.Server {
	return s.srv
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return s.srv
	}, nil)
}

// --- Input types ---

type GetEntityInput struct {
	ID string `json:"id" jsonschema:"ISSN, EISSN, category name or area name"`
}

type SearchJournalsInput struct {
	Title     string   `json:"title,omitempty"     jsonschema:"Case-insensitive title substring"`
	Publisher string   `json:"publisher,omitempty" jsonschema:"Case-insensitive publisher substring"`
	License   []string `json:"license,omitempty"   jsonschema:"Exact licenses, any of which matches"`
	APC       *bool    `json:"apc,omitempty"       jsonschema:"Whether the journal charges an article processing charge"`
	Seal      *bool    `json:"seal,omitempty"      jsonschema:"Whether the journal holds the DOAJ seal"`
}

type ListCategoriesInput struct {
	Quartiles []string `json:"quartiles,omitempty" jsonschema:"Quartiles such as Q1; empty means all"`
	Areas     []string `json:"areas,omitempty"     jsonschema:"Only categories assigned to these areas"`
}

type ListAreasInput struct {
	Categories []string `json:"categories,omitempty" jsonschema:"Only areas assigned to these categories"`
}

type JournalsInCategoriesInput struct {
	Categories []string `json:"categories,omitempty" jsonschema:"Category names; empty means all"`
	Quartiles  []string `json:"quartiles,omitempty"  jsonschema:"Quartiles; empty means all"`
}

type JournalsInAreasInput struct {
	Areas    []string `json:"areas,omitempty"    jsonschema:"Area names; empty means all"`
	Licenses []string `json:"licenses,omitempty" jsonschema:"Licenses; empty means all"`
}

type DiamondJournalsInput struct {
	Areas      []string `json:"areas,omitempty"      jsonschema:"Area names; empty means all"`
	Categories []string `json:"categories,omitempty" jsonschema:"Category names; empty means all"`
	Quartiles  []string `json:"quartiles,omitempty"  jsonschema:"Quartiles; empty means all"`
}

// --- Handlers ---

func (s *Server) GetEntity(ctx context.Context, _ *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("id is required"), nil, nil
	}

	entity, err := s.catalog.GetEntityByID(ctx, input.ID)
	if err != nil {
		return s.fail(ToolGetEntity, err), nil, nil
	}

	if !entity.Found() {
		return toolError("no journal, category or area has id %q", input.ID), nil, nil
	}

	return toolJSON(dto.ToEntityResponse(entity))
}

func (s *Server) SearchJournals(ctx context.Context, _ *sdk.CallToolRequest, input SearchJournalsInput) (*sdk.CallToolResult, any, error) {
	q := dto.JournalQuery{
		Title:     input.Title,
		Publisher: input.Publisher,
		License:   input.License,
		APC:       input.APC,
		Seal:      input.Seal,
	}
	if err := q.Validate(); err != nil {
		return s.fail(ToolSearchJournals, err), nil, nil
	}

	var (
		journals []domain.Journal
		err      error
	)

	switch {
	case q.Title != "":
		journals, err = s.catalog.GetJournalsWithTitle(ctx, q.Title)
	case q.Publisher != "":
		journals, err = s.catalog.GetJournalsPublishedBy(ctx, q.Publisher)
	case len(q.License) > 0:
		journals, err = s.catalog.GetJournalsWithLicense(ctx, q.License)
	case q.APC != nil:
		journals, err = s.catalog.GetJournalsWithAPC(ctx, *q.APC)
	case q.Seal != nil:
		journals, err = s.catalog.GetJournalsWithDOAJSeal(ctx, *q.Seal)
	default:
		journals, err = s.catalog.GetAllJournals(ctx)
	}

	return s.journals(ToolSearchJournals, journals, err)
}

func (s *Server) ListCategories(ctx context.Context, _ *sdk.CallToolRequest, input ListCategoriesInput) (*sdk.CallToolResult, any, error) {
	if len(input.Quartiles) > 0 && len(input.Areas) > 0 {
		return toolError("quartiles and areas cannot be combined"), nil, nil
	}

	var (
		categories []domain.Category
		err        error
	)

	if len(input.Areas) > 0 {
		categories, err = s.catalog.GetCategoriesAssignedToAreas(ctx, input.Areas)
	} else {
		categories, err = s.catalog.GetCategoriesWithQuartile(ctx, input.Quartiles)
	}

	if err != nil {
		return s.fail(ToolListCategories, err), nil, nil
	}

	return toolJSON(dto.MapSlice(categories, dto.ToCategoryResponse))
}

func (s *Server) ListAreas(ctx context.Context, _ *sdk.CallToolRequest, input ListAreasInput) (*sdk.CallToolResult, any, error) {
	var (
		areas []domain.Area
		err   error
	)

	if len(input.Categories) > 0 {
		areas, err = s.catalog.GetAreasAssignedToCategories(ctx, input.Categories)
	} else {
		areas, err = s.catalog.GetAllAreas(ctx)
	}

	if err != nil {
		return s.fail(ToolListAreas, err), nil, nil
	}

	return toolJSON(dto.MapSlice(areas, dto.ToAreaResponse))
}

func (s *Server) JournalsInCategories(
	ctx context.Context,
	_ *sdk.CallToolRequest,
	input JournalsInCategoriesInput,
) (*sdk.CallToolResult, any, error) {
	journals, err := s.catalog.GetJournalsInCategoriesWithQuartile(ctx, input.Categories, input.Quartiles)
	return s.journals(ToolJournalsInCategories, journals, err)
}

func (s *Server) JournalsInAreas(
	ctx context.Context,
	_ *sdk.CallToolRequest,
	input JournalsInAreasInput,
) (*sdk.CallToolResult, any, error) {
	journals, err := s.catalog.GetJournalsInAreasWithLicense(ctx, input.Areas, input.Licenses)
	return s.journals(ToolJournalsInAreas, journals, err)
}

func (s *Server) DiamondJournals(
	ctx context.Context,
	_ *sdk.CallToolRequest,
	input DiamondJournalsInput,
) (*sdk.CallToolResult, any, error) {
	journals, err := s.catalog.GetDiamondJournalsInAreasAndCategoriesWithQuartile(
		ctx, input.Areas, input.Categories, input.Quartiles)
	return s.journals(ToolDiamondJournals, journals, err)
}

func (s *Server) journals(tool string, journals []domain.Journal, err error) (*sdk.CallToolResult, any, error) {
	if err != nil {
		return s.fail(tool, err), nil, nil
	}

	return toolJSON(dto.MapSlice(journals, dto.ToJournalResponse))
}

// fail reports err to the client in the same terms as the HTTP API; store
// causes are only logged.
func (s *Server) fail(tool string, err error) *sdk.CallToolResult {
	status, resp := dto.MapDomainError(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error("tool call failed",
			slog.String("tool", tool),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}

	return toolError("%s: %s", resp.Error.Code, resp.Error.Message)
}

func toolError(format string, args ...any) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*sdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError("marshal result: %v", err), nil, nil
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(data)}},
	}, nil, nil
}
