package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// CatalogService is the query surface the catalog handlers depend on.
// *app.Catalog implements it.
type CatalogService interface {
	GetAllJournals(ctx context.Context) ([]domain.Journal, error)
	GetJournalsWithTitle(ctx context.Context, substring string) ([]domain.Journal, error)
	GetJournalsPublishedBy(ctx context.Context, substring string) ([]domain.Journal, error)
	GetJournalsWithLicense(ctx context.Context, licenses []string) ([]domain.Journal, error)
	GetJournalsWithAPC(ctx context.Context, apc bool) ([]domain.Journal, error)
	GetJournalsWithDOAJSeal(ctx context.Context, seal bool) ([]domain.Journal, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoriesWithQuartile(ctx context.Context, quartiles []string) ([]domain.Category, error)
	GetAllAreas(ctx context.Context) ([]domain.Area, error)
	GetCategoriesAssignedToAreas(ctx context.Context, areaIDs []string) ([]domain.Category, error)
	GetAreasAssignedToCategories(ctx context.Context, categoryIDs []string) ([]domain.Area, error)
	GetEntityByID(ctx context.Context, id string) (domain.Entity, error)
	GetJournalsInCategoriesWithQuartile(ctx context.Context, categoryIDs, quartiles []string) ([]domain.Journal, error)
	GetJournalsInAreasWithLicense(ctx context.Context, areaIDs, licenses []string) ([]domain.Journal, error)
	GetDiamondJournalsInAreasAndCategoriesWithQuartile(
		ctx context.Context,
		areaIDs, categoryIDs, quartiles []string,
	) ([]domain.Journal, error)
}

// CatalogHandler serves the journal catalog over HTTP.
type CatalogHandler struct {
	catalog CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListJournals handles GET /api/v1/journals.
// At most one of title, publisher, license, apc and seal may be given;
// without any filter every journal is listed.
//
// @Summary List journals
// @Tags journals
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param publisher query string false "Case-insensitive publisher substring"
// @Param license query []string false "Exact license"
// @Param apc query bool false "Article processing charge"
// @Param seal query bool false "DOAJ seal"
// @Success 200 {object} dto.PaginatedResponse[dto.JournalResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/journals [get]
func (h *CatalogHandler) ListJournals(c *gin.Context) {
	var q dto.JournalQuery
	if !bindQuery(c, &q) {
		return
	}

	ctx := c.Request.Context()

	var (
		journals []domain.Journal
		err      error
	)

	switch {
	case q.Title != "":
		journals, err = h.catalog.GetJournalsWithTitle(ctx, q.Title)
	case q.Publisher != "":
		journals, err = h.catalog.GetJournalsPublishedBy(ctx, q.Publisher)
	case len(q.License) > 0:
		journals, err = h.catalog.GetJournalsWithLicense(ctx, q.License)
	case q.APC != nil:
		journals, err = h.catalog.GetJournalsWithAPC(ctx, *q.APC)
	case q.Seal != nil:
		journals, err = h.catalog.GetJournalsWithDOAJSeal(ctx, *q.Seal)
	default:
		journals, err = h.catalog.GetAllJournals(ctx)
	}

	respondJournals(c, q.PaginationRequest, journals, err)
}

// ListCategories handles GET /api/v1/categories.
//
// @Summary List categories, optionally restricted to quartiles
// @Tags categories
// @Produce json
// @Param quartile query []string false "Quartile"
// @Success 200 {object} dto.PaginatedResponse[dto.CategoryResponse]
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var q dto.CategoryQuery
	if !bindQuery(c, &q) {
		return
	}

	categories, err := h.catalog.GetCategoriesWithQuartile(c.Request.Context(), q.Quartile)
	respondPage(c, q.PaginationRequest, categories, err, dto.ToCategoryResponse)
}

// ListAreas handles GET /api/v1/areas.
//
// @Summary List areas
// @Tags areas
// @Produce json
// @Success 200 {object} dto.PaginatedResponse[dto.AreaResponse]
// @Router /api/v1/areas [get]
func (h *CatalogHandler) ListAreas(c *gin.Context) {
	var q dto.PaginationRequest
	if !bindQuery(c, &q) {
		return
	}

	areas, err := h.catalog.GetAllAreas(c.Request.Context())
	respondPage(c, q, areas, err, dto.ToAreaResponse)
}

// ListCategoriesByArea handles GET /api/v1/categories/by-area.
//
// @Summary List categories assigned to areas
// @Tags categories
// @Produce json
// @Param area query []string false "Area name"
// @Success 200 {object} dto.PaginatedResponse[dto.CategoryResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/categories/by-area [get]
func (h *CatalogHandler) ListCategoriesByArea(c *gin.Context) {
	var q dto.CategoriesByAreaQuery
	if !bindQuery(c, &q) {
		return
	}

	categories, err := h.catalog.GetCategoriesAssignedToAreas(c.Request.Context(), q.Area)
	respondPage(c, q.PaginationRequest, categories, err, dto.ToCategoryResponse)
}

// ListAreasByCategory handles GET /api/v1/areas/by-category.
//
// @Summary List areas assigned to categories
// @Tags areas
// @Produce json
// @Param category query []string false "Category name"
// @Success 200 {object} dto.PaginatedResponse[dto.AreaResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/areas/by-category [get]
func (h *CatalogHandler) ListAreasByCategory(c *gin.Context) {
	var q dto.AreasByCategoryQuery
	if !bindQuery(c, &q) {
		return
	}

	areas, err := h.catalog.GetAreasAssignedToCategories(c.Request.Context(), q.Category)
	respondPage(c, q.PaginationRequest, areas, err, dto.ToAreaResponse)
}

// GetEntity handles GET /api/v1/entities/:id.
// The id is tried as a journal identifier first, then as a category or
// area name.
//
// @Summary Resolve an identifier
// @Tags entities
// @Produce json
// @Param id path string true "ISSN, EISSN, category or area name"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/entities/{id} [get]
func (h *CatalogHandler) GetEntity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "entity ID is required")
		return
	}

	entity, err := h.catalog.GetEntityByID(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !entity.Found() {
		dto.HandleError(c, domain.NewNotFoundError("entity", id))
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// ListJournalsInCategories handles GET /api/v1/journals/in-categories.
//
// @Summary List journals in categories with a quartile
// @Tags journals
// @Produce json
// @Param category query []string false "Category name"
// @Param quartile query []string false "Quartile"
// @Success 200 {object} dto.PaginatedResponse[dto.JournalResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/journals/in-categories [get]
func (h *CatalogHandler) ListJournalsInCategories(c *gin.Context) {
	var q dto.JournalsInCategoriesQuery
	if !bindQuery(c, &q) {
		return
	}

	journals, err := h.catalog.GetJournalsInCategoriesWithQuartile(c.Request.Context(), q.Category, q.Quartile)
	respondJournals(c, q.PaginationRequest, journals, err)
}

// ListJournalsInAreas handles GET /api/v1/journals/in-areas.
//
// @Summary List journals in areas with a license
// @Tags journals
// @Produce json
// @Param area query []string false "Area name"
// @Param license query []string false "Exact license"
// @Success 200 {object} dto.PaginatedResponse[dto.JournalResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/journals/in-areas [get]
func (h *CatalogHandler) ListJournalsInAreas(c *gin.Context) {
	var q dto.JournalsInAreasQuery
	if !bindQuery(c, &q) {
		return
	}

	journals, err := h.catalog.GetJournalsInAreasWithLicense(c.Request.Context(), q.Area, q.License)
	respondJournals(c, q.PaginationRequest, journals, err)
}

// ListDiamondJournals handles GET /api/v1/journals/diamond.
// Diamond journals charge no APC and appear in both the areas and the
// categories with a quartile.
//
// @Summary List diamond journals in areas and categories
// @Tags journals
// @Produce json
// @Param area query []string false "Area name"
// @Param category query []string false "Category name"
// @Param quartile query []string false "Quartile"
// @Success 200 {object} dto.PaginatedResponse[dto.JournalResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/journals/diamond [get]
func (h *CatalogHandler) ListDiamondJournals(c *gin.Context) {
	var q dto.DiamondJournalsQuery
	if !bindQuery(c, &q) {
		return
	}

	journals, err := h.catalog.GetDiamondJournalsInAreasAndCategoriesWithQuartile(
		c.Request.Context(), q.Area, q.Category, q.Quartile)
	respondJournals(c, q.PaginationRequest, journals, err)
}

// RegisterCatalogRoutes registers catalog routes on the given router group.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	journals := rg.Group("/journals")
	journals.GET("", h.ListJournals)
	journals.GET("/in-categories", h.ListJournalsInCategories)
	journals.GET("/in-areas", h.ListJournalsInAreas)
	journals.GET("/diamond", h.ListDiamondJournals)

	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/by-area", h.ListCategoriesByArea)
	rg.GET("/areas", h.ListAreas)
	rg.GET("/areas/by-category", h.ListAreasByCategory)
	rg.GET("/entities/:id", h.GetEntity)
}

// bindQuery binds and validates the query string into q, writing the error
// response and returning false when it is rejected.
func bindQuery(c *gin.Context, q any) bool {
	err := dto.BindQuery(c, q)

	switch {
	case err == nil:
		return true
	case errors.Is(err, dto.ErrBinding):
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")
	case errors.Is(err, dto.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.FieldErrors(err),
		).WithTraceID(dto.GetTraceID(c)))
	default:
		dto.HandleError(c, err)
	}

	return false
}

func respondJournals(c *gin.Context, page dto.PaginationRequest, journals []domain.Journal, err error) {
	respondPage(c, page, journals, err, dto.ToJournalResponse)
}

func respondPage[S, T any](c *gin.Context, page dto.PaginationRequest, items []S, err error, convert func(S) T) {
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp, err := dto.Paginate(dto.MapSlice(items, convert), page)
	if errors.Is(err, dto.ErrInvalidCursor) {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	}

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
