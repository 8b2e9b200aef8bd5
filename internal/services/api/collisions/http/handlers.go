// Package http provides http transport for collisions
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"crashlens/internal/modkit/httpkit"
	"crashlens/internal/services/api/collisions/domain"
	svc "crashlens/internal/services/api/collisions/service"
)

// Register mounts collision endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// filtered rows
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)

	// aggregate metrics over the same criteria
	httpkit.PostJSON[domain.QueryInput](r, "/summary", h.summary)

	// free-text query introspection
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)

	// dropdown option values
	httpkit.Get(r, "/options/{column}", h.options)

	// columns present in the loaded snapshot
	httpkit.Get(r, "/columns", h.columns)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /collisions/query Collisions collisionsQuery
// @Summary Filtered person-rows
// @Tags Collisions
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Criteria"
// @Success 200 {object} domain.QueryResult "ok"
// @Router /collisions/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.svc.Query(r.Context(), in)
}

// swagger:route POST /collisions/summary Collisions collisionsSummary
// @Summary Aggregate metrics for a filtered view
// @Tags Collisions
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Criteria"
// @Success 200 {object} domain.SummaryResult "ok"
// @Router /collisions/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.svc.Summarize(r.Context(), in)
}

// swagger:route POST /collisions/parse Collisions collisionsParse
// @Summary Parse a free-text query into structured criteria
// @Tags Collisions
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Query"
// @Success 200 {object} domain.ParseResult "ok"
// @Router /collisions/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// swagger:route GET /collisions/options/{column} Collisions collisionsOptions
// @Summary Distinct values for a column
// @Tags Collisions
// @Produce json
// @Param column path string true "Column name"
// @Success 200 {object} domain.OptionsResult "ok"
// @Router /collisions/options/{column} [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context(), chi.URLParam(r, "column"))
}

// swagger:route GET /collisions/columns Collisions collisionsColumns
// @Summary Columns present in the loaded snapshot
// @Tags Collisions
// @Produce json
// @Success 200 {object} domain.ColumnsResult "ok"
// @Router /collisions/columns [get]
func (h *handlers) columns(r *stdhttp.Request) (any, error) {
	return h.svc.Columns(r.Context())
}
