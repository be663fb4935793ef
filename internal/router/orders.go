package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Takumouse/sales-dashboard2/internal/export"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/pagination"
	"github.com/Takumouse/sales-dashboard2/internal/report"
)

type ordersResponse struct {
	Rows    []order.Order      `json:"rows"`
	Page    pagination.Page    `json:"page"`
	Summary report.Summary     `json:"summary"`
	Filter  filter.Criteria    `json:"filter"`
	Sort    filter.SortOptions `json:"sort"`
}

// workingSet runs filter then sort over the store for a stateless query.
func (router *router) workingSet(params url.Values) ([]order.Order, filter.Criteria, filter.SortOptions, error) {
	criteria, sort, err := filter.ParseQuery(params)
	if err != nil {
		return nil, filter.Criteria{}, filter.SortOptions{}, err
	}

	orders := filter.Apply(router.controller.Store().All(), criteria)

	return filter.Sort(orders, sort), criteria, sort, nil
}

func queryInt(params url.Values, key string, fallback int) (int, error) {
	value := params.Get(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func (router *router) ordersHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	working, criteria, sort, err := router.workingSet(params)
	if err != nil {
		router.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	pageSize, err := queryInt(params, "page_size", router.controller.Snapshot().State.PageSize)
	if err != nil {
		router.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	pageSize = pagination.ClampPageSize(pageSize, pagination.PageSizeConfig{
		Default: pagination.DefaultPageSize,
		Max:     pagination.MaxPageSize,
	})

	page, err := queryInt(params, "page", 1)
	if err != nil {
		router.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	router.writeJSON(w, http.StatusOK, ordersResponse{
		Rows:    pagination.Paginate(working, pageSize, page),
		Page:    pagination.NewPage(len(working), pageSize, page),
		Summary: report.Summarize(working),
		Filter:  criteria,
		Sort:    sort,
	})
}

func (router *router) ordersCSVHandler(w http.ResponseWriter, r *http.Request) {
	working, _, _, err := router.workingSet(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

	if err := export.CSV(w, working); err != nil {
		router.logger.Error("Failed to export orders", "error", err)
	}
}
