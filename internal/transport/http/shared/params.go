package shared

import (
	"net/http"
	"strconv"

	"emprec/internal/domain/employee"
)

// ParseListParams reads the listing query parameters, filling in the
// contract's defaults. A missing or malformed page clamps to 1 rather than
// erroring; sort validation happens in the domain.
func ParseListParams(r *http.Request) employee.ListParams {
	q := r.URL.Query()

	params := employee.ListParams{
		Search:     q.Get("search"),
		SortColumn: q.Get("sortColumn"),
		SortOrder:  q.Get("sortOrder"),
		Page:       1,
	}
	if params.SortColumn == "" {
		params.SortColumn = employee.DefaultSortColumn
	}
	if params.SortOrder == "" {
		params.SortOrder = employee.DefaultSortOrder
	}
	if raw := q.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			params.Page = parsed
		}
	}
	return params
}
