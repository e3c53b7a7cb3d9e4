package shared

import (
	"net/http/httptest"
	"testing"

	"emprec/internal/domain/employee"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want employee.ListParams
	}{
		{
			name: "all defaults",
			url:  "/api/v1/employees",
			want: employee.ListParams{SortColumn: "emp_no", SortOrder: employee.DefaultSortOrder, Page: 1},
		},
		{
			name: "explicit values pass through",
			url:  "/api/v1/employees?search=geo&sortColumn=last_name&sortOrder=desc&page=4",
			want: employee.ListParams{Search: "geo", SortColumn: "last_name", SortOrder: "desc", Page: 4},
		},
		{
			name: "malformed page clamps to 1",
			url:  "/api/v1/employees?page=zero",
			want: employee.ListParams{SortColumn: "emp_no", SortOrder: employee.DefaultSortOrder, Page: 1},
		},
		{
			name: "negative page clamps to 1",
			url:  "/api/v1/employees?page=-3",
			want: employee.ListParams{SortColumn: "emp_no", SortOrder: employee.DefaultSortOrder, Page: 1},
		},
		{
			name: "unknown sort column passes through for domain rejection",
			url:  "/api/v1/employees?sortColumn=salary",
			want: employee.ListParams{SortColumn: "salary", SortOrder: employee.DefaultSortOrder, Page: 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := ParseListParams(httptest.NewRequest("GET", tc.url, nil))
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
