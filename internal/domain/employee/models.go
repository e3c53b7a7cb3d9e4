package employee

import "time"

// Employee mirrors a row in the employees table. emp_no is assigned once
// at creation and never reused.
type Employee struct {
	EmpNo     int       `json:"emp_no"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gender    string    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	HireDate  time.Time `json:"hire_date"`
	DeptNo    string    `json:"dept_no,omitempty"`
	PhotoPath string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Department struct {
	DeptNo   string `json:"dept_no"`
	DeptName string `json:"dept_name"`
}

// Input carries the raw form fields of a creation request, exactly as
// submitted. It is echoed back on failure so the caller can redisplay.
type Input struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	HireDate  string `json:"hire_date"`
	DeptNo    string `json:"dept_no"`
}

// NewEmployee is a validated Input, ready for the store. DeptNo and
// PhotoPath are stored as NULL when empty.
type NewEmployee struct {
	FirstName string
	LastName  string
	Gender    string
	BirthDate time.Time
	HireDate  time.Time
	DeptNo    string
	PhotoPath string
}

// ListParams select, order and page the listing. SortOrder keeps the
// caller-supplied token untouched; the applied direction is derived from it
// per the toggle rule in sort.go.
type ListParams struct {
	Search     string
	SortColumn string
	SortOrder  string
	Page       int
}

// Page is the listing response envelope. SortOrder echoes the requested
// value, not the direction actually applied, so the client's next click
// toggles off what it asked for.
type Page struct {
	Data        []Employee `json:"data"`
	CurrentPage int        `json:"current_page"`
	LastPage    int        `json:"last_page"`
	Total       int        `json:"total"`
	Search      string     `json:"search"`
	SortColumn  string     `json:"sortColumn"`
	SortOrder   string     `json:"sortOrder"`
}

// PageSize is fixed; the listing contract has no page-size parameter.
const PageSize = 10
