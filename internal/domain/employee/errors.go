package employee

import "errors"

var (
	ErrInvalidSortColumn  = errors.New("sort column is not allowed")
	ErrEmpNoConflict      = errors.New("employee number already allocated")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrPhotoStorage       = errors.New("photo could not be stored")
)
