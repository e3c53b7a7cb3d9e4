package employee

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Service struct {
	store         StoreAPI
	blobs         BlobStore
	photoMaxBytes int64
}

func NewService(store StoreAPI, blobs BlobStore, photoMaxBytes int64) *Service {
	return &Service{store: store, blobs: blobs, photoMaxBytes: photoMaxBytes}
}

// List returns one page of the employee set. The echoed SortColumn and
// SortOrder are the caller's values (with defaults filled in), never the
// inverted direction the store actually applied.
func (s *Service) List(ctx context.Context, params ListParams) (Page, error) {
	if params.SortColumn == "" {
		params.SortColumn = DefaultSortColumn
	}
	if params.SortOrder == "" {
		params.SortOrder = DefaultSortOrder
	}
	if params.Page < 1 {
		params.Page = 1
	}

	ident, direction, err := ResolveSort(params.SortColumn, params.SortOrder)
	if err != nil {
		return Page{}, err
	}

	offset := (params.Page - 1) * PageSize
	data, total, err := s.store.ListEmployees(ctx, params.Search, ident, direction, PageSize, offset)
	if err != nil {
		return Page{}, err
	}

	lastPage := (total + PageSize - 1) / PageSize
	if lastPage < 1 {
		lastPage = 1
	}

	return Page{
		Data:        data,
		CurrentPage: params.Page,
		LastPage:    lastPage,
		Total:       total,
		Search:      params.Search,
		SortColumn:  params.SortColumn,
		SortOrder:   params.SortOrder,
	}, nil
}

// ListAll returns the whole filtered set under the same sort contract as
// List, toggle rule included. Backs the directory export.
func (s *Service) ListAll(ctx context.Context, search, sortColumn, sortOrder string) ([]Employee, error) {
	if sortColumn == "" {
		sortColumn = DefaultSortColumn
	}
	ident, direction, err := ResolveSort(sortColumn, sortOrder)
	if err != nil {
		return nil, err
	}
	return s.store.ListAllEmployees(ctx, search, ident, direction)
}

// Create validates the submitted fields, stores the photo (when present)
// and inserts the row. The photo is durably stored before the insert is
// attempted; if the insert then fails the blob is orphaned but never
// referenced by a row. Field issues are returned without touching any
// storage.
func (s *Service) Create(ctx context.Context, in Input, photo []byte) (Employee, []FieldIssue, error) {
	emp, issues := ParseInput(in)

	ext, photoIssue := ValidatePhoto(photo, s.photoMaxBytes)
	if photoIssue != nil {
		issues = append(issues, *photoIssue)
	}

	if emp.DeptNo != "" {
		exists, err := s.store.DepartmentExists(ctx, emp.DeptNo)
		if err != nil {
			return Employee{}, nil, fmt.Errorf("check department: %w", err)
		}
		if !exists {
			issues = append(issues, FieldIssue{Field: "dept_no", Reason: "is not a known department"})
		}
	}

	if len(issues) > 0 {
		return Employee{}, issues, nil
	}

	if len(photo) > 0 {
		ref, err := s.blobs.Store(ctx, "photos", ext, photo)
		if err != nil {
			return Employee{}, nil, fmt.Errorf("%w: %v", ErrPhotoStorage, err)
		}
		emp.PhotoPath = ref
	}

	created, err := s.store.CreateEmployee(ctx, emp)
	if err != nil {
		if emp.PhotoPath != "" {
			zerolog.Ctx(ctx).Warn().Str("photo", emp.PhotoPath).Msg("employee insert failed, stored photo is orphaned")
		}
		return Employee{}, nil, err
	}

	zerolog.Ctx(ctx).Info().Int("empNo", created.EmpNo).Msg("employee created")
	return created, nil, nil
}

func (s *Service) Departments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}
