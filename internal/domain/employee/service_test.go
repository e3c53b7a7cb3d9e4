package employee

import (
	"context"
	"errors"
	"testing"
)

type stubStore struct {
	employees   []Employee
	total       int
	listErr     error
	createErr   error
	departments map[string]bool

	gotSearch    string
	gotIdent     string
	gotDirection string
	gotLimit     int
	gotOffset    int
	created      []NewEmployee
	nextEmpNo    int
}

func (s *stubStore) ListEmployees(ctx context.Context, search, sortIdent, direction string, limit, offset int) ([]Employee, int, error) {
	s.gotSearch, s.gotIdent, s.gotDirection = search, sortIdent, direction
	s.gotLimit, s.gotOffset = limit, offset
	return s.employees, s.total, s.listErr
}

func (s *stubStore) ListAllEmployees(ctx context.Context, search, sortIdent, direction string) ([]Employee, error) {
	s.gotSearch, s.gotIdent, s.gotDirection = search, sortIdent, direction
	return s.employees, s.listErr
}

func (s *stubStore) CreateEmployee(ctx context.Context, emp NewEmployee) (Employee, error) {
	if s.createErr != nil {
		return Employee{}, s.createErr
	}
	s.created = append(s.created, emp)
	s.nextEmpNo++
	return Employee{
		EmpNo:     s.nextEmpNo,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Gender:    emp.Gender,
		BirthDate: emp.BirthDate,
		HireDate:  emp.HireDate,
		DeptNo:    emp.DeptNo,
		PhotoPath: emp.PhotoPath,
	}, nil
}

func (s *stubStore) ListDepartments(ctx context.Context) ([]Department, error) {
	return nil, nil
}

func (s *stubStore) DepartmentExists(ctx context.Context, deptNo string) (bool, error) {
	return s.departments[deptNo], nil
}

type stubBlobStore struct {
	stored [][]byte
	ref    string
	err    error
}

func (b *stubBlobStore) Store(ctx context.Context, namespace, ext string, data []byte) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.stored = append(b.stored, data)
	return b.ref, nil
}

func newTestService(store *stubStore, blobs *stubBlobStore) *Service {
	if store.departments == nil {
		store.departments = map[string]bool{"d005": true}
	}
	return NewService(store, blobs, 2097152)
}

func TestListPageEnvelope(t *testing.T) {
	store := &stubStore{total: 25}
	svc := newTestService(store, &stubBlobStore{})

	page, err := svc.List(context.Background(), ListParams{Search: "geo", SortColumn: "last_name", SortOrder: "asc", Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CurrentPage != 3 || page.LastPage != 3 || page.Total != 25 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	if store.gotLimit != PageSize || store.gotOffset != 20 {
		t.Fatalf("expected limit %d offset 20, got %d/%d", PageSize, store.gotLimit, store.gotOffset)
	}
	if page.Search != "geo" || page.SortColumn != "last_name" || page.SortOrder != "asc" {
		t.Fatalf("echoed state mismatch: %+v", page)
	}
}

func TestListEchoesRequestedOrderNotApplied(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store, &stubBlobStore{})

	page, err := svc.List(context.Background(), ListParams{SortColumn: "emp_no", SortOrder: "asc", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.gotDirection != "DESC" {
		t.Fatalf("expected applied direction DESC, got %s", store.gotDirection)
	}
	if page.SortOrder != "asc" {
		t.Fatalf("expected echoed order asc, got %s", page.SortOrder)
	}
}

func TestListDefaults(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store, &stubBlobStore{})

	page, err := svc.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CurrentPage != 1 || page.LastPage != 1 || page.Total != 0 {
		t.Fatalf("expected well-formed empty envelope, got %+v", page)
	}
	if page.SortColumn != "emp_no" || page.SortOrder != DefaultSortOrder {
		t.Fatalf("expected default sort echo, got %+v", page)
	}
	// default order is not "asc", so emp_no inverts it to ASC
	if store.gotIdent != "emp_no" || store.gotDirection != "ASC" {
		t.Fatalf("expected emp_no ASC applied, got %s %s", store.gotIdent, store.gotDirection)
	}
}

func TestListRejectsUnknownSortColumn(t *testing.T) {
	svc := newTestService(&stubStore{}, &stubBlobStore{})
	_, err := svc.List(context.Background(), ListParams{SortColumn: "salary"})
	if !errors.Is(err, ErrInvalidSortColumn) {
		t.Fatalf("expected ErrInvalidSortColumn, got %v", err)
	}
}

func TestCreateSequentialEmpNo(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store, &stubBlobStore{})

	first, issues, err := svc.Create(context.Background(), validInput(), nil)
	if err != nil || len(issues) != 0 {
		t.Fatalf("unexpected failure: %v %v", issues, err)
	}
	second, issues, err := svc.Create(context.Background(), validInput(), nil)
	if err != nil || len(issues) != 0 {
		t.Fatalf("unexpected failure: %v %v", issues, err)
	}
	if second.EmpNo != first.EmpNo+1 {
		t.Fatalf("expected strictly increasing emp_no, got %d then %d", first.EmpNo, second.EmpNo)
	}
}

func TestCreateValidationWritesNothing(t *testing.T) {
	store := &stubStore{}
	blobs := &stubBlobStore{ref: "photos/x.jpg"}
	svc := newTestService(store, blobs)

	in := validInput()
	in.Gender = "X"
	_, issues, err := svc.Create(context.Background(), in, jpegHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected a gender issue")
	}
	if len(store.created) != 0 {
		t.Fatal("no row may be written on validation failure")
	}
	if len(blobs.stored) != 0 {
		t.Fatal("no blob may be stored on validation failure")
	}
}

func TestCreateOversizedPhotoRejectedBeforeStorage(t *testing.T) {
	store := &stubStore{}
	blobs := &stubBlobStore{ref: "photos/x.jpg"}
	svc := newTestService(store, blobs)

	oversized := make([]byte, 3*1024*1024)
	copy(oversized, jpegHeader)
	_, issues, err := svc.Create(context.Background(), validInput(), oversized)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Field != "photo" {
		t.Fatalf("expected a single photo issue, got %v", issues)
	}
	if len(blobs.stored) != 0 {
		t.Fatal("oversized photo must be rejected before any storage write")
	}
}

func TestCreateUnknownDepartmentRejected(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store, &stubBlobStore{})

	in := validInput()
	in.DeptNo = "d999"
	_, issues, err := svc.Create(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 || issues[0].Field != "dept_no" {
		t.Fatalf("expected dept_no issue, got %v", issues)
	}
	if len(store.created) != 0 {
		t.Fatal("no row may be written for an unknown department")
	}
}

func TestCreatePhotoStoredBeforeInsert(t *testing.T) {
	store := &stubStore{}
	blobs := &stubBlobStore{ref: "photos/abc.jpg"}
	svc := newTestService(store, blobs)

	created, issues, err := svc.Create(context.Background(), validInput(), jpegHeader)
	if err != nil || len(issues) != 0 {
		t.Fatalf("unexpected failure: %v %v", issues, err)
	}
	if created.PhotoPath != "photos/abc.jpg" {
		t.Fatalf("expected photo reference on created row, got %q", created.PhotoPath)
	}
	if len(store.created) != 1 || store.created[0].PhotoPath != "photos/abc.jpg" {
		t.Fatalf("insert did not carry the stored reference: %+v", store.created)
	}
}

func TestCreateBlobFailureAbortsBeforeInsert(t *testing.T) {
	store := &stubStore{}
	blobs := &stubBlobStore{err: errors.New("disk full")}
	svc := newTestService(store, blobs)

	_, _, err := svc.Create(context.Background(), validInput(), jpegHeader)
	if !errors.Is(err, ErrPhotoStorage) {
		t.Fatalf("expected ErrPhotoStorage, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatal("no row may be written when blob storage fails")
	}
}

func TestCreateInsertFailurePropagates(t *testing.T) {
	store := &stubStore{createErr: errors.New("connection reset")}
	blobs := &stubBlobStore{ref: "photos/abc.jpg"}
	svc := newTestService(store, blobs)

	_, _, err := svc.Create(context.Background(), validInput(), jpegHeader)
	if err == nil {
		t.Fatal("expected insert failure to propagate")
	}
	// the blob is orphaned, which is acceptable; the row must not exist
	if len(store.created) != 0 {
		t.Fatal("no row may remain after a failed insert")
	}
}
