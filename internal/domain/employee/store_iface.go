package employee

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context, search, sortIdent, direction string, limit, offset int) ([]Employee, int, error)
	ListAllEmployees(ctx context.Context, search, sortIdent, direction string) ([]Employee, error)
	CreateEmployee(ctx context.Context, emp NewEmployee) (Employee, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	DepartmentExists(ctx context.Context, deptNo string) (bool, error)
}

// BlobStore persists binary attachments and hands back a stable reference.
// A returned reference is durable; the row insert may rely on it.
type BlobStore interface {
	Store(ctx context.Context, namespace, ext string, data []byte) (string, error)
}
