package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const (
	uniqueViolationCode      = "23505"
	foreignKeyViolationCode  = "23503"
	serializationFailureCode = "40001"
)

// DB is satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Store struct {
	DB DB
}

func NewStore(db DB) *Store {
	return &Store{DB: db}
}

const employeeColumns = `emp_no, first_name, last_name, gender, birth_date, hire_date,
           COALESCE(dept_no, ''), COALESCE(photo_path, ''), created_at`

const searchFilter = `(first_name LIKE '%' || $1 || '%'
       OR emp_no::text LIKE '%' || $1 || '%'
       OR last_name LIKE '%' || $1 || '%')`

// ListEmployees returns one page of the filtered, ordered employee set plus
// the total match count. sortIdent and direction must come from ResolveSort;
// they are the only query fragments not bound as parameters.
func (s *Store) ListEmployees(ctx context.Context, search, sortIdent, direction string, limit, offset int) ([]Employee, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		where = " WHERE " + searchFilter
		args = append(args, search)
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	limitPlaceholder := fmt.Sprintf("$%d", len(args)+1)
	args = append(args, limit)
	offsetPlaceholder := fmt.Sprintf("$%d", len(args)+1)
	args = append(args, offset)

	query := fmt.Sprintf(`
    SELECT %s
    FROM employees%s
    ORDER BY %s %s
    LIMIT %s OFFSET %s
  `, employeeColumns, where, sortIdent, direction, limitPlaceholder, offsetPlaceholder)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	out, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAllEmployees returns the full filtered, ordered set without paging.
// Used by the directory export.
func (s *Store) ListAllEmployees(ctx context.Context, search, sortIdent, direction string) ([]Employee, error) {
	where := ""
	args := []any{}
	if search != "" {
		where = " WHERE " + searchFilter
		args = append(args, search)
	}

	query := fmt.Sprintf(`
    SELECT %s
    FROM employees%s
    ORDER BY %s %s
  `, employeeColumns, where, sortIdent, direction)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// CreateEmployee allocates the next emp_no and inserts the row as one
// all-or-nothing unit. The max read and the insert share a serializable
// transaction so concurrent creations cannot observe the same maximum; a
// lost race surfaces as a serialization failure or unique violation on the
// emp_no primary key and is retried once with a fresh read.
func (s *Store) CreateEmployee(ctx context.Context, emp NewEmployee) (Employee, error) {
	created, err := s.createOnce(ctx, emp)
	if errors.Is(err, ErrEmpNoConflict) {
		zerolog.Ctx(ctx).Warn().Msg("emp_no allocation lost a race, retrying")
		created, err = s.createOnce(ctx, emp)
	}
	return created, err
}

func (s *Store) createOnce(ctx context.Context, emp NewEmployee) (Employee, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return Employee{}, fmt.Errorf("begin create employee: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	var maxEmpNo int
	if err := tx.QueryRow(ctx, "SELECT COALESCE(MAX(emp_no), 0) FROM employees").Scan(&maxEmpNo); err != nil {
		return Employee{}, fmt.Errorf("read max emp_no: %w", err)
	}

	created := Employee{
		EmpNo:     maxEmpNo + 1,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Gender:    emp.Gender,
		BirthDate: emp.BirthDate,
		HireDate:  emp.HireDate,
		DeptNo:    emp.DeptNo,
		PhotoPath: emp.PhotoPath,
	}

	err = tx.QueryRow(ctx, `
    INSERT INTO employees (emp_no, first_name, last_name, gender, birth_date, hire_date, dept_no, photo_path)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at
  `,
		created.EmpNo, emp.FirstName, emp.LastName, emp.Gender, emp.BirthDate, emp.HireDate,
		nullIfEmpty(emp.DeptNo), nullIfEmpty(emp.PhotoPath),
	).Scan(&created.CreatedAt)
	if err != nil {
		return Employee{}, translatePgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Employee{}, translatePgError(err)
	}
	committed = true
	return created, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, "SELECT dept_no, dept_name FROM departments ORDER BY dept_no")
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.DeptNo, &dep.DeptName); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

func (s *Store) DepartmentExists(ctx context.Context, deptNo string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM departments WHERE dept_no = $1", deptNo).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanEmployees(rows pgx.Rows) ([]Employee, error) {
	out := make([]Employee, 0, PageSize)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.EmpNo, &emp.FirstName, &emp.LastName, &emp.Gender,
			&emp.BirthDate, &emp.HireDate, &emp.DeptNo, &emp.PhotoPath, &emp.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode, serializationFailureCode:
			return fmt.Errorf("%w: %s", ErrEmpNoConflict, pgErr.Code)
		case foreignKeyViolationCode:
			return ErrDepartmentNotFound
		}
	}
	return err
}
