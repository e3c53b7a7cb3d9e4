package employeeshandler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"emprec/internal/domain/employee"
	"emprec/internal/transport/http/api"
	"emprec/internal/transport/http/middleware"
	"emprec/internal/transport/http/shared"
)

// multipartMemoryLimit caps how much of the form is held in memory while
// parsing; larger parts spill to temp files.
const multipartMemoryLimit = 4 << 20

type Service interface {
	List(ctx context.Context, params employee.ListParams) (employee.Page, error)
	Create(ctx context.Context, in employee.Input, photo []byte) (employee.Employee, []employee.FieldIssue, error)
	Departments(ctx context.Context) ([]employee.Department, error)
}

type Exporter interface {
	DirectoryPDF(ctx context.Context, search, sortColumn, sortOrder string) (string, error)
}

type Handler struct {
	Service  Service
	Exporter Exporter
}

func NewHandler(service Service, exporter Exporter) *Handler {
	return &Handler{Service: service, Exporter: exporter}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export", h.handleExport)
	})
	r.Get("/departments", h.handleListDepartments)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := shared.ParseListParams(r)

	page, err := h.Service.List(r.Context(), params)
	if err != nil {
		if errors.Is(err, employee.ErrInvalidSortColumn) {
			api.Fail(w, http.StatusBadRequest, "invalid_sort_column", "unknown sort column", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, page, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart payload", middleware.GetRequestID(r.Context()))
		return
	}

	in := employee.Input{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Gender:    r.FormValue("gender"),
		BirthDate: r.FormValue("birth_date"),
		HireDate:  r.FormValue("hire_date"),
		DeptNo:    r.FormValue("dept_no"),
	}

	var photo []byte
	file, _, err := r.FormFile("photo")
	switch {
	case err == nil:
		photo, err = io.ReadAll(file)
		file.Close()
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read photo", middleware.GetRequestID(r.Context()))
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// photo is optional
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid photo part", middleware.GetRequestID(r.Context()))
		return
	}

	created, issues, err := h.Service.Create(r.Context(), in, photo)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("employee create failed")
		if errors.Is(err, employee.ErrPhotoStorage) {
			api.FailWithDetails(w, http.StatusInternalServerError, "photo_store_failed", "failed to store photo",
				map[string]any{"input": in}, middleware.GetRequestID(r.Context()))
			return
		}
		api.FailWithDetails(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee",
			map[string]any{"input": in}, middleware.GetRequestID(r.Context()))
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "submitted fields failed validation",
			map[string]any{"fields": issues, "input": in}, middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path, err := h.Exporter.DirectoryPDF(r.Context(), q.Get("search"), q.Get("sortColumn"), q.Get("sortOrder"))
	if err != nil {
		if errors.Is(err, employee.ErrInvalidSortColumn) {
			api.Fail(w, http.StatusBadRequest, "invalid_sort_column", "unknown sort column", middleware.GetRequestID(r.Context()))
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("directory export failed")
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export directory", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employee-directory.pdf"`)
	http.ServeFile(w, r, path)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.Departments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}
