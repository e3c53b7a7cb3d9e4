package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"emprec/internal/domain/employee"
)

// Lister is the slice of the employee service the export needs.
type Lister interface {
	ListAll(ctx context.Context, search, sortColumn, sortOrder string) ([]employee.Employee, error)
}

type Exporter struct {
	employees Lister
	dir       string
}

func NewExporter(employees Lister, dir string) *Exporter {
	return &Exporter{employees: employees, dir: dir}
}

// DirectoryPDF renders the full filtered and sorted employee listing to a
// PDF file and returns its path. The sort contract is the listing's,
// toggle rule included, so the export matches what the screen shows.
func (e *Exporter) DirectoryPDF(ctx context.Context, search, sortColumn, sortOrder string) (string, error) {
	rows, err := e.employees.ListAll(ctx, search, sortColumn, sortOrder)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(e.dir, uuid.NewString()+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Directory")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{20, 40, 40, 15, 30, 30}
	headers := []string{"Emp No", "First Name", "Last Name", "Gender", "Birth Date", "Hire Date"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := []string{
			fmt.Sprintf("%d", row.EmpNo),
			row.FirstName,
			row.LastName,
			row.Gender,
			row.BirthDate.Format("2006-01-02"),
			row.HireDate.Format("2006-01-02"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
