package employee

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

const maxNameLength = 255

// ParseInput validates the raw form fields and produces a store-ready
// NewEmployee. Validation fails closed: any issue means nothing is
// persisted downstream.
func ParseInput(in Input) (NewEmployee, []FieldIssue) {
	var issues []FieldIssue
	var out NewEmployee

	out.FirstName = strings.TrimSpace(in.FirstName)
	if out.FirstName == "" {
		issues = append(issues, FieldIssue{Field: "first_name", Reason: "is required"})
	} else if len(out.FirstName) > maxNameLength {
		issues = append(issues, FieldIssue{Field: "first_name", Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}

	out.LastName = strings.TrimSpace(in.LastName)
	if out.LastName == "" {
		issues = append(issues, FieldIssue{Field: "last_name", Reason: "is required"})
	} else if len(out.LastName) > maxNameLength {
		issues = append(issues, FieldIssue{Field: "last_name", Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}

	out.Gender = strings.TrimSpace(in.Gender)
	if out.Gender != "M" && out.Gender != "F" {
		issues = append(issues, FieldIssue{Field: "gender", Reason: "must be M or F"})
	}

	if birth, ok := parseDateField(in.BirthDate, "birth_date", &issues); ok {
		out.BirthDate = birth
	}
	if hire, ok := parseDateField(in.HireDate, "hire_date", &issues); ok {
		out.HireDate = hire
	}

	out.DeptNo = strings.TrimSpace(in.DeptNo)

	return out, issues
}

func parseDateField(raw, field string, issues *[]FieldIssue) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*issues = append(*issues, FieldIssue{Field: field, Reason: "is required"})
		return time.Time{}, false
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		*issues = append(*issues, FieldIssue{Field: field, Reason: "must be a valid date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return parsed, true
}

// Recognized photo payloads and the extensions their stored blobs get.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ValidatePhoto sniffs the payload's magic bytes and enforces the size
// bound. Runs before any storage write; an oversized or non-image payload
// never reaches the blob store. An absent photo is always valid.
func ValidatePhoto(data []byte, maxBytes int64) (string, *FieldIssue) {
	if len(data) == 0 {
		return "", nil
	}
	if int64(len(data)) > maxBytes {
		return "", &FieldIssue{Field: "photo", Reason: fmt.Sprintf("must be at most %d bytes", maxBytes)}
	}
	ext, ok := photoExtensions[http.DetectContentType(data)]
	if !ok {
		return "", &FieldIssue{Field: "photo", Reason: "must be a JPEG, PNG or GIF image"}
	}
	return ext, nil
}
