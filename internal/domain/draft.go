package domain

import (
	"fmt"
	"strings"
)

// MaxAttachments is the advisory cap shown in the upload form. It is a UI
// hint only; drafts with more attachments are not rejected here.
const MaxAttachments = 5

// Attachment is a pending image upload held in memory while the form is open.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Draft is the transient, editable copy of a product's fields plus pending
// image attachments. It exists only while a create/edit form is in flight and
// is never persisted locally.
type Draft struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Features    []string
	Attachments []Attachment
}

// ValidationError reports the draft fields that failed local validation.
// It is raised before any network round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks the draft against the submission rules: name, description
// and category must be non-empty, price and stock non-negative. It returns a
// *ValidationError enumerating every failing field, or nil.
func (d Draft) Validate() *ValidationError {
	var bad []string
	if strings.TrimSpace(d.Name) == "" {
		bad = append(bad, "name")
	}
	if strings.TrimSpace(d.Description) == "" {
		bad = append(bad, "description")
	}
	if d.Price < 0 {
		bad = append(bad, "price")
	}
	if d.Stock < 0 {
		bad = append(bad, "stock")
	}
	if strings.TrimSpace(d.Category) == "" {
		bad = append(bad, "category")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}
