package interlinear

import (
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// GetInput identifies a verse either by a reference string or by its parts.
// Ref wins when both are present.
type GetInput struct {
	Ref     string
	Book    string
	Chapter string
	Verse   string
	Debug   bool
}

// Validate checks that one of the two addressing forms is complete.
func (i GetInput) Validate() error {
	if strings.TrimSpace(i.Ref) != "" {
		return nil
	}

	var errs []domain.FieldError
	if strings.TrimSpace(i.Book) == "" {
		errs = append(errs, domain.FieldError{Field: "book", Message: "required when ref is absent"})
	}
	if strings.TrimSpace(i.Chapter) == "" {
		errs = append(errs, domain.FieldError{Field: "chapter", Message: "required when ref is absent"})
	}
	if strings.TrimSpace(i.Verse) == "" {
		errs = append(errs, domain.FieldError{Field: "verse", Message: "required when ref is absent"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
