// Package validation holds the schema rules for every entity input variant.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("book_status", func(fl validator.FieldLevel) bool {
		return entity.BookStatus(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

func (v *Validator) ValidateID(id int64) error {
	if id <= 0 {
		return entity.NewValidationError("id", "must be a positive integer")
	}

	return nil
}

func (v *Validator) structFull(s any) error {
	return v.translate(v.v.Struct(s))
}

func (v *Validator) structPartial(s any, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	return v.translate(v.v.StructPartial(s, fields...))
}

func (v *Validator) translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &entity.ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), reason(fe))
	}

	return out
}

func reason(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "book_status":
		return fmt.Sprintf("must be one of %s, %s, %s", entity.BookStatusToRead, entity.BookStatusReading, entity.BookStatusRead)
	}

	return "failed " + fe.Tag() + " check"
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// termOrNil keeps a filter term verbatim. Only the empty string is
// dropped, since it matches every row anyway.
func termOrNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
