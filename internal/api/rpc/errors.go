package rpc

import (
	"errors"
	"net/http"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternal         = "INTERNAL"
)

var errBadRequest = errors.New("bad request")

type Error struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []entity.FieldViolation `json:"fields,omitempty"`
}

func toError(err error) (int, Error) {
	if errors.Is(err, errBadRequest) {
		return http.StatusBadRequest, Error{Code: CodeBadRequest, Message: err.Error()}
	}

	switch entity.Classify(err) {
	case entity.OutcomeValidationFailed:
		verr, _ := entity.AsValidationError(err)
		return http.StatusBadRequest, Error{
			Code:    CodeValidationFailed,
			Message: verr.Error(),
			Fields:  verr.Violations,
		}
	case entity.OutcomeNotFound:
		return http.StatusNotFound, Error{Code: CodeNotFound, Message: err.Error()}
	case entity.OutcomeConflict:
		return http.StatusConflict, Error{Code: CodeConflict, Message: err.Error()}
	}

	return http.StatusInternalServerError, Error{Code: CodeInternal, Message: "internal error"}
}
