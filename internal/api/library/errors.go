package library

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	switch entity.Classify(err) {
	case entity.OutcomeValidationFailed:
		verr, _ := entity.AsValidationError(err)

		br := &errdetails.BadRequest{}
		for _, v := range verr.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Reason,
			})
		}

		st, derr := status.New(codes.InvalidArgument, verr.Error()).WithDetails(br)
		if derr != nil {
			return status.Error(codes.InvalidArgument, verr.Error())
		}
		return st.Err()

	case entity.OutcomeNotFound:
		return status.Error(codes.NotFound, err.Error())

	case entity.OutcomeConflict:
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, "internal error")
}
