package v1

import (
	"strings"

	"buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FieldViolation is one rejected request field.
type FieldViolation struct {
	Field  string
	Reason string
}

// FieldViolations extracts the rejected fields of an InvalidArgument status.
// It understands both the server's BadRequest details and the violations
// attached by request validation.
func FieldViolations(err error) []FieldViolation {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return nil
	}

	var out []FieldViolation
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				out = append(out, FieldViolation{Field: v.GetField(), Reason: v.GetDescription()})
			}
		case *validate.Violations:
			for _, v := range d.GetViolations() {
				out = append(out, FieldViolation{Field: fieldPath(v.GetField()), Reason: v.GetMessage()})
			}
		}
	}

	return out
}

func fieldPath(p *validate.FieldPath) string {
	names := make([]string, 0, len(p.GetElements()))
	for _, e := range p.GetElements() {
		names = append(names, e.GetFieldName())
	}

	return strings.Join(names, ".")
}
