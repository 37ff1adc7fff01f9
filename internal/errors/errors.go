package gerr

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrSnapshotUnavailable = status.Error(codes.Unavailable, "dashboard data is unavailable")
	ErrStoreUnreachable    = status.Error(codes.Unavailable, "store is unreachable")

	ErrInvalidPeriod    = status.Error(codes.InvalidArgument, "period must be one of daily, weekly, monthly, yearly")
	ErrInvalidDays      = status.Error(codes.InvalidArgument, "days must be between 1 and 3650")
	ErrInvalidLimit     = status.Error(codes.InvalidArgument, "limit must be between 1 and 100")
	ErrInvalidThreshold = status.Error(codes.InvalidArgument, "threshold must be between 0 and 100000")

	ErrUnauthorized = status.Error(codes.Unauthenticated, "unauthorized")
	ErrForbidden    = status.Error(codes.PermissionDenied, "admin role required")
	ErrRateLimited  = status.Error(codes.ResourceExhausted, "too many requests")
)

// HTTPStatus maps the status code carried by err (possibly wrapped) onto an HTTP status.
func HTTPStatus(err error) int {
	switch status.Code(err) {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Canceled, codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client facing message of err. Errors without a status
// are reported with a generic message.
func Message(err error) string {
	var se interface{ GRPCStatus() *status.Status }
	if errors.As(err, &se) {
		return se.GRPCStatus().Message()
	}
	return http.StatusText(HTTPStatus(err))
}
