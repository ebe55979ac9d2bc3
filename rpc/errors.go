package rpc

import (
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/isaacwassouf/cricket-betting-service/models"
)

// toStatus converts a service error into a gRPC status error.
func toStatus(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateIdentity):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		log.Printf("internal error: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}
