package handler

import (
	"errors"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/application"
	"jobtrack/internal/domain/profile"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinels into HTTP errors. Validation
// failures keep their message so the caller learns which field was wrong;
// everything unrecognized is treated as an upstream failure.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrTierInsufficient):
		return middleware.NewAppError(fiber.StatusForbidden, "Requires Pro or Premium subscription", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func authSubjectOrErr(c fiber.Ctx) (string, error) {
	subject := middleware.AuthSubject(c)
	if subject == "" {
		return "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return subject, nil
}
