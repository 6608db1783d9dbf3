package handler

import (
	"strings"

	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AIHandler struct {
	uc usecase.AIUsecase
}

type coverLetterRequest struct {
	JobDescription string `json:"jobDescription"`
	ApplicationID  string `json:"applicationId"`
}

type interviewPrepRequest struct {
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
}

func NewAIHandler(uc usecase.AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ai/cover-letter", h.CoverLetter)
	r.Post("/ai/interview-prep", h.InterviewPrep)
}

func (h *AIHandler) CoverLetter(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	var req coverLetterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var applicationID *uuid.UUID
	if s := strings.TrimSpace(req.ApplicationID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid applicationId", nil, err)
		}
		applicationID = &id
	}

	gen, err := h.uc.GenerateCoverLetter(c.Context(), subject, usecase.CoverLetterInput{
		JobDescription: req.JobDescription,
		ApplicationID:  applicationID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CoverLetterResponse{
		CoverLetter: gen.Content,
		TokensUsed:  gen.TokensUsed,
	})
}

func (h *AIHandler) InterviewPrep(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	var req interviewPrepRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	gen, err := h.uc.GenerateInterviewPrep(c.Context(), subject, usecase.InterviewPrepInput{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InterviewPrepResponse{
		Guide:      gen.Content,
		TokensUsed: gen.TokensUsed,
	})
}
