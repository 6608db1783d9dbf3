package handler

import (
	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	ResumeURL           *string           `json:"resume_url"`
	CoverLetterTemplate *string           `json:"cover_letter_template"`
	LinkedinURL         *string           `json:"linkedin_url"`
	PortfolioURL        *string           `json:"portfolio_url"`
	GithubURL           *string           `json:"github_url"`
	Phone               *string           `json:"phone"`
	SavedAnswers        map[string]string `json:"saved_answers"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/me/profile", h.Get)
	r.Put("/users/me/profile", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), subject)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"profile": dto.NewProfileResponse(p),
	})
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.uc.Update(c.Context(), subject, usecase.UpdateProfileInput{
		ResumeURL:           req.ResumeURL,
		CoverLetterTemplate: req.CoverLetterTemplate,
		LinkedinURL:         req.LinkedinURL,
		PortfolioURL:        req.PortfolioURL,
		GithubURL:           req.GithubURL,
		Phone:               req.Phone,
		SavedAnswers:        req.SavedAnswers,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"profile": dto.NewProfileResponse(p),
	})
}
