package handler

import (
	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type createApplicationRequest struct {
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	Location       string `json:"location"`
	SalaryRange    string `json:"salary_range"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url"`
	Source         string `json:"source"`
	Status         string `json:"status"`
	AppliedDate    string `json:"applied_date"`
	Notes          string `json:"notes"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.List)
	r.Post("/applications", h.Create)
	r.Get("/applications/:id/timeline", h.Timeline)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), subject)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, app := range items {
		out = append(out, dto.NewApplicationResponse(app))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"applications": out})
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	app, err := h.uc.Create(c.Context(), subject, usecase.CreateApplicationInput{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		Source:         req.Source,
		Status:         req.Status,
		AppliedDate:    req.AppliedDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, fiber.Map{
		"application": dto.NewApplicationResponse(app),
	})
}

func (h *ApplicationHandler) Timeline(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	events, err := h.uc.Timeline(c.Context(), subject, id)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.TimelineEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.NewTimelineEventResponse(ev))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"events": out})
}
