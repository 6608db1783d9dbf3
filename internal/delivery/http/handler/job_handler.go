package handler

import (
	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	search usecase.JobSearchUsecase
	saved  usecase.SavedJobUsecase
}

type jobSearchRequest struct {
	Query          string `json:"query"`
	Location       string `json:"location"`
	DatePosted     string `json:"datePosted"`
	EmploymentType string `json:"employmentType"`
	Limit          int    `json:"limit"`
}

type saveJobRequest struct {
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	Location       string `json:"location"`
	SalaryRange    string `json:"salary_range"`
	JobURL         string `json:"job_url"`
	JobDescription string `json:"job_description"`
	Source         string `json:"source"`
}

func NewJobHandler(search usecase.JobSearchUsecase, saved usecase.SavedJobUsecase) *JobHandler {
	return &JobHandler{search: search, saved: saved}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/search", h.Search)
	r.Get("/jobs/saved", h.ListSaved)
	r.Post("/jobs/saved", h.Save)
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	if _, err := authSubjectOrErr(c); err != nil {
		return err
	}

	var req jobSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	jobs, err := h.search.Search(c.Context(), usecase.JobSearchInput{
		Query:          req.Query,
		Location:       req.Location,
		DatePosted:     req.DatePosted,
		EmploymentType: req.EmploymentType,
		Limit:          req.Limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"jobs": jobs})
}

func (h *JobHandler) ListSaved(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	items, err := h.saved.List(c.Context(), subject)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.SavedJobResponse, 0, len(items))
	for _, sj := range items {
		out = append(out, dto.NewSavedJobResponse(sj))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"jobs": out})
}

func (h *JobHandler) Save(c fiber.Ctx) error {
	subject, err := authSubjectOrErr(c)
	if err != nil {
		return err
	}

	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sj, err := h.saved.Save(c.Context(), subject, usecase.SaveJobInput{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		JobURL:         req.JobURL,
		JobDescription: req.JobDescription,
		Source:         req.Source,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, fiber.Map{
		"job": dto.NewSavedJobResponse(sj),
	})
}
