package handler

import (
	"strconv"

	"jobtalk/internal/delivery/http/dto"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/domain/market"
	"jobtalk/internal/pkg/response"
	"jobtalk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.SearchUsecase
}

func NewJobsHandler(uc usecase.SearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	minWage, err := parseQueryIntStrict(c, "minWage", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobs, err := h.uc.SearchJobs(c.Context(), usecase.JobSearchParams{
		SessionID: c.Query("sessionId"),
		Query:     c.Query("query"),
		Region:    c.Query("region"),
		Category:  c.Query("category"),
		MinWage:   minWage,
	})
	if err != nil {
		return err
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func toJobResponse(j market.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		Category:   j.Category,
		HourlyWage: j.Wage(),
		WorkDays:   j.WorkDays,
		StartTime:  j.StartTime,
		EndTime:    j.EndTime,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
