package handler

import (
	"errors"

	"jobtalk/internal/delivery/http/dto"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/domain/proposal"
	"jobtalk/internal/pkg/response"
	"jobtalk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProposalsHandler struct {
	uc usecase.ProposalUsecase
}

type proposalRequest struct {
	JobID       string `json:"job_id"`
	JobseekerID string `json:"jobseeker_id"`
}

func NewProposalsHandler(uc usecase.ProposalUsecase) *ProposalsHandler {
	return &ProposalsHandler{uc: uc}
}

func (h *ProposalsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/", h.Cancel)
}

func (h *ProposalsHandler) List(c fiber.Ctx) error {
	employerID := middleware.EmployerID(c)

	ids, err := h.uc.Hydrate(c.Context(), employerID)
	if err != nil {
		return err
	}

	out := dto.ProposalListResponse{EmployerID: employerID, ProposedIDs: ids}
	if n := h.uc.CurrentNotice(); n != nil {
		out.Notice = n.Text
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

// Create validates every identifier locally before the upstream call; a
// request with malformed ids never reaches the network.
func (h *ProposalsHandler) Create(c fiber.Ctx) error {
	var req proposalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobID, jobseekerID, err := parseProposalIDs(req)
	if err != nil {
		return err
	}

	err = h.uc.Propose(c.Context(), middleware.EmployerID(c), jobID, jobseekerID)
	if err != nil {
		return mapProposalError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", nil)
}

func (h *ProposalsHandler) Cancel(c fiber.Ctx) error {
	req := proposalRequest{
		JobID:       c.Query("jobId"),
		JobseekerID: c.Query("jobseekerId"),
	}

	jobID, jobseekerID, err := parseProposalIDs(req)
	if err != nil {
		return err
	}

	err = h.uc.Cancel(c.Context(), middleware.EmployerID(c), jobID, jobseekerID)
	if err != nil {
		return mapProposalError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", nil)
}

func parseProposalIDs(req proposalRequest) (int64, int64, error) {
	jobID, ok := proposal.ParseID(req.JobID)
	if !ok {
		return 0, 0, middleware.NewAppError(fiber.StatusBadRequest, "Job id must be a number", nil, usecase.ErrMalformedID)
	}
	jobseekerID, ok := proposal.ParseID(req.JobseekerID)
	if !ok {
		return 0, 0, middleware.NewAppError(fiber.StatusBadRequest, "Jobseeker id must be a number", nil, usecase.ErrMalformedID)
	}
	return jobID, jobseekerID, nil
}

func mapProposalError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoIdentity):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Employer identity required", nil, err)
	case errors.Is(err, usecase.ErrNoJobSelected), errors.Is(err, usecase.ErrMalformedID):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrAlreadyProposed):
		return middleware.NewAppError(fiber.StatusConflict, "Already proposed to this candidate", nil, err)
	case errors.Is(err, usecase.ErrBusy):
		return middleware.NewAppError(fiber.StatusConflict, "Action already in flight", nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, "Marketplace backend unavailable", nil, err)
	default:
		return err
	}
}
