package handler

import (
	"jobtalk/internal/delivery/http/dto"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/domain/matching"
	"jobtalk/internal/pkg/response"
	"jobtalk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidatesHandler struct {
	search    usecase.SearchUsecase
	proposals usecase.ProposalUsecase
}

func NewCandidatesHandler(search usecase.SearchUsecase, proposals usecase.ProposalUsecase) *CandidatesHandler {
	return &CandidatesHandler{search: search, proposals: proposals}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

// List returns the filtered candidate collection with each row's proposal
// state resolved for the requesting employer.
func (h *CandidatesHandler) List(c fiber.Ctx) error {
	minSuitability, err := parseQueryIntStrict(c, "minSuitability", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cands, err := h.search.SearchCandidates(c.Context(), usecase.CandidateSearchParams{
		Query:          c.Query("search"),
		Region:         c.Query("location"),
		Category:       c.Query("category"),
		License:        c.Query("license"),
		MinSuitability: minSuitability,
	})
	if err != nil {
		return err
	}

	employerID := middleware.EmployerID(c)
	proposed := make(map[int64]struct{})
	if h.proposals != nil {
		ids, err := h.proposals.Hydrate(c.Context(), employerID)
		if err == nil {
			for _, id := range ids {
				proposed[id] = struct{}{}
			}
		}
	}

	out := make([]dto.CandidateResponse, 0, len(cands))
	for _, cand := range cands {
		_, isProposed := proposed[cand.ID]
		out = append(out, dto.CandidateResponse{
			ID:          cand.ID,
			Name:        cand.Name,
			Title:       cand.Title,
			Region:      matching.RegionDisplay(cand.PreferredRegion, cand.PreferredDistrict, cand.PreferredDong, cand.Location),
			Category:    cand.Category,
			Suitability: cand.Suitability,
			Proposed:    isProposed,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
