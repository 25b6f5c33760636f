package handler

import (
	"errors"

	"talentx/internal/delivery/http/dto"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.RankingUsecase
}

func NewMatchHandler(uc usecase.RankingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterTalentRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/talent/matched", h.MatchedJobs)
}

func (h *MatchHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matched-talents/:job_id", h.MatchedTalents)
}

func (h *MatchHandler) MatchedTalents(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.uc.MatchedTalentsForJob(c.Context(), jobID, employerID)
	if err != nil {
		return mapRankingError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentMatchListResponse(matches))
}

func (h *MatchHandler) MatchedJobs(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matches, err := h.uc.MatchedJobsForTalent(c.Context(), talentID)
	if err != nil {
		return mapRankingError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchListResponse(matches))
}

func mapRankingError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Talent profile not found", nil, err)
	case errors.Is(err, usecase.ErrAccessDenied):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
