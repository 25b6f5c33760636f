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

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterTalentRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/my-applications", h.ListMine)
	r.Delete("/:id", h.Withdraw)
}

func (h *ApplicationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/job/:job_id", h.ListForJob)
	r.Get("/stats/employer", h.EmployerStats)
	r.Patch("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Create(c.Context(), talentID, usecase.CreateApplicationInput{
		JobID:        req.JobID,
		InvitationID: req.InvitationID,
	})
	if err != nil {
		return mapEngagementError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.ListForTalent(c.Context(), talentID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Withdraw(c.Context(), talentID, applicationID); err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application withdrawn", nil)
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	apps, err := h.uc.ListForJob(c.Context(), employerID, jobID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) EmployerStats(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	counts, err := h.uc.EmployerStats(c.Context(), employerID)
	if err != nil {
		return mapEngagementError(err)
	}

	out := make([]dto.JobApplicationCountResponse, 0, len(counts))
	for _, cnt := range counts {
		out = append(out, dto.JobApplicationCountResponse{
			JobID:        cnt.JobID,
			Title:        cnt.Title,
			Applications: cnt.Applications,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.UpdateStatus(c.Context(), employerID, applicationID, req.Status)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", dto.NewApplicationResponse(app))
}

// mapEngagementError translates the engagement sentinels into transport errors.
// Shared by the application and invitation handlers.
func mapEngagementError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Invitation not found", nil, err)
	case errors.Is(err, usecase.ErrTalentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Talent not found", nil, err)
	case errors.Is(err, usecase.ErrAccessDenied):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrDuplicateInvitation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invitation already sent", nil, err)
	case errors.Is(err, usecase.ErrDeadlinePassed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Application deadline has passed", nil, err)
	case errors.Is(err, usecase.ErrInvalidInvitation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid invitation", nil, err)
	case errors.Is(err, usecase.ErrInvalidState):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid state transition", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
