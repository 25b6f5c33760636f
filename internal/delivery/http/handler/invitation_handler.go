package handler

import (
	"talentx/internal/delivery/http/dto"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	uc usecase.InvitationUsecase
}

func NewInvitationHandler(uc usecase.InvitationUsecase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

func (h *InvitationHandler) RegisterTalentRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/my-invitations", h.ListMine)
	r.Get("/stats/talent", h.TalentStats)
	r.Put("/:id/respond", h.Respond)
}

func (h *InvitationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/sent", h.ListSent)
}

func (h *InvitationHandler) Create(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateInvitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	inv, err := h.uc.Create(c.Context(), employerID, req.JobID, req.TalentID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Invitation sent", dto.NewInvitationResponse(inv))
}

func (h *InvitationHandler) Respond(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	invitationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.RespondInvitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	inv, err := h.uc.Respond(c.Context(), talentID, invitationID, req.Status)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, "Invitation "+string(inv.Status), dto.NewInvitationResponse(inv))
}

func (h *InvitationHandler) ListMine(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	invs, err := h.uc.ListForTalent(c.Context(), talentID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvitationListResponse(invs))
}

func (h *InvitationHandler) ListSent(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	invs, err := h.uc.ListSent(c.Context(), employerID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvitationListResponse(invs))
}

func (h *InvitationHandler) TalentStats(c fiber.Ctx) error {
	talentID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	stats, err := h.uc.TalentStats(c.Context(), talentID)
	if err != nil {
		return mapEngagementError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InvitationStatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Accepted: stats.Accepted,
		Declined: stats.Declined,
	})
}
