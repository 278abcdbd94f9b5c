package handler

import (
	"errors"
	"time"

	"jobtalk/internal/delivery/http/dto"
	"jobtalk/internal/delivery/http/middleware"
	"jobtalk/internal/pkg/response"
	"jobtalk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

type chatSubmitRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/messages", h.Submit)
	r.Get("/history", h.History)
	r.Delete("/history", h.ResetHistory)
	r.Delete("/preferences", h.ResetPreferences)
}

func (h *ChatHandler) Submit(c fiber.Ctx) error {
	var req chatSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userMsg, botMsg, err := h.uc.Submit(c.Context(), req.SessionID, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Message text is required", nil, err)
		}
		return err
	}

	out := dto.ChatSubmitResponse{UserMessage: toMessageResponse(userMsg)}
	if botMsg != nil {
		bm := toMessageResponse(*botMsg)
		out.BotMessage = &bm
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	session, err := h.uc.History(c.Context(), c.Query("sessionId"))
	if err != nil {
		return err
	}

	out := dto.ChatHistoryResponse{
		Messages: make([]dto.ChatMessageResponse, 0, len(session.Messages)),
		Preferences: dto.PreferenceResponse{
			Place:      session.Preferences.Place,
			Category:   session.Preferences.Category,
			WorkDays:   session.Preferences.WorkDays,
			StartTime:  session.Preferences.StartTime,
			EndTime:    session.Preferences.EndTime,
			HourlyWage: session.Preferences.HourlyWage,
		},
	}
	for _, m := range session.Messages {
		out.Messages = append(out.Messages, toMessageResponse(m))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *ChatHandler) ResetHistory(c fiber.Ctx) error {
	if err := h.uc.ResetHistory(c.Context(), c.Query("sessionId")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", nil)
}

func (h *ChatHandler) ResetPreferences(c fiber.Ctx) error {
	if err := h.uc.ResetPreferences(c.Context(), c.Query("sessionId")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "success", nil)
}

func toMessageResponse(m usecase.ChatMessage) dto.ChatMessageResponse {
	out := dto.ChatMessageResponse{
		ID:        m.ID.String(),
		Text:      m.Text,
		Sender:    m.Sender,
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
	}
	if m.Action != nil {
		out.ActionLabel = m.Action.Label
		out.ActionPath = m.Action.Path
	}
	return out
}
