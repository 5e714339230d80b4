package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/service"
)

type ConversationHandler struct {
	svc service.ConversationService
}

func NewConversationHandler(svc service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

type SendMessageRequest struct {
	ItemID     string `json:"item_id"`
	ReceiverID string `json:"receiver_id"`
	Message    string `json:"message"`
}

type MessageResponse struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Body           string `json:"body"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"createdAt"`
}

type ConversationSummaryResponse struct {
	ConversationID string              `json:"conversationId"`
	Item           ItemSummaryResponse `json:"item"`
	OtherUser      UserSummaryResponse `json:"otherUser"`
	LastMessage    string              `json:"lastMessage"`
	LastMessageAt  string              `json:"lastMessageAt"`
	UnreadCount    int64               `json:"unreadCount"`
}

type ItemSummaryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type UserSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *ConversationHandler) SendMessage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	msg, err := h.svc.SendMessage(c.Request().Context(), uid, req.ReceiverID, req.ItemID, req.Message)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": toMessageResponse(msg),
	})
}

func (h *ConversationHandler) ListMessages(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	msgs, err := h.svc.ListMessages(c.Request().Context(), uid, c.Param("otherUserId"), c.Param("itemId"))
	if err != nil {
		return serviceError(c, err)
	}
	resp := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		resp = append(resp, toMessageResponse(&msgs[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ConversationHandler) ListConversations(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	summaries, err := h.svc.ListConversations(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch conversations"))
	}
	resp := make([]ConversationSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, ConversationSummaryResponse{
			ConversationID: s.ConversationID.String(),
			Item: ItemSummaryResponse{
				ID:       s.Item.ID,
				Title:    s.Item.Title,
				ImageURL: s.Item.ImageURL,
			},
			OtherUser: UserSummaryResponse{
				ID:   s.OtherUser.ID,
				Name: s.OtherUser.Name,
			},
			LastMessage:   s.LastMessage,
			LastMessageAt: s.LastMessageAt.Format(time.RFC3339),
			UnreadCount:   s.UnreadCount,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func toMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID.String(),
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		Body:           m.Body,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
