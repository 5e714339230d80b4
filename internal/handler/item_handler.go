package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type ItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ImageURL     string `json:"imageUrl"`
	Location     string `json:"location"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	OwnerID      string `json:"ownerId"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Create accepts a multipart form: item fields plus one image file.
func (h *ItemHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "image file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "failed to read image file"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "failed to read image file"))
	}

	in := service.CreateItemInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		Location:     c.FormValue("location"),
		ContactPhone: c.FormValue("contact_phone"),
		Image:        data,
		ContentType:  fileHeader.Header.Get("Content-Type"),
	}
	item, err := h.svc.Create(c.Request().Context(), uid, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"item":    toItemResponse(item),
	})
}

func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"item":    toItemResponse(item),
	})
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByOwner(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) UpdateStatus(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), uid, model.ItemStatus(req.Status)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Item status updated",
	})
}

func toItemResponse(item *model.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		Category:     item.Category,
		ImageURL:     item.ImageURL,
		Location:     item.Location,
		ContactName:  item.ContactName,
		ContactEmail: item.ContactEmail,
		ContactPhone: item.ContactPhone,
		OwnerID:      item.OwnerID,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
	}
}

func toItemResponses(items []model.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return resp
}
