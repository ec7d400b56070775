package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/barterhub/barterhub/store"
)

type createItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}

type itemResponse struct {
	UID              string   `json:"uid"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Condition        string   `json:"condition"`
	Tags             []string `json:"tags"`
	Photos           []string `json:"photos"`
	Status           string   `json:"status"`
	PopularityScore  float64  `json:"popularityScore"`
	OwnerUID         string   `json:"ownerUid"`
	OwnerDisplayName string   `json:"ownerDisplayName"`
	OwnerCountry     string   `json:"ownerCountry"`
	CreatedTs        int64    `json:"createdTs"`
}

func toItemResponse(item *store.Item) *itemResponse {
	return &itemResponse{
		UID:              item.UID,
		Title:            item.Title,
		Description:      item.Description,
		Category:         item.Category,
		Condition:        item.Condition,
		Tags:             item.Tags,
		Photos:           item.Photos,
		Status:           item.Status.String(),
		PopularityScore:  item.PopularityScore,
		OwnerUID:         item.OwnerUID,
		OwnerDisplayName: item.OwnerDisplayName,
		OwnerCountry:     item.OwnerCountry,
		CreatedTs:        item.CreatedTs,
	}
}

// CreateItem lists a new item for the authenticated user.
func (s *APIV1Service) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	request := &createItemRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if strings.TrimSpace(request.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	item, err := s.Store.CreateItem(ctx, &store.Item{
		UID:         shortuuid.New(),
		OwnerID:     userID,
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Category:    request.Category,
		Condition:   request.Condition,
		Tags:        request.Tags,
		Photos:      request.Photos,
		Status:      store.ItemStatusAvailable,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create item").SetInternal(err)
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}

// ListItems lists available items, optionally filtered by category.
func (s *APIV1Service) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	status := store.ItemStatusAvailable
	find := &store.FindItem{
		Status:                &status,
		OrderByPopularityDesc: true,
	}
	if category := c.QueryParam("category"); category != "" {
		find.Categories = []string{category}
	}
	if mine := c.QueryParam("mine"); mine == "true" {
		userID := currentUserID(c)
		find.OwnerID = &userID
		find.Status = nil
	}

	items, err := s.Store.ListItems(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items").SetInternal(err)
	}

	response := make([]*itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

type updateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Condition   *string  `json:"condition"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
	Status      *string  `json:"status"`
}

// UpdateItem updates fields of the caller's own item.
func (s *APIV1Service) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	uid := c.Param("uid")

	item, err := s.Store.GetItem(ctx, &store.FindItem{UID: &uid})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get item").SetInternal(err)
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}
	if item.OwnerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "only the owner can update an item")
	}

	request := &updateItemRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	update := &store.UpdateItem{
		ID:          item.ID,
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Condition:   request.Condition,
		Tags:        request.Tags,
		Photos:      request.Photos,
	}
	if request.Status != nil {
		status := store.ItemStatus(*request.Status)
		switch status {
		case store.ItemStatusAvailable, store.ItemStatusReserved, store.ItemStatusArchived:
			update.Status = &status
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "status must be AVAILABLE, RESERVED or ARCHIVED")
		}
	}

	updated, err := s.Store.UpdateItem(ctx, update)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update item").SetInternal(err)
	}
	return c.JSON(http.StatusOK, toItemResponse(updated))
}

// DeleteItem removes the caller's own item.
func (s *APIV1Service) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	uid := c.Param("uid")

	item, err := s.Store.GetItem(ctx, &store.FindItem{UID: &uid})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get item").SetInternal(err)
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}
	if item.OwnerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "only the owner can delete an item")
	}

	if err := s.Store.DeleteItem(ctx, &store.DeleteItem{ID: item.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete item").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}

// GetItem returns one item by uid.
func (s *APIV1Service) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Param("uid")

	item, err := s.Store.GetItem(ctx, &store.FindItem{UID: &uid})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get item").SetInternal(err)
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}
