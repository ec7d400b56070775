package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/barterhub/barterhub/store"
)

const (
	// demandPopularityBump is added to an item's popularity each time it is requested.
	demandPopularityBump = 5.0
	maxPopularityScore   = 100.0
)

type createExchangeRequest struct {
	RequestedItemUID string `json:"requestedItemUid"`
	OfferedItemUID   string `json:"offeredItemUid"`
}

type exchangeResponse struct {
	ID                 int32  `json:"id"`
	RequestedItemTitle string `json:"requestedItemTitle"`
	OfferedItemTitle   string `json:"offeredItemTitle"`
	Status             string `json:"status"`
	CreatedTs          int64  `json:"createdTs"`
}

func toExchangeResponse(exchange *store.Exchange) *exchangeResponse {
	return &exchangeResponse{
		ID:                 exchange.ID,
		RequestedItemTitle: exchange.RequestedItemTitle,
		OfferedItemTitle:   exchange.OfferedItemTitle,
		Status:             exchange.Status.String(),
		CreatedTs:          exchange.CreatedTs,
	}
}

// CreateExchange opens an exchange proposal between the caller's item and
// another user's item. Item titles are denormalized onto the record so the
// history keeps its meaning if either item is later removed.
func (s *APIV1Service) CreateExchange(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	request := &createExchangeRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	requested, err := s.Store.GetItem(ctx, &store.FindItem{UID: &request.RequestedItemUID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get requested item").SetInternal(err)
	}
	if requested == nil {
		return echo.NewHTTPError(http.StatusNotFound, "requested item not found")
	}
	if requested.OwnerID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot request your own item")
	}

	offered, err := s.Store.GetItem(ctx, &store.FindItem{UID: &request.OfferedItemUID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get offered item").SetInternal(err)
	}
	if offered == nil {
		return echo.NewHTTPError(http.StatusNotFound, "offered item not found")
	}
	if offered.OwnerID != userID {
		return echo.NewHTTPError(http.StatusBadRequest, "offered item must be your own")
	}

	exchange, err := s.Store.CreateExchange(ctx, &store.Exchange{
		RequesterID:        userID,
		ResponderID:        requested.OwnerID,
		RequestedItemID:    requested.ID,
		RequestedItemTitle: requested.Title,
		OfferedItemID:      offered.ID,
		OfferedItemTitle:   offered.Title,
		Status:             store.ExchangeStatusPending,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create exchange").SetInternal(err)
	}

	// Being requested is a demand signal for the item.
	bumped := math.Min(requested.PopularityScore+demandPopularityBump, maxPopularityScore)
	if _, err := s.Store.UpdateItem(ctx, &store.UpdateItem{ID: requested.ID, PopularityScore: &bumped}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update item popularity").SetInternal(err)
	}

	return c.JSON(http.StatusOK, toExchangeResponse(exchange))
}

type respondExchangeRequest struct {
	Status string `json:"status"`
}

// RespondExchange lets the responder accept or decline a pending exchange, and
// either participant mark an accepted one completed. Completion retires both
// items from circulation.
func (s *APIV1Service) RespondExchange(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	exchangeID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed exchange id")
	}
	request := &respondExchangeRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	newStatus := store.ExchangeStatus(request.Status)
	if newStatus != store.ExchangeStatusAccepted && newStatus != store.ExchangeStatusDeclined && newStatus != store.ExchangeStatusCompleted {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be ACCEPTED, DECLINED or COMPLETED")
	}

	id := int32(exchangeID)
	exchanges, err := s.Store.ListExchanges(ctx, &store.FindExchange{ID: &id})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get exchange").SetInternal(err)
	}
	if len(exchanges) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "exchange not found")
	}
	exchange := exchanges[0]

	switch newStatus {
	case store.ExchangeStatusAccepted, store.ExchangeStatusDeclined:
		if exchange.Status != store.ExchangeStatusPending {
			return echo.NewHTTPError(http.StatusBadRequest, "exchange is no longer pending")
		}
		if exchange.ResponderID != userID {
			return echo.NewHTTPError(http.StatusForbidden, "only the responder can answer a proposal")
		}
	case store.ExchangeStatusCompleted:
		if exchange.Status != store.ExchangeStatusAccepted {
			return echo.NewHTTPError(http.StatusBadRequest, "only an accepted exchange can be completed")
		}
		if exchange.RequesterID != userID && exchange.ResponderID != userID {
			return echo.NewHTTPError(http.StatusForbidden, "not a participant of this exchange")
		}
	}

	updated, err := s.Store.UpdateExchange(ctx, &store.UpdateExchange{
		ID:     exchange.ID,
		Status: &newStatus,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update exchange").SetInternal(err)
	}

	if newStatus == store.ExchangeStatusCompleted {
		exchanged := store.ItemStatusExchanged
		for _, itemID := range []int32{exchange.RequestedItemID, exchange.OfferedItemID} {
			if _, err := s.Store.UpdateItem(ctx, &store.UpdateItem{ID: itemID, Status: &exchanged}); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to retire exchanged item").SetInternal(err)
			}
		}
	}

	return c.JSON(http.StatusOK, toExchangeResponse(updated))
}

// ListExchanges lists exchanges the caller participates in.
func (s *APIV1Service) ListExchanges(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	exchanges, err := s.Store.ListExchanges(ctx, &store.FindExchange{ParticipantID: &userID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list exchanges").SetInternal(err)
	}

	response := make([]*exchangeResponse, 0, len(exchanges))
	for _, exchange := range exchanges {
		response = append(response, toExchangeResponse(exchange))
	}
	return c.JSON(http.StatusOK, response)
}
