package handler

import (
	"net/http"

	"handoff/internal/delivery/http/response"
	"handoff/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeetupHandlerParams holds dependencies for MeetupHandler, injected by Fx.
type MeetupHandlerParams struct {
	fx.In

	MeetupUC usecase.MeetupUsecase
}

// MeetupHandler serves meetup recommendations.
type MeetupHandler struct {
	meetupUC usecase.MeetupUsecase
}

// NewMeetupHandler is the constructor for MeetupHandler
func NewMeetupHandler(params MeetupHandlerParams) *MeetupHandler {
	return &MeetupHandler{meetupUC: params.MeetupUC}
}

// GetMeetupPoint handles GET /meetup-point?with=<userID>
func (h *MeetupHandler) GetMeetupPoint(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	counterpartyID, err := parseUUIDParam(c.QueryParam("with"), "with")
	if err != nil {
		return err
	}

	point, err := h.meetupUC.GetMeetupPoint(c.Request().Context(), userID, counterpartyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, point, "")
}
