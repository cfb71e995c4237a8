package handlers

import (
	"errors"
	"net/http"

	request "wondershop/internal/adapter/http/dto/request"
	response "wondershop/internal/adapter/http/dto/response"
	"wondershop/internal/usecase"
	"wondershop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
)

// EventHandler feeds chat events into the dialogue and returns the delivery
// intents the transport must execute.
type EventHandler struct {
	usecase usecase.IDialogueUseCase
	roster  OperatorRoster
}

func NewEventHandler(uc usecase.IDialogueUseCase, roster OperatorRoster) *EventHandler {
	return &EventHandler{usecase: uc, roster: roster}
}

// HandleEvent godoc
// @Summary      Handle a chat event
// @Description  Advances the sender's dialogue and returns the messages to deliver.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      request.EventRequest  true  "Chat event"
// @Success      200    {object}  response.EventResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /events [post]
func (h *EventHandler) HandleEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	userID := payload.ResolveUserID()
	if userID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	ev, err := payload.ToEvent(h.roster.IsOperator(userID))
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reply := h.usecase.Handle(c.Request.Context(), ev)
	c.JSON(http.StatusOK, response.FromReply(reply))
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown button action", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidEventType), errors.Is(err, request.ErrMissingPhotoRef):
		return errInvalidEventPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
