package handlers

import (
	"net/http"
	"strings"

	response "wondershop/internal/adapter/http/dto/response"
	"wondershop/internal/usecase"
	"wondershop/pkg"

	"github.com/gin-gonic/gin"
)

const HeaderUserID = "X-User-ID"

var (
	errOperatorOnly = pkg.NewDomainErrorSimple("FORBIDDEN", "Operator access required", http.StatusForbidden)
)

// OrderHandler exposes the order ledger to operators.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	roster  OperatorRoster
}

func NewOrderHandler(uc usecase.IOrderUseCase, roster OperatorRoster) *OrderHandler {
	return &OrderHandler{usecase: uc, roster: roster}
}

// ListOrders godoc
// @Summary      List placed orders
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header    string  true  "Operator user id"
// @Success      200        {array}   response.OrderResponse
// @Failure      403        {object}  pkg.HTTPError
// @Failure      500        {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	if !h.roster.IsOperator(strings.TrimSpace(c.GetHeader(HeaderUserID))) {
		c.JSON(errOperatorOnly.HTTPStatus, errOperatorOnly.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}
