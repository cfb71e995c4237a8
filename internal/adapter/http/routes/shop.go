package routes

import (
	"net/http"

	"wondershop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents   = "/events"
	PathProducts = "/products"
	PathOrders   = "/orders"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addShopRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathEvents, h.Events.HandleEvent)

	products := rg.Group(PathProducts)
	{
		products.GET("", h.Products.ListProducts)
		products.GET("/:id", h.Products.GetProduct)
	}

	rg.GET(PathOrders, h.Orders.ListOrders)
}

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Events   *handlers.EventHandler
	Products *handlers.ProductHandler
	Orders   *handlers.OrderHandler
}
