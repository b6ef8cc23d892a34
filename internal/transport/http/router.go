package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ilomarket/shop-backend/internal/handlers"
	"github.com/ilomarket/shop-backend/internal/jwtauth"
)

type Deps struct {
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	StoreHandler   *handlers.StoreHandler
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")
	v1.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(100)))

	v1.POST("/auth/register", d.AuthHandler.Register)
	v1.POST("/auth/login", d.AuthHandler.Login)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("/store/:storeId", d.ProductHandler.GetProductsByStore)

	v1.GET("/stores", d.StoreHandler.GetStores)
	v1.GET("/stores/:id", d.StoreHandler.GetStore)

	orders := v1.Group("/orders", jwtauth.Middleware(d.JWTSecret))
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.GetMyOrders)
	orders.GET("/user/:userId", d.OrderHandler.GetOrdersByUser)
}
