package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"innkeep/internal/infra/config"
	"innkeep/internal/infra/obs"
)

type QuoteHTTP interface {
	Price(c *gin.Context)
}

type ReservationHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	AddRoom(c *gin.Context)
	RemoveRoom(c *gin.Context)
	SetRoomCount(c *gin.Context)
	ChangeDates(c *gin.Context)
	EditNight(c *gin.Context)
	InheritFirstNight(c *gin.Context)
	DistributeTotal(c *gin.Context)
	UpdatePayment(c *gin.Context)
	Finalize(c *gin.Context)
	Cancel(c *gin.Context)
}

type BillingHTTP interface {
	PaymentStatus(c *gin.Context)
}

type Handlers struct {
	Quote       QuoteHTTP
	Reservation ReservationHTTP
	Billing     BillingHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Quote != nil {
		api.POST("/quotes", h.Quote.Price)
	}
	if h.Reservation != nil {
		api.POST("/reservations", h.Reservation.Create)
		api.GET("/reservations/:id", h.Reservation.Get)
		api.POST("/reservations/:id/rooms", h.Reservation.AddRoom)
		api.DELETE("/reservations/:id/rooms/:roomType", h.Reservation.RemoveRoom)
		api.PATCH("/reservations/:id/rooms/:roomType", h.Reservation.SetRoomCount)
		api.PATCH("/reservations/:id/dates", h.Reservation.ChangeDates)
		api.PATCH("/reservations/:id/rooms/:roomType/nights/:index", h.Reservation.EditNight)
		api.POST("/reservations/:id/rooms/:roomType/inherit-first-night", h.Reservation.InheritFirstNight)
		api.POST("/reservations/:id/rooms/:roomType/distribute-total", h.Reservation.DistributeTotal)
		api.PATCH("/reservations/:id/payment", h.Reservation.UpdatePayment)
		api.POST("/reservations/:id/finalize", h.Reservation.Finalize)
		api.POST("/reservations/:id/cancel", h.Reservation.Cancel)
	}
	if h.Billing != nil {
		api.GET("/reservations/:id/payment-status", h.Billing.PaymentStatus)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
