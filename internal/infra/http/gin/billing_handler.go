package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"innkeep/internal/app/dto"
	BillingApp "innkeep/internal/app/handlers/billing"
	"innkeep/internal/app/queries"
)

type BillingHandler struct {
	Queries queries.Bus
}

func (h BillingHandler) PaymentStatus(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := BillingApp.PaymentStatusQuery{ReservationID: c.Param("id")}
	report, err := queries.Ask[BillingApp.PaymentStatusQuery, dto.PaymentReport](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

var _ BillingHTTP = BillingHandler{}
