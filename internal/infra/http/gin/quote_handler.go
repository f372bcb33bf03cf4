package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"innkeep/internal/app/dto"
	QuoteApp "innkeep/internal/app/handlers/quote"
	"innkeep/internal/app/queries"
)

type QuoteHandler struct {
	Queries queries.Bus
}

type roomSelectionRequest struct {
	RoomType string `json:"room_type"`
	Count    int    `json:"count"`
}

type priceStayRequest struct {
	CheckIn  string                 `json:"check_in"`
	CheckOut string                 `json:"check_out"`
	Rooms    []roomSelectionRequest `json:"rooms"`
}

func (h QuoteHandler) Price(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req priceStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := QuoteApp.PriceStayQuery{CheckIn: checkIn, CheckOut: checkOut}
	for _, sel := range req.Rooms {
		q.Rooms = append(q.Rooms, QuoteApp.RoomSelection{RoomType: sel.RoomType, Count: sel.Count})
	}
	quote, err := queries.Ask[QuoteApp.PriceStayQuery, dto.Quote](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

var _ QuoteHTTP = QuoteHandler{}
