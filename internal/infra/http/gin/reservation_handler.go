package ginserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"innkeep/internal/app/commands"
	"innkeep/internal/app/dto"
	ReservationApp "innkeep/internal/app/handlers/reservations"
	"innkeep/internal/app/queries"
)

type ReservationHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

type createReservationRequest struct {
	GuestName string                 `json:"guest_name"`
	CheckIn   string                 `json:"check_in"`
	CheckOut  string                 `json:"check_out"`
	Rooms     []roomSelectionRequest `json:"rooms"`
}

func (h ReservationHandler) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := ReservationApp.CreateReservationCommand{
		CommandID: generateCommandID(),
		GuestName: req.GuestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}
	for _, pick := range req.Rooms {
		cmd.Rooms = append(cmd.Rooms, ReservationApp.RoomPick{RoomType: pick.RoomType, Count: pick.Count})
	}
	h.dispatch(c, http.StatusCreated, cmd)
}

func (h ReservationHandler) Get(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	q := ReservationApp.GetReservationQuery{ReservationID: c.Param("id")}
	res, err := queries.Ask[ReservationApp.GetReservationQuery, dto.Reservation](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type addRoomRequest struct {
	RoomType string `json:"room_type"`
	Count    int    `json:"count"`
}

func (h ReservationHandler) AddRoom(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.AddRoomCommand{
		ReservationID: c.Param("id"),
		RoomType:      req.RoomType,
		Count:         req.Count,
	})
}

func (h ReservationHandler) RemoveRoom(c *gin.Context) {
	h.dispatch(c, http.StatusOK, ReservationApp.RemoveRoomCommand{
		ReservationID: c.Param("id"),
		RoomType:      c.Param("roomType"),
	})
}

type setRoomCountRequest struct {
	Count int `json:"count"`
}

func (h ReservationHandler) SetRoomCount(c *gin.Context) {
	var req setRoomCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.SetRoomCountCommand{
		ReservationID: c.Param("id"),
		RoomType:      c.Param("roomType"),
		Count:         req.Count,
	})
}

type changeDatesRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func (h ReservationHandler) ChangeDates(c *gin.Context) {
	var req changeDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.ChangeDatesCommand{
		ReservationID: c.Param("id"),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	})
}

type editNightRequest struct {
	Amount string `json:"amount"`
}

func (h ReservationHandler) EditNight(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid night index"})
		return
	}
	var req editNightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.EditNightCommand{
		ReservationID: c.Param("id"),
		RoomType:      c.Param("roomType"),
		NightIndex:    index,
		Amount:        req.Amount,
	})
}

func (h ReservationHandler) InheritFirstNight(c *gin.Context) {
	h.dispatch(c, http.StatusOK, ReservationApp.InheritFirstNightCommand{
		ReservationID: c.Param("id"),
		RoomType:      c.Param("roomType"),
	})
}

type distributeTotalRequest struct {
	Total string `json:"total"`
}

func (h ReservationHandler) DistributeTotal(c *gin.Context) {
	var req distributeTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.DistributeTotalCommand{
		ReservationID: c.Param("id"),
		RoomType:      c.Param("roomType"),
		Total:         req.Total,
	})
}

type updatePaymentRequest struct {
	PaymentMode    *string `json:"payment_mode"`
	CardNumber     *string `json:"card_number"`
	LegacyCaptured *bool   `json:"captured"`
	PaidOnline     *string `json:"paid_online"`
	PaidOffline    *string `json:"paid_offline"`
}

func (h ReservationHandler) UpdatePayment(c *gin.Context) {
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.UpdatePaymentCommand{
		ReservationID:  c.Param("id"),
		PaymentMode:    req.PaymentMode,
		CardNumber:     req.CardNumber,
		LegacyCaptured: req.LegacyCaptured,
		PaidOnline:     req.PaidOnline,
		PaidOffline:    req.PaidOffline,
	})
}

func (h ReservationHandler) Finalize(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	cmd := ReservationApp.FinalizeReservationCommand{
		ReservationID:   c.Param("id"),
		IdempotencyKeyV: c.GetHeader("Idempotency-Key"),
	}
	result, err := commands.Dispatch[ReservationApp.FinalizeReservationCommand, *ReservationApp.FinalizeResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h ReservationHandler) Cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.dispatch(c, http.StatusOK, ReservationApp.CancelReservationCommand{
		ReservationID: c.Param("id"),
		Reason:        req.Reason,
	})
}

// dispatch routes a command whose result is the reservation view.
func (h ReservationHandler) dispatch(c *gin.Context, status int, cmd commands.Command) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	result, err := h.Commands.Dispatch(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, result)
}

func generateCommandID() string {
	return uuid.NewString()
}

var _ ReservationHTTP = ReservationHandler{}
