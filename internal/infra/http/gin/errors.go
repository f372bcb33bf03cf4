package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
	"innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/stay"
)

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domainreservation.ErrReservationNotFound),
		errors.Is(err, domainreservation.ErrLineNotFound),
		errors.Is(err, rates.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainreservation.ErrInvalidState),
		errors.Is(err, domainreservation.ErrRoomAlreadyPicked):
		return http.StatusConflict
	case errors.Is(err, domainreservation.ErrGuestRequired),
		errors.Is(err, domainreservation.ErrEmptyStay),
		errors.Is(err, stay.ErrNightIndex),
		errors.Is(err, daterange.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
