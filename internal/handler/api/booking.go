package api

import (
	"context"
	"errors"
	"net/http"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// CreateBooking is mounted behind OptionalAuth: an anonymous caller creates a
// guest booking, an authenticated one becomes the booking's owner.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing fields",
		})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	bookingID, err := h.bookingUseCase.CreateBooking(c.Request.Context(), usecase.CreateBookingParams{
		UserID:       userID,
		CustomerName: req.CustomerName,
		HotelID:      req.HotelID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, booking.ErrEmptyCustomerName), errors.Is(err, booking.ErrCustomerNameTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing fields",
			})
		case errors.Is(err, usecase.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, usecase.ErrNoRoomsAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No rooms available for selected dates",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Message:   "Booking successful",
		BookingID: bookingID,
	})
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing fields",
		})
		return
	}

	checkIn, checkOut, err := q.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return
	}

	availability, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), q.HotelID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, usecase.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.bookingUseCase.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.modifyBooking(c, h.bookingUseCase.CancelBooking, "Booking cancelled", "Not authorized to cancel this booking")
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	h.modifyBooking(c, h.bookingUseCase.DeleteBooking, "Booking deleted", "Not authorized to delete this booking")
}

// Cancel and delete share one flow: parse id, resolve the actor, run the
// usecase, translate the shared error taxonomy.
func (h *BookingHandler) modifyBooking(
	c *gin.Context,
	op func(ctx context.Context, id uuid.UUID, actor booking.Actor) error,
	successMsg, forbiddenMsg string,
) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	if err := op(c.Request.Context(), bookingID, actor); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrNotPermitted):
			c.JSON(http.StatusForbidden, gin.H{
				"error": forbiddenMsg,
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": successMsg,
	})
}
