package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-booking-api/internal/domain/hotel"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/infra/storage"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

func (h *HotelHandler) ListHotels(c *gin.Context) {
	hotels, err := h.hotelUseCase.ListHotels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel id",
		})
		return
	}

	entity, err := h.hotelUseCase.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, usecase.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(entity))
}

// CreateHotel consumes multipart form data so an image can ride along with
// the hotel fields in a single request.
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	name := c.PostForm("name")
	location := c.PostForm("location")
	price, priceErr := strconv.ParseFloat(c.PostForm("price_per_night"), 64)
	rooms, roomsErr := strconv.Atoi(c.PostForm("total_rooms"))
	if name == "" || location == "" || priceErr != nil || roomsErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing fields",
		})
		return
	}

	params := usecase.CreateHotelParams{
		Name:          name,
		Location:      location,
		PricePerNight: price,
		TotalRooms:    rooms,
		Description:   c.PostForm("description"),
	}
	if file, err := c.FormFile("image"); err == nil {
		params.Image = file
	}

	entity, err := h.hotelUseCase.CreateHotel(c.Request.Context(), params)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(entity))
}

// UpdateHotel applies only the form fields present in the request. Absent
// fields keep their stored values.
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel id",
		})
		return
	}

	var params usecase.UpdateHotelParams
	if v, ok := c.GetPostForm("name"); ok {
		params.Name = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		params.Location = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		params.Description = &v
	}
	if v, ok := c.GetPostForm("price_per_night"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid price",
			})
			return
		}
		params.PricePerNight = &price
	}
	if v, ok := c.GetPostForm("total_rooms"); ok {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room count",
			})
			return
		}
		params.TotalRooms = &rooms
	}
	if file, err := c.FormFile("image"); err == nil {
		params.Image = file
	}

	entity, err := h.hotelUseCase.UpdateHotel(c.Request.Context(), hotelID, params)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.HotelUpdatedResponse{
		Message: "Hotel updated",
		Hotel:   resdto.FromHotel(entity),
	})
}

func (h *HotelHandler) ReplaceImage(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel id",
		})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file uploaded",
		})
		return
	}

	entity, err := h.hotelUseCase.ReplaceImage(c.Request.Context(), hotelID, file)
	if err != nil {
		h.writeHotelError(c, err)
		return
	}

	imageURL := ""
	if entity.ImageURL() != nil {
		imageURL = *entity.ImageURL()
	}

	c.JSON(http.StatusOK, resdto.HotelImageResponse{
		Message:  "Image updated",
		ImageURL: imageURL,
		Hotel:    resdto.FromHotel(entity),
	})
}

func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel id",
		})
		return
	}

	if err := h.hotelUseCase.DeleteHotel(c.Request.Context(), hotelID); err != nil {
		h.writeHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hotel deleted",
	})
}

func (h *HotelHandler) writeHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, usecase.ErrNoFileUploaded):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file uploaded",
		})
	case errors.Is(err, hotel.ErrEmptyHotelName),
		errors.Is(err, hotel.ErrHotelNameTooLong),
		errors.Is(err, hotel.ErrNegativePrice),
		errors.Is(err, hotel.ErrInvalidRoomCount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, storage.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "File too large",
		})
	case errors.Is(err, storage.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Only jpg, jpeg and png images are allowed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
