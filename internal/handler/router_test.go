//go:build unit

package handler_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler"
	"hotel-booking-api/internal/handler/api"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/infra/storage"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type nopAuthUseCase struct{}

func (u *nopAuthUseCase) Register(context.Context, string, user.Credentials) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (u *nopAuthUseCase) Login(context.Context, user.Credentials) (string, *usecase.AuthorizedUser, error) {
	return "", nil, usecase.ErrInvalidCredentials
}

func (u *nopAuthUseCase) GetCurrentUser(context.Context, uuid.UUID) (*usecase.AuthorizedUser, error) {
	return nil, usecase.ErrUserNotFound
}

func (u *nopAuthUseCase) ValidateToken(string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, usecase.ErrTokenValidation
}

type nopBookingUseCase struct{}

func (u *nopBookingUseCase) CheckAvailability(context.Context, uuid.UUID, time.Time, time.Time) (*usecase.Availability, error) {
	return &usecase.Availability{Available: true}, nil
}

func (u *nopBookingUseCase) CreateBooking(context.Context, usecase.CreateBookingParams) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (u *nopBookingUseCase) ListBookings(context.Context) ([]*usecase.BookingView, error) {
	return []*usecase.BookingView{}, nil
}

func (u *nopBookingUseCase) ListUserBookings(context.Context, uuid.UUID) ([]*usecase.BookingView, error) {
	return []*usecase.BookingView{}, nil
}

func (u *nopBookingUseCase) CancelBooking(context.Context, uuid.UUID, booking.Actor) error {
	return nil
}

func (u *nopBookingUseCase) DeleteBooking(context.Context, uuid.UUID, booking.Actor) error {
	return nil
}

type nopHotelUseCase struct{}

func (u *nopHotelUseCase) ListHotels(context.Context) ([]*hotel.Hotel, error) {
	return []*hotel.Hotel{}, nil
}

func (u *nopHotelUseCase) GetHotel(context.Context, uuid.UUID) (*hotel.Hotel, error) {
	return nil, usecase.ErrHotelNotFound
}

func (u *nopHotelUseCase) CreateHotel(context.Context, usecase.CreateHotelParams) (*hotel.Hotel, error) {
	return nil, usecase.ErrHotelNotFound
}

func (u *nopHotelUseCase) UpdateHotel(context.Context, uuid.UUID, usecase.UpdateHotelParams) (*hotel.Hotel, error) {
	return nil, usecase.ErrHotelNotFound
}

func (u *nopHotelUseCase) ReplaceImage(context.Context, uuid.UUID, *multipart.FileHeader) (*hotel.Hotel, error) {
	return nil, usecase.ErrHotelNotFound
}

func (u *nopHotelUseCase) DeleteHotel(context.Context, uuid.UUID) error {
	return usecase.ErrHotelNotFound
}

type RouterTestSuite struct {
	suite.Suite
	engine *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Upload.Dir = s.T().TempDir()

	imageStore, err := storage.NewLocalImageStore(cfg.Upload)
	require.NoError(s.T(), err)

	s.engine = gin.New()
	handler.NewRouter(
		s.engine,
		cfg,
		api.NewAuthHandler(&nopAuthUseCase{}),
		api.NewHotelHandler(&nopHotelUseCase{}),
		api.NewBookingHandler(&nopBookingUseCase{}),
		middleware.NewAuthMiddleware(&nopAuthUseCase{}),
		imageStore,
	)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestPublicRoutes() {
	cases := []struct {
		name   string
		method string
		path   string
	}{
		{name: "ヘルスチェック", method: http.MethodGet, path: "/health"},
		{name: "ホテル一覧", method: http.MethodGet, path: "/api/hotels"},
		{name: "予約一覧", method: http.MethodGet, path: "/api/bookings"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.engine, tc.method, tc.path, nil, "")
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *RouterTestSuite) TestProtectedRoutes() {
	cases := []struct {
		name   string
		method string
		path   string
	}{
		{name: "自分の予約一覧", method: http.MethodGet, path: "/api/bookings/my"},
		{name: "予約キャンセル", method: http.MethodPut, path: "/api/bookings/" + uuid.New().String() + "/cancel"},
		{name: "ホテル作成", method: http.MethodPost, path: "/api/hotels"},
		{name: "ホテル削除", method: http.MethodDelete, path: "/api/hotels/" + uuid.New().String()},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.engine, tc.method, tc.path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
		})
	}
}
