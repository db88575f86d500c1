package components

import (
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewHotelUseCase,
		usecase.NewBookingUseCase,
	),
)
