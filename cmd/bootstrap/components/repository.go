package components

import (
	"hotel-booking-api/internal/infra/db"
	repo_impl "hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/infra/storage"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewImageStore,
		func(s *storage.LocalImageStore) usecase.ImageStore { return s },
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewHotelRepository,
			fx.As(new(usecase.HotelRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(usecase.TxRunner)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewImageStore(cfg config.Config) (*storage.LocalImageStore, error) {
	return storage.NewLocalImageStore(cfg.Upload)
}
