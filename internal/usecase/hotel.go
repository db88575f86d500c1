package usecase

import (
	"context"
	"log/slog"
	"mime/multipart"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound  = errs.New("hotel not found")
	ErrNoFileUploaded = errs.New("no file uploaded")
)

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*hotel.Hotel, error)
	FindAll(ctx context.Context) ([]*hotel.Hotel, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageStore persists uploaded hotel images under the uploads root and
// removes them again. Remove must refuse paths outside the root.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

type CreateHotelParams struct {
	Name          string
	Location      string
	PricePerNight float64
	TotalRooms    int
	Description   string
	Image         *multipart.FileHeader
}

// UpdateHotelParams carries only the provided form fields; nil keeps the
// stored value (multipart partial update, as the frontend sends it).
type UpdateHotelParams struct {
	Name          *string
	Location      *string
	PricePerNight *float64
	TotalRooms    *int
	Description   *string
	Image         *multipart.FileHeader
}

type HotelUseCase interface {
	ListHotels(ctx context.Context) ([]*hotel.Hotel, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	CreateHotel(ctx context.Context, params CreateHotelParams) (*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, params UpdateHotelParams) (*hotel.Hotel, error)
	ReplaceImage(ctx context.Context, id uuid.UUID, image *multipart.FileHeader) (*hotel.Hotel, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
}

type hotelUseCaseImpl struct {
	hotelRepo  HotelRepository
	imageStore ImageStore
}

func NewHotelUseCase(hotelRepo HotelRepository, imageStore ImageStore) HotelUseCase {
	return &hotelUseCaseImpl{
		hotelRepo:  hotelRepo,
		imageStore: imageStore,
	}
}

func (u *hotelUseCaseImpl) ListHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	return u.hotelRepo.FindAll(ctx)
}

func (u *hotelUseCaseImpl) GetHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, err := u.hotelRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (u *hotelUseCaseImpl) CreateHotel(ctx context.Context, params CreateHotelParams) (*hotel.Hotel, error) {
	var imageURL *string
	if params.Image != nil {
		path, err := u.imageStore.Save(params.Image)
		if err != nil {
			return nil, err
		}
		imageURL = &path
	}

	entity, err := hotel.NewHotel(params.Name, params.Location, params.PricePerNight, params.TotalRooms, params.Description, imageURL)
	if err != nil {
		return nil, err
	}

	if _, err := u.hotelRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (u *hotelUseCaseImpl) UpdateHotel(ctx context.Context, id uuid.UUID, params UpdateHotelParams) (*hotel.Hotel, error) {
	existing, err := u.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	var newImageURL *string
	if params.Image != nil {
		path, err := u.imageStore.Save(params.Image)
		if err != nil {
			return nil, err
		}
		newImageURL = &path
	}

	updated, err := existing.Apply(params.Name, params.Location, params.PricePerNight, params.TotalRooms, params.Description, newImageURL)
	if err != nil {
		return nil, err
	}

	if err := u.hotelRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if newImageURL != nil {
		u.removeImage(existing.ImageURL())
	}

	return updated, nil
}

func (u *hotelUseCaseImpl) ReplaceImage(ctx context.Context, id uuid.UUID, image *multipart.FileHeader) (*hotel.Hotel, error) {
	if image == nil {
		return nil, ErrNoFileUploaded
	}

	existing, err := u.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := u.imageStore.Save(image)
	if err != nil {
		return nil, err
	}

	updated, err := existing.Apply(nil, nil, nil, nil, nil, &path)
	if err != nil {
		return nil, err
	}

	if err := u.hotelRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	u.removeImage(existing.ImageURL())

	return updated, nil
}

func (u *hotelUseCaseImpl) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	existing, err := u.GetHotel(ctx, id)
	if err != nil {
		return err
	}

	if err := u.hotelRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.removeImage(existing.ImageURL())

	return nil
}

// removeImage unlinks a replaced or orphaned file. Failure here must not fail
// the request that already committed, so it is logged and swallowed.
func (u *hotelUseCaseImpl) removeImage(publicPath *string) {
	if publicPath == nil || *publicPath == "" {
		return
	}
	if err := u.imageStore.Remove(*publicPath); err != nil {
		slog.Warn("failed to remove hotel image", "path", *publicPath, "error", err)
	}
}
