package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
	"github.com/WhiteWolfWCY/Trimly/internal/validators"
)

// Repository is the admin-side persistence surface for hairdressers,
// services and availability windows.
type Repository interface {
	CreateHairdresser(ctx context.Context, h *models.Hairdresser) error
	UpdateHairdresser(ctx context.Context, h *models.Hairdresser) error
	DeleteHairdresser(ctx context.Context, id uint) error
	GetHairdresserByID(ctx context.Context, id uint) (*models.Hairdresser, error)

	// SetServices replaces the hairdresser's offered-services set.
	SetServices(ctx context.Context, hairdresserID uint, serviceIDs []uint) error

	// ReplaceWindows swaps the hairdresser's whole weekly schedule in one
	// transaction. Windows are replaced wholesale, never merged.
	ReplaceWindows(
		ctx context.Context,
		hairdresserID uint,
		windows []models.AvailabilityWindow,
	) error

	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}

// ===============================
// Hairdressers
// ===============================

type HairdresserInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`

	ServiceIDs []uint `json:"service_ids"`
}

type WindowInput struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ManageHairdressersUseCase struct {
	repo Repository
}

func NewManageHairdressersUseCase(repo Repository) *ManageHairdressersUseCase {
	return &ManageHairdressersUseCase{repo: repo}
}

func (u *ManageHairdressersUseCase) Create(
	ctx context.Context,
	in HairdresserInput,
) (*models.Hairdresser, error) {

	h := &models.Hairdresser{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
	}

	if err := u.repo.CreateHairdresser(ctx, h); err != nil {
		return nil, err
	}

	if len(in.ServiceIDs) > 0 {
		if err := u.repo.SetServices(ctx, h.ID, in.ServiceIDs); err != nil {
			return nil, err
		}
	}

	return u.repo.GetHairdresserByID(ctx, h.ID)
}

func (u *ManageHairdressersUseCase) Update(
	ctx context.Context,
	id uint,
	in HairdresserInput,
) (*models.Hairdresser, error) {

	h, err := u.repo.GetHairdresserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	h.FirstName = in.FirstName
	h.LastName = in.LastName
	h.PhoneNumber = in.PhoneNumber

	if err := u.repo.UpdateHairdresser(ctx, h); err != nil {
		return nil, err
	}

	if in.ServiceIDs != nil {
		if err := u.repo.SetServices(ctx, h.ID, in.ServiceIDs); err != nil {
			return nil, err
		}
	}

	return u.repo.GetHairdresserByID(ctx, h.ID)
}

func (u *ManageHairdressersUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.GetHairdresserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("not_found")
		}
		return err
	}
	return u.repo.DeleteHairdresser(ctx, id)
}

// SetAvailability validates and replaces the weekly schedule. Windows on
// the same weekday may repeat (split shifts) but each one must be a
// well-formed "HH:mm" range.
func (u *ManageHairdressersUseCase) SetAvailability(
	ctx context.Context,
	hairdresserID uint,
	inputs []WindowInput,
) (*models.Hairdresser, error) {

	if _, err := u.repo.GetHairdresserByID(ctx, hairdresserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	windows := make([]models.AvailabilityWindow, 0, len(inputs))
	for _, in := range inputs {
		if !domain.IsValidDay(in.DayOfWeek) {
			return nil, httperr.ErrBusiness("validation_error")
		}
		if !validators.IsWallClock(in.StartTime) || !validators.IsWallClock(in.EndTime) {
			return nil, httperr.ErrBusiness("validation_error")
		}
		if in.StartTime >= in.EndTime {
			return nil, httperr.ErrBusiness("validation_error")
		}

		windows = append(windows, models.AvailabilityWindow{
			HairdresserID: hairdresserID,
			DayOfWeek:     in.DayOfWeek,
			StartTime:     in.StartTime,
			EndTime:       in.EndTime,
		})
	}

	if err := u.repo.ReplaceWindows(ctx, hairdresserID, windows); err != nil {
		return nil, err
	}

	return u.repo.GetHairdresserByID(ctx, hairdresserID)
}

// ===============================
// Services
// ===============================

type ServiceInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	TimeRequired int    `json:"time_required" binding:"required,gt=0"`
}

type ManageServicesUseCase struct {
	repo Repository
}

func NewManageServicesUseCase(repo Repository) *ManageServicesUseCase {
	return &ManageServicesUseCase{repo: repo}
}

func (u *ManageServicesUseCase) Create(
	ctx context.Context,
	in ServiceInput,
) (*models.Service, error) {

	if !validators.IsPrice(in.Price) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	s := &models.Service{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		TimeRequired: in.TimeRequired,
	}

	if err := u.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *ManageServicesUseCase) Update(
	ctx context.Context,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	if !validators.IsPrice(in.Price) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	s, err := u.repo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	s.Name = in.Name
	s.Description = in.Description
	s.Price = in.Price
	s.TimeRequired = in.TimeRequired

	if err := u.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *ManageServicesUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.repo.GetServiceByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("not_found")
		}
		return err
	}
	return u.repo.DeleteService(ctx, id)
}

func (u *ManageServicesUseCase) List(ctx context.Context) ([]models.Service, error) {
	return u.repo.ListServices(ctx)
}
