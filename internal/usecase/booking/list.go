package booking

import (
	"context"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// ===============================
// Listings
// ===============================

type ListUserVisitsUseCase struct {
	repo domain.Repository
}

func NewListUserVisitsUseCase(repo domain.Repository) *ListUserVisitsUseCase {
	return &ListUserVisitsUseCase{repo: repo}
}

func (u *ListUserVisitsUseCase) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return u.repo.ListBookingsByUser(ctx, userID)
}

type ListAdminBookingsUseCase struct {
	repo domain.Repository
}

func NewListAdminBookingsUseCase(repo domain.Repository) *ListAdminBookingsUseCase {
	return &ListAdminBookingsUseCase{repo: repo}
}

func (u *ListAdminBookingsUseCase) Execute(
	ctx context.Context,
	filter domain.AdminFilter,
) ([]models.Booking, error) {

	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	return u.repo.ListBookingsFiltered(ctx, filter)
}

type ListHairdressersUseCase struct {
	repo domain.Repository
}

func NewListHairdressersUseCase(repo domain.Repository) *ListHairdressersUseCase {
	return &ListHairdressersUseCase{repo: repo}
}

func (u *ListHairdressersUseCase) Execute(
	ctx context.Context,
) ([]models.Hairdresser, error) {
	return u.repo.ListHairdressersWithRelations(ctx)
}
