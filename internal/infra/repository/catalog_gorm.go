package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/WhiteWolfWCY/Trimly/internal/models"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/catalog"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Hairdressers
// --------------------------------------------------

func (r *CatalogGormRepository) CreateHairdresser(
	ctx context.Context,
	h *models.Hairdresser,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *CatalogGormRepository) UpdateHairdresser(
	ctx context.Context,
	h *models.Hairdresser,
) error {
	return r.db.WithContext(ctx).
		Model(h).
		Select("first_name", "last_name", "phone_number", "updated_at").
		Updates(h).Error
}

func (r *CatalogGormRepository) DeleteHairdresser(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("hairdresser_id = ?", id).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		if err := tx.
			Exec("DELETE FROM hairdressers_services WHERE hairdresser_id = ?", id).
			Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hairdresser{}, id).Error
	})
}

func (r *CatalogGormRepository) GetHairdresserByID(
	ctx context.Context,
	id uint,
) (*models.Hairdresser, error) {

	var h models.Hairdresser
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Availability").
		First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *CatalogGormRepository) SetServices(
	ctx context.Context,
	hairdresserID uint,
	serviceIDs []uint,
) error {

	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		services = append(services, models.Service{ID: id})
	}

	h := models.Hairdresser{ID: hairdresserID}
	return r.db.WithContext(ctx).
		Model(&h).
		Association("Services").
		Replace(services)
}

func (r *CatalogGormRepository) ReplaceWindows(
	ctx context.Context,
	hairdresserID uint,
	windows []models.AvailabilityWindow,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("hairdresser_id = ?", hairdresserID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Exec("DELETE FROM hairdressers_services WHERE service_id = ?", id).
			Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, id).Error
	})
}

func (r *CatalogGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)
