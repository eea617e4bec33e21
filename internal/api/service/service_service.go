package service

import (
	"errors"
	"ustadgee"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNotServiceOwner = errors.New("not the owner of this service")
)

type ServiceService struct {
	serviceRepo *repo.ServiceRepository
	logger      zerolog.Logger
}

func NewServiceService() *ServiceService {
	return &ServiceService{
		serviceRepo: repo.NewServiceRepository(),
		logger:      ustadgee.Logger,
	}
}

func (slf *ServiceService) GetByID(id uint) (models.Service, error) {
	service, err := slf.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Service{}, ErrServiceNotFound
		}
		slf.logger.Error().Err(err).Uint("serviceId", id).Msg("Error finding service")
		return models.Service{}, err
	}
	return service, nil
}

func (slf *ServiceService) List(categoryID uint, page, limit int) ([]models.Service, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return slf.serviceRepo.FindAll(categoryID, limit, (page-1)*limit)
}

func (slf *ServiceService) Create(service models.Service, ownerID uint) (models.Service, error) {
	service.UserID = ownerID
	if err := slf.serviceRepo.Create(&service); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating service")
		return models.Service{}, err
	}
	slf.logger.Info().Uint("serviceId", service.ID).Uint("userId", ownerID).Msg("Service created")
	return service, nil
}

func (slf *ServiceService) Update(id uint, patch models.Service, actorID uint) (models.Service, error) {
	service, err := slf.GetByID(id)
	if err != nil {
		return models.Service{}, err
	}
	if service.UserID != actorID {
		return models.Service{}, ErrNotServiceOwner
	}

	service.Title = patch.Title
	service.Description = patch.Description
	service.Charges = patch.Charges
	service.CategoryID = patch.CategoryID
	if err = slf.serviceRepo.Update(&service); err != nil {
		slf.logger.Error().Err(err).Uint("serviceId", id).Msg("Error updating service")
		return models.Service{}, err
	}
	return service, nil
}

func (slf *ServiceService) Delete(id uint, actorID uint) error {
	service, err := slf.GetByID(id)
	if err != nil {
		return err
	}
	if service.UserID != actorID {
		return ErrNotServiceOwner
	}
	return slf.serviceRepo.Delete(id)
}

// GetForOwner lists a provider's own services.
func (slf *ServiceService) GetForOwner(ownerID uint) ([]models.Service, error) {
	return slf.serviceRepo.FindByUserID(ownerID)
}

// Search matches service titles and descriptions against a free-text
// query, the "searchUstadgee" feature of the app.
func (slf *ServiceService) Search(query string) ([]models.Service, error) {
	return slf.serviceRepo.Search(query)
}

func (slf *ServiceService) GetCategories() ([]models.Category, error) {
	return slf.serviceRepo.FindCategories()
}

func (slf *ServiceService) GetSubCategories(categoryID uint) ([]models.SubCategory, error) {
	return slf.serviceRepo.FindSubCategories(categoryID)
}
