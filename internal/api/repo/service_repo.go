package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	Db *gorm.DB
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{Db: ustadgee.DB}
}

func (slf *ServiceRepository) FindByID(id uint) (models.Service, error) {
	var service models.Service
	err := slf.Db.Preload("Images").First(&service, id).Error
	return service, err
}

func (slf *ServiceRepository) FindAll(categoryID uint, limit, offset int) ([]models.Service, error) {
	var services []models.Service
	query := slf.Db.Preload("Images").Order("created_at DESC").Limit(limit).Offset(offset)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Find(&services).Error
	return services, err
}

func (slf *ServiceRepository) FindByUserID(userID uint) ([]models.Service, error) {
	var services []models.Service
	err := slf.Db.Preload("Images").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&services).Error
	return services, err
}

func (slf *ServiceRepository) Search(query string) ([]models.Service, error) {
	var services []models.Service
	pattern := "%" + query + "%"
	err := slf.Db.Preload("Images").
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Limit(20).
		Find(&services).Error
	return services, err
}

func (slf *ServiceRepository) Create(service *models.Service) error {
	return slf.Db.Create(service).Error
}

func (slf *ServiceRepository) Update(service *models.Service) error {
	return slf.Db.Save(service).Error
}

func (slf *ServiceRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Service{}, id).Error
}

func (slf *ServiceRepository) FindCategories() ([]models.Category, error) {
	var categories []models.Category
	err := slf.Db.Find(&categories).Error
	return categories, err
}

func (slf *ServiceRepository) FindSubCategories(categoryID uint) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	err := slf.Db.Where("category_id = ?", categoryID).Find(&subCategories).Error
	return subCategories, err
}
