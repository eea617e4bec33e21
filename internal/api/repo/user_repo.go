package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	Db *gorm.DB
}

func NewUserRepository() *UserRepository {
	return &UserRepository{Db: ustadgee.DB}
}

func (slf *UserRepository) FindByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("phone_number = ?", phoneNumber).First(&user).Error
	return user, err
}

func (slf *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := slf.Db.First(&user, id).Error
	return user, err
}

func (slf *UserRepository) FindByReferralCode(code string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("referral_code = ?", code).First(&user).Error
	return user, err
}

func (slf *UserRepository) Create(user *models.User) error {
	return slf.Db.Create(user).Error
}

func (slf *UserRepository) Update(user *models.User) error {
	return slf.Db.Save(user).Error
}

func (slf *UserRepository) ExistsByPhoneNumber(phoneNumber string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Where("phone_number = ?", phoneNumber).Count(&count).Error
	return count > 0, err
}

func (slf *UserRepository) SetNotificationPermission(userID uint, status string) error {
	return slf.Db.Model(&models.User{}).Where("id = ?", userID).
		Update("notification_permission", status).Error
}

func (slf *UserRepository) FindByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	err := slf.Db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
