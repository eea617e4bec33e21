package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	Db *gorm.DB
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{Db: ustadgee.DB}
}

func (slf *ReviewRepository) Create(review *models.Review) error {
	return slf.Db.Create(review).Error
}

func (slf *ReviewRepository) FindByWorkerID(workerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := slf.Db.Where("worker_id = ?", workerID).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (slf *ReviewRepository) ExistsByWorkerAndUser(workerID, userID uint) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.Review{}).
		Where("worker_id = ? AND user_id = ?", workerID, userID).Count(&count).Error
	return count > 0, err
}

func (slf *ReviewRepository) AverageRating(workerID uint) (float64, error) {
	var avg *float64
	err := slf.Db.Model(&models.Review{}).Where("worker_id = ?", workerID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
