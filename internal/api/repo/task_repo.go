package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	Db *gorm.DB
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{Db: ustadgee.DB}
}

func (slf *TaskRepository) FindByID(id uint) (models.TaskAssign, error) {
	var task models.TaskAssign
	err := slf.Db.First(&task, id).Error
	return task, err
}

func (slf *TaskRepository) Create(task *models.TaskAssign) error {
	return slf.Db.Create(task).Error
}

func (slf *TaskRepository) UpdateStatus(id uint, statusID int) error {
	return slf.Db.Model(&models.TaskAssign{}).Where("id = ?", id).
		Update("status_id", statusID).Error
}

func (slf *TaskRepository) FindByWorkerID(workerID uint) ([]models.TaskAssign, error) {
	var tasks []models.TaskAssign
	err := slf.Db.Where("worker_id = ?", workerID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (slf *TaskRepository) FindByUserID(userID uint) ([]models.TaskAssign, error) {
	var tasks []models.TaskAssign
	err := slf.Db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (slf *TaskRepository) FindByUserIDAndStatus(userID uint, statusID int) ([]models.TaskAssign, error) {
	var tasks []models.TaskAssign
	err := slf.Db.Where("user_id = ? AND status_id = ?", userID, statusID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}
