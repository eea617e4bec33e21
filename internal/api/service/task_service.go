package service

import (
	"errors"
	"ustadgee"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"
	"ustadgee/internal/realtime"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus = errors.New("invalid task status")
	ErrTaskNotFound  = errors.New("task not found")
	ErrNotTaskParty  = errors.New("not a participant of this task")
)

// TaskStore is the persistence surface the task lifecycle needs.
type TaskStore interface {
	FindByID(id uint) (models.TaskAssign, error)
	Create(task *models.TaskAssign) error
	UpdateStatus(id uint, statusID int) error
	FindByWorkerID(workerID uint) ([]models.TaskAssign, error)
	FindByUserID(userID uint) ([]models.TaskAssign, error)
	FindByUserIDAndStatus(userID uint, statusID int) ([]models.TaskAssign, error)
}

// Deliverer pushes a notification to a recipient, durably and live.
type Deliverer interface {
	Deliver(recipientID uint, notification models.Notification) error
}

// TaskService owns the task-request lifecycle: creation, the status
// state machine and the notification side effect of each transition.
type TaskService struct {
	store    TaskStore
	notifier Deliverer
	logger   zerolog.Logger
}

func NewTaskService(notifier Deliverer) *TaskService {
	return &TaskService{
		store:    repo.NewTaskRepository(),
		notifier: notifier,
		logger:   ustadgee.Logger,
	}
}

// CreateTask opens a Pending task request and notifies the provider.
func (slf *TaskService) CreateTask(task models.TaskAssign, requesterID uint) (models.TaskAssign, error) {
	task.UserID = requesterID
	task.StatusID = models.StatusPending

	if err := slf.store.Create(&task); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating task")
		return models.TaskAssign{}, err
	}

	if err := slf.notifier.Deliver(task.WorkerID, models.Notification{
		Title:      "New Task Request",
		Type:       models.NotificationTypeTaskRequest,
		NotifierID: requesterID,
		PostID:     task.ID,
	}); err != nil {
		slf.logger.Error().Err(err).Uint("taskId", task.ID).Msg("Error delivering task request notification")
	}

	slf.logger.Info().
		Uint("taskId", task.ID).
		Uint("workerId", task.WorkerID).
		Uint("userId", requesterID).
		Msg("Task created")
	return task, nil
}

// UpdateStatus moves a task to a new status and notifies the other
// party. The status is only bounds-checked against the five known
// statuses; adjacency is not enforced, matching the behavior clients
// already depend on. The notification is strictly downstream of the
// committed status change: a persistence failure aborts with no
// notification.
func (slf *TaskService) UpdateStatus(taskID uint, statusID int, actorID uint) (models.TaskAssign, error) {
	if !models.IsValidStatus(statusID) {
		return models.TaskAssign{}, ErrInvalidStatus
	}

	task, err := slf.store.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TaskAssign{}, ErrTaskNotFound
		}
		slf.logger.Error().Err(err).Uint("taskId", taskID).Msg("Error finding task")
		return models.TaskAssign{}, err
	}

	if !task.IsParty(actorID) {
		return models.TaskAssign{}, ErrNotTaskParty
	}

	if err = slf.store.UpdateStatus(taskID, statusID); err != nil {
		slf.logger.Error().Err(err).Uint("taskId", taskID).Msg("Error persisting task status")
		return models.TaskAssign{}, err
	}
	task.StatusID = statusID

	recipient := task.OtherParty(actorID)
	if err = slf.notifier.Deliver(recipient, models.Notification{
		Title:      "Task status updated to " + models.StatusLabel(statusID),
		Type:       models.NotificationTypeTaskStatus,
		NotifierID: actorID,
		PostID:     task.ID,
	}); err != nil {
		// The transition is committed; a delivery store failure only
		// costs the durable record, which the caller cannot undo.
		slf.logger.Error().Err(err).Uint("taskId", taskID).Msg("Error delivering status notification")
	}

	slf.logger.Info().
		Uint("taskId", taskID).
		Int("statusId", statusID).
		Uint("actorId", actorID).
		Msg("Task status updated")
	return task, nil
}

func (slf *TaskService) GetProviderRequests(workerID uint) ([]models.TaskAssign, error) {
	return slf.store.FindByWorkerID(workerID)
}

func (slf *TaskService) GetUserRequests(userID uint) ([]models.TaskAssign, error) {
	return slf.store.FindByUserID(userID)
}

func (slf *TaskService) GetUserRequestsCompleted(userID uint) ([]models.TaskAssign, error) {
	return slf.store.FindByUserIDAndStatus(userID, models.StatusCompleted)
}

var _ Deliverer = (*realtime.Notifier)(nil)
