package service

import (
	"errors"
	"testing"
	"ustadgee/internal/api/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTaskStore struct {
	tasks         map[uint]models.TaskAssign
	nextID        uint
	updateErr     error
	statusUpdates []int
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[uint]models.TaskAssign{}, nextID: 1}
}

func (f *fakeTaskStore) FindByID(id uint) (models.TaskAssign, error) {
	task, ok := f.tasks[id]
	if !ok {
		return models.TaskAssign{}, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (f *fakeTaskStore) Create(task *models.TaskAssign) error {
	task.ID = f.nextID
	f.nextID++
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) UpdateStatus(id uint, statusID int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	task := f.tasks[id]
	task.StatusID = statusID
	f.tasks[id] = task
	f.statusUpdates = append(f.statusUpdates, statusID)
	return nil
}

func (f *fakeTaskStore) FindByWorkerID(workerID uint) ([]models.TaskAssign, error) {
	var result []models.TaskAssign
	for _, task := range f.tasks {
		if task.WorkerID == workerID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskStore) FindByUserID(userID uint) ([]models.TaskAssign, error) {
	var result []models.TaskAssign
	for _, task := range f.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskStore) FindByUserIDAndStatus(userID uint, statusID int) ([]models.TaskAssign, error) {
	var result []models.TaskAssign
	for _, task := range f.tasks {
		if task.UserID == userID && task.StatusID == statusID {
			result = append(result, task)
		}
	}
	return result, nil
}

type fakeDeliverer struct {
	recipients    []uint
	notifications []models.Notification
	err           error
}

func (f *fakeDeliverer) Deliver(recipientID uint, notification models.Notification) error {
	f.recipients = append(f.recipients, recipientID)
	f.notifications = append(f.notifications, notification)
	return f.err
}

func newTestTaskService(store TaskStore, deliverer Deliverer) *TaskService {
	return &TaskService{
		store:    store,
		notifier: deliverer,
		logger:   zerolog.Nop(),
	}
}

func TestCreateTaskStartsPendingAndNotifiesProvider(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	task, err := svc.CreateTask(models.TaskAssign{WorkerID: 9, ServiceID: 2, Description: "fix sink"}, 7)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, task.StatusID)
	assert.Equal(t, uint(7), task.UserID)

	require.Len(t, deliverer.recipients, 1)
	assert.Equal(t, uint(9), deliverer.recipients[0])
	assert.Equal(t, "New Task Request", deliverer.notifications[0].Title)
	assert.Equal(t, models.NotificationTypeTaskRequest, deliverer.notifications[0].Type)
	assert.Equal(t, uint(7), deliverer.notifications[0].NotifierID)
	assert.Equal(t, task.ID, deliverer.notifications[0].PostID)
}

func TestUpdateStatusPersistsAndNotifiesOtherParty(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusPending}

	task, err := svc.UpdateStatus(5, models.StatusAccepted, 9)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAccepted, task.StatusID)
	assert.Equal(t, models.StatusAccepted, store.tasks[5].StatusID)

	require.Len(t, deliverer.recipients, 1)
	assert.Equal(t, uint(7), deliverer.recipients[0])
	assert.Equal(t, "Task status updated to Accepted", deliverer.notifications[0].Title)
	assert.Equal(t, models.NotificationTypeTaskStatus, deliverer.notifications[0].Type)
	assert.Equal(t, uint(9), deliverer.notifications[0].NotifierID)
}

func TestUpdateStatusNotifiesWorkerWhenRequesterActs(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusAccepted}

	_, err := svc.UpdateStatus(5, models.StatusCancelled, 7)
	require.NoError(t, err)

	require.Len(t, deliverer.recipients, 1)
	assert.Equal(t, uint(9), deliverer.recipients[0])
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusPending}

	for _, statusID := range []int{0, 6, 99, -1} {
		_, err := svc.UpdateStatus(5, statusID, 9)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}
	assert.Empty(t, store.statusUpdates)
	assert.Empty(t, deliverer.recipients)
}

func TestUpdateStatusUnknownTask(t *testing.T) {
	svc := newTestTaskService(newFakeTaskStore(), &fakeDeliverer{})

	_, err := svc.UpdateStatus(404, models.StatusAccepted, 9)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateStatusRejectsNonParticipant(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusPending}

	_, err := svc.UpdateStatus(5, models.StatusAccepted, 12)
	assert.ErrorIs(t, err, ErrNotTaskParty)
	assert.Empty(t, deliverer.recipients)
}

func TestUpdateStatusPersistenceFailureSuppressesNotification(t *testing.T) {
	store := newFakeTaskStore()
	store.updateErr = errors.New("db down")
	deliverer := &fakeDeliverer{}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusPending}

	_, err := svc.UpdateStatus(5, models.StatusAccepted, 9)
	require.Error(t, err)
	assert.Empty(t, deliverer.recipients)
	assert.Equal(t, models.StatusPending, store.tasks[5].StatusID)
}

func TestUpdateStatusDeliveryFailureDoesNotFail(t *testing.T) {
	store := newFakeTaskStore()
	deliverer := &fakeDeliverer{err: errors.New("store down")}
	svc := newTestTaskService(store, deliverer)

	store.tasks[5] = models.TaskAssign{ID: 5, WorkerID: 9, UserID: 7, StatusID: models.StatusPending}

	task, err := svc.UpdateStatus(5, models.StatusAccepted, 9)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, task.StatusID)
}
