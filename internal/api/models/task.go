package models

import "time"

// Task lifecycle statuses. A task starts Pending; Completed and
// Cancelled are terminal.
const (
	StatusPending    = 1
	StatusAccepted   = 2
	StatusInProgress = 3
	StatusCompleted  = 4
	StatusCancelled  = 5
)

var statusLabels = map[int]string{
	StatusPending:    "Pending",
	StatusAccepted:   "Accepted",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

// StatusLabel returns the display name for a status ID, or "Unknown".
func StatusLabel(statusID int) string {
	if label, ok := statusLabels[statusID]; ok {
		return label
	}
	return "Unknown"
}

// IsValidStatus reports whether statusID is one of the five task statuses.
func IsValidStatus(statusID int) bool {
	_, ok := statusLabels[statusID]
	return ok
}

// TaskAssign is a booking of a service from a provider by a requester.
type TaskAssign struct {
	ID                  uint      `gorm:"primaryKey"`
	WorkerID            uint      `gorm:"not null;index;column:worker_id"`
	UserID              uint      `gorm:"not null;index;column:user_id"`
	ServiceID           uint      `gorm:"not null;index;column:service_id"`
	Description         string    `gorm:"not null;size:500"`
	EstTime             int       `gorm:"not null;column:est_time"`
	TotalAmount         int       `gorm:"not null;column:total_amount"`
	OfferExpirationDate time.Time `gorm:"not null;column:offer_expiration_date"`
	StatusID            int       `gorm:"not null;index;column:status_id"`
	AudioName           string    `gorm:"size:500;column:audio_name"`
	Cnic                string    `gorm:"size:500;column:cnic"`
	ArrivalTime         time.Time `gorm:"not null;column:arrival_time"`
	CreatedAt           time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (TaskAssign) TableName() string {
	return "task_assigns"
}

// OtherParty returns the task participant that is not the actor.
func (t TaskAssign) OtherParty(actorID uint) uint {
	if actorID == t.WorkerID {
		return t.UserID
	}
	return t.WorkerID
}

// IsParty reports whether userID is the worker or the requester of the task.
func (t TaskAssign) IsParty(userID uint) bool {
	return userID == t.WorkerID || userID == t.UserID
}
