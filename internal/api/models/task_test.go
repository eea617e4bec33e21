package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusLabel(StatusPending))
	assert.Equal(t, "Accepted", StatusLabel(StatusAccepted))
	assert.Equal(t, "In Progress", StatusLabel(StatusInProgress))
	assert.Equal(t, "Completed", StatusLabel(StatusCompleted))
	assert.Equal(t, "Cancelled", StatusLabel(StatusCancelled))
	assert.Equal(t, "Unknown", StatusLabel(0))
	assert.Equal(t, "Unknown", StatusLabel(6))
}

func TestIsValidStatus(t *testing.T) {
	for statusID := StatusPending; statusID <= StatusCancelled; statusID++ {
		assert.True(t, IsValidStatus(statusID))
	}
	assert.False(t, IsValidStatus(0))
	assert.False(t, IsValidStatus(6))
	assert.False(t, IsValidStatus(-1))
}

func TestTaskOtherParty(t *testing.T) {
	task := TaskAssign{WorkerID: 9, UserID: 7}
	assert.Equal(t, uint(7), task.OtherParty(9))
	assert.Equal(t, uint(9), task.OtherParty(7))
}

func TestTaskIsParty(t *testing.T) {
	task := TaskAssign{WorkerID: 9, UserID: 7}
	assert.True(t, task.IsParty(9))
	assert.True(t, task.IsParty(7))
	assert.False(t, task.IsParty(12))
}
