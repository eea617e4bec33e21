package mapper

import (
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
)

type TaskMapper struct{}

func (TaskMapper) EntityToTaskResponse(task models.TaskAssign) response.TaskResponseDTO {
	return response.TaskResponseDTO{
		ID:                  task.ID,
		WorkerID:            task.WorkerID,
		UserID:              task.UserID,
		ServiceID:           task.ServiceID,
		Description:         task.Description,
		EstTime:             task.EstTime,
		TotalAmount:         task.TotalAmount,
		OfferExpirationDate: task.OfferExpirationDate,
		StatusID:            task.StatusID,
		Status:              models.StatusLabel(task.StatusID),
		AudioName:           task.AudioName,
		ArrivalTime:         task.ArrivalTime,
		CreatedAt:           task.CreatedAt,
	}
}

func (m TaskMapper) EntitiesToTaskResponses(tasks []models.TaskAssign) []response.TaskResponseDTO {
	result := make([]response.TaskResponseDTO, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, m.EntityToTaskResponse(task))
	}
	return result
}
