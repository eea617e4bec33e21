package request

import "time"

type CreateTaskDTO struct {
	WorkerID            uint      `json:"workerId" validate:"required"`
	ServiceID           uint      `json:"serviceId" validate:"required"`
	Description         string    `json:"description" validate:"required"`
	EstTime             int       `json:"estTime" validate:"required,gt=0"`
	TotalAmount         int       `json:"totalAmount" validate:"required,gt=0"`
	OfferExpirationDate time.Time `json:"offerExpirationDate" validate:"required"`
	AudioName           string    `json:"audioName"`
	Cnic                string    `json:"cnic"`
	ArrivalTime         time.Time `json:"arrivalTime" validate:"required"`
}

type UpdateTaskStatusDTO struct {
	StatusID int `json:"statusId" validate:"required"`
}
