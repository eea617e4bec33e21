package response

import "time"

type TaskResponseDTO struct {
	ID                  uint      `json:"id"`
	WorkerID            uint      `json:"workerId"`
	UserID              uint      `json:"userId"`
	ServiceID           uint      `json:"serviceId"`
	Description         string    `json:"description"`
	EstTime             int       `json:"estTime"`
	TotalAmount         int       `json:"totalAmount"`
	OfferExpirationDate time.Time `json:"offerExpirationDate"`
	StatusID            int       `json:"statusId"`
	Status              string    `json:"status"`
	AudioName           string    `json:"audioName,omitempty"`
	ArrivalTime         time.Time `json:"arrivalTime"`
	CreatedAt           time.Time `json:"createdAt"`
}
