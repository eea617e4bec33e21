package request

type AddReviewDTO struct {
	WorkerID    uint   `json:"workerId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
}
