package response

import "ustadgee/internal/api/models"

type WorkerReviewsDTO struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
}
