package service

import (
	"errors"
	"ustadgee"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"

	"github.com/rs/zerolog"
)

var ErrAlreadyReviewed = errors.New("you have already reviewed this provider")

type ReviewService struct {
	reviewRepo *repo.ReviewRepository
	notifier   Deliverer
	logger     zerolog.Logger
}

func NewReviewService(notifier Deliverer) *ReviewService {
	return &ReviewService{
		reviewRepo: repo.NewReviewRepository(),
		notifier:   notifier,
		logger:     ustadgee.Logger,
	}
}

// AddReview records one review per requester/provider pair and notifies
// the reviewed provider.
func (slf *ReviewService) AddReview(review models.Review, reviewerID uint) (models.Review, error) {
	review.UserID = reviewerID

	exists, err := slf.reviewRepo.ExistsByWorkerAndUser(review.WorkerID, reviewerID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking existing review")
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, ErrAlreadyReviewed
	}

	if err = slf.reviewRepo.Create(&review); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating review")
		return models.Review{}, err
	}

	if err = slf.notifier.Deliver(review.WorkerID, models.Notification{
		Title:      "You received a new review",
		Type:       models.NotificationTypeReview,
		NotifierID: reviewerID,
		PostID:     review.ID,
	}); err != nil {
		slf.logger.Error().Err(err).Uint("reviewId", review.ID).Msg("Error delivering review notification")
	}

	slf.logger.Info().
		Uint("reviewId", review.ID).
		Uint("workerId", review.WorkerID).
		Msg("Review created")
	return review, nil
}

func (slf *ReviewService) GetForWorker(workerID uint) ([]models.Review, float64, error) {
	reviews, err := slf.reviewRepo.FindByWorkerID(workerID)
	if err != nil {
		return nil, 0, err
	}
	avg, err := slf.reviewRepo.AverageRating(workerID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, avg, nil
}
