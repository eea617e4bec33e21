package endpoints

import (
	"errors"
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/middleware"
	"ustadgee/internal/api/handler/request"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/service"
	"ustadgee/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type reviewHandler struct {
	reviewService *service.ReviewService
	logger        zerolog.Logger
	config        ustadgee.AppConfig
}

func newReviewHandler(reviewService *service.ReviewService) *reviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		logger:        ustadgee.Logger,
		config:        ustadgee.GetConfig(),
	}
}

func ReviewHandler(router *graceful.Graceful, reviewService *service.ReviewService) {
	h := newReviewHandler(reviewService)

	reviews := router.Group("/api/v1/reviews")
	reviews.Use(middleware.AuthMiddleware(h.config))
	{
		reviews.GET("/worker/:id", h.workerReviews)
	}

	requester := router.Group("/api/v1/reviews")
	requester.Use(middleware.AuthMiddleware(h.config))
	requester.Use(middleware.RequireRequester())
	{
		requester.POST("", h.addReview)
	}
}

func (slf *reviewHandler) addReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var reviewDTO request.AddReviewDTO
	if err := pkg.ParseAndValidate(c, &reviewDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	review, err := slf.reviewService.AddReview(models.Review{
		WorkerID:    reviewDTO.WorkerID,
		Rating:      reviewDTO.Rating,
		Description: reviewDTO.Description,
	}, userID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyReviewed) {
			c.JSON(http.StatusConflict, response.APIError{Message: err.Error()})
			return
		}
		slf.logger.Error().Err(err).Msg("Error adding review")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to add review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (slf *reviewHandler) workerReviews(c *gin.Context) {
	workerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	reviews, avg, err := slf.reviewService.GetForWorker(workerID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("workerId", workerID).Msg("Error fetching worker reviews")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, response.WorkerReviewsDTO{
		Reviews:       reviews,
		AverageRating: avg,
	})
}
