package endpoints

import (
	"errors"
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/mapper"
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

type taskHandler struct {
	taskService *service.TaskService
	taskMapper  mapper.TaskMapper
	logger      zerolog.Logger
	config      ustadgee.AppConfig
}

func newTaskHandler(taskService *service.TaskService) *taskHandler {
	return &taskHandler{
		taskService: taskService,
		logger:      ustadgee.Logger,
		config:      ustadgee.GetConfig(),
	}
}

func TaskHandler(router *graceful.Graceful, taskService *service.TaskService) {
	h := newTaskHandler(taskService)

	tasks := router.Group("/api/v1/tasks")
	tasks.Use(middleware.AuthMiddleware(h.config))
	{
		tasks.PUT("/:id/status", h.updateStatus)
		tasks.GET("/provider", h.providerRequests)
		tasks.GET("/mine", h.userRequests)
		tasks.GET("/mine/completed", h.userRequestsCompleted)
	}

	requester := router.Group("/api/v1/tasks")
	requester.Use(middleware.AuthMiddleware(h.config))
	requester.Use(middleware.RequireRequester())
	{
		requester.POST("", h.create)
	}
}

func (slf *taskHandler) create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var createDTO request.CreateTaskDTO
	if err := pkg.ParseAndValidate(c, &createDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating task DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	task, err := slf.taskService.CreateTask(models.TaskAssign{
		WorkerID:            createDTO.WorkerID,
		ServiceID:           createDTO.ServiceID,
		Description:         createDTO.Description,
		EstTime:             createDTO.EstTime,
		TotalAmount:         createDTO.TotalAmount,
		OfferExpirationDate: createDTO.OfferExpirationDate,
		AudioName:           createDTO.AudioName,
		Cnic:                createDTO.Cnic,
		ArrivalTime:         createDTO.ArrivalTime,
	}, userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error creating task")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, slf.taskMapper.EntityToTaskResponse(task))
}

func (slf *taskHandler) updateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var statusDTO request.UpdateTaskStatusDTO
	if err := pkg.ParseAndValidate(c, &statusDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	task, err := slf.taskService.UpdateStatus(taskID, statusDTO.StatusID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		case errors.Is(err, service.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
		case errors.Is(err, service.ErrNotTaskParty):
			c.JSON(http.StatusForbidden, response.APIError{Message: err.Error()})
		default:
			slf.logger.Error().Err(err).Uint("taskId", taskID).Msg("Error updating task status")
			c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to update task status"})
		}
		return
	}

	c.JSON(http.StatusOK, slf.taskMapper.EntityToTaskResponse(task))
}

func (slf *taskHandler) providerRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := slf.taskService.GetProviderRequests(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching provider requests")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, slf.taskMapper.EntitiesToTaskResponses(tasks))
}

func (slf *taskHandler) userRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := slf.taskService.GetUserRequests(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching user requests")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, slf.taskMapper.EntitiesToTaskResponses(tasks))
}

func (slf *taskHandler) userRequestsCompleted(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := slf.taskService.GetUserRequestsCompleted(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching completed requests")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, slf.taskMapper.EntitiesToTaskResponses(tasks))
}
