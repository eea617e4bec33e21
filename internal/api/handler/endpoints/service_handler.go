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

type serviceHandler struct {
	serviceService *service.ServiceService
	logger         zerolog.Logger
	config         ustadgee.AppConfig
}

func newServiceHandler() *serviceHandler {
	return &serviceHandler{
		serviceService: service.NewServiceService(),
		logger:         ustadgee.Logger,
		config:         ustadgee.GetConfig(),
	}
}

func ServiceHandler(router *graceful.Graceful) {
	h := newServiceHandler()

	services := router.Group("/api/v1/services")
	services.Use(middleware.AuthMiddleware(h.config))
	{
		services.GET("", h.list)
		services.GET("/search", h.search)
		services.GET("/categories", h.categories)
		services.GET("/categories/:id/subcategories", h.subCategories)
		services.GET("/:id", h.get)
	}

	provider := router.Group("/api/v1/services")
	provider.Use(middleware.AuthMiddleware(h.config))
	provider.Use(middleware.RequireServiceProvider())
	{
		provider.GET("/mine", h.mine)
		provider.POST("", h.create)
		provider.PUT("/:id", h.update)
		provider.DELETE("/:id", h.delete)
	}
}

func (slf *serviceHandler) list(c *gin.Context) {
	categoryID := uint(queryInt(c, "categoryId", 0))
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	services, err := slf.serviceService.List(categoryID, page, limit)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing services")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (slf *serviceHandler) mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	services, err := slf.serviceService.GetForOwner(userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing own services")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (slf *serviceHandler) get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	svc, err := slf.serviceService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (slf *serviceHandler) create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var createDTO request.CreateServiceDTO
	if err := pkg.ParseAndValidate(c, &createDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	images := make([]models.ServiceImage, 0, len(createDTO.Images))
	for _, name := range createDTO.Images {
		images = append(images, models.ServiceImage{ImageName: name})
	}

	svc, err := slf.serviceService.Create(models.Service{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		Charges:     createDTO.Charges,
		CategoryID:  createDTO.CategoryID,
		Images:      images,
	}, userID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error creating service")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (slf *serviceHandler) update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var updateDTO request.UpdateServiceDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	svc, err := slf.serviceService.Update(id, models.Service{
		Title:       updateDTO.Title,
		Description: updateDTO.Description,
		Charges:     updateDTO.Charges,
		CategoryID:  updateDTO.CategoryID,
	}, userID)
	if err != nil {
		slf.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (slf *serviceHandler) delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := slf.serviceService.Delete(id, userID); err != nil {
		slf.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (slf *serviceHandler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'q' is required"})
		return
	}

	services, err := slf.serviceService.Search(query)
	if err != nil {
		slf.logger.Error().Err(err).Str("query", query).Msg("Error searching services")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to search services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (slf *serviceHandler) categories(c *gin.Context) {
	categories, err := slf.serviceService.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (slf *serviceHandler) subCategories(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	subCategories, err := slf.serviceService.GetSubCategories(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to fetch subcategories"})
		return
	}
	c.JSON(http.StatusOK, subCategories)
}

func (slf *serviceHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
	case errors.Is(err, service.ErrNotServiceOwner):
		c.JSON(http.StatusForbidden, response.APIError{Message: err.Error()})
	default:
		slf.logger.Error().Err(err).Msg("Service operation failed")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Internal error"})
	}
}
