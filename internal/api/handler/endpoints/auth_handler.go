package endpoints

import (
	"net/http"
	"ustadgee"
	"ustadgee/internal/api/handler/middleware"
	"ustadgee/internal/api/handler/request"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/service"
	"ustadgee/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type authHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
	config      ustadgee.AppConfig
}

func newAuthHandler() *authHandler {
	return &authHandler{
		userService: service.NewUserService(),
		logger:      ustadgee.Logger,
		config:      ustadgee.GetConfig(),
	}
}

func AuthHandler(router *graceful.Graceful) {
	h := newAuthHandler()

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/check-user", h.checkUserExists)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.GET("/me", h.getMe)
		protected.GET("/users/:id", h.getUser)
		protected.PUT("/users/notification-permission", h.updateNotificationPermission)
	}
}

func (slf *authHandler) register(c *gin.Context) {
	var registerDTO request.RegisterDTO
	err := pkg.ParseAndValidate(c, &registerDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating register DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	authResponse, err := slf.userService.Register(registerDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error registering user")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

func (slf *authHandler) login(c *gin.Context) {
	var loginDTO request.LoginDTO
	err := pkg.ParseAndValidate(c, &loginDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating login DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	authResponse, err := slf.userService.Login(loginDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error logging in user")
		c.JSON(http.StatusUnauthorized, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (slf *authHandler) checkUserExists(c *gin.Context) {
	var checkDTO request.CheckUserExistsDTO
	err := pkg.ParseAndValidate(c, &checkDTO)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	exists, err := slf.userService.CheckUserExists(checkDTO.PhoneNumber)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking user existence")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to check user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (slf *authHandler) getMe(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.APIError{Message: "User not authenticated"})
		return
	}

	user, err := slf.userService.GetByID(userID.(uint))
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID.(uint)).Msg("Error getting user")
		c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (slf *authHandler) updateNotificationPermission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var permissionDTO request.UpdateNotificationPermissionDTO
	if err := pkg.ParseAndValidate(c, &permissionDTO); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.userService.SetNotificationPermission(userID, permissionDTO.Status); err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error updating notification permission")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to update notification permission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (slf *authHandler) getUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
