package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/service"
	"github.com/gidacan/blog-backend/internal/dto/request"
	"github.com/gidacan/blog-backend/internal/dto/response"
	apperrors "github.com/gidacan/blog-backend/pkg/errors"
)

// UserController handles user HTTP requests
type UserController struct {
	userService service.UserService
	authService service.AuthService
	logger      *zap.Logger
}

// NewUserController creates a new UserController instance
func NewUserController(userService service.UserService, authService service.AuthService, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the user routes
func (ctrl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", ctrl.List)
		users.POST("", ctrl.Create)
		users.PUT("/:id", ctrl.Update)
		users.DELETE("/:id", ctrl.Delete)
		users.POST("/login", ctrl.Login)
	}
}

// List handles GET /users
func (ctrl *UserController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	users, total, err := ctrl.userService.List(c.Request.Context(), page, size)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPagedResponse(response.NewUserResponses(users), page, size, total))
}

// Create handles POST /users
func (ctrl *UserController) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewErrorWithDetails("invalid request", err.Error()))
		return
	}

	user, err := ctrl.userService.Create(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccessWithData("user created", response.NewUserResponse(user)))
}

// Update handles PUT /users/:id
func (ctrl *UserController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("invalid user id"))
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewErrorWithDetails("invalid request", err.Error()))
		return
	}

	user, err := ctrl.userService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccessWithData("user updated", response.NewUserResponse(user)))
}

// Delete handles DELETE /users/:id
func (ctrl *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("invalid user id"))
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), uint(id)); err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess("user deleted"))
}

// Login handles POST /users/login
func (ctrl *UserController) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewErrorWithDetails("invalid request", err.Error()))
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccessWithData("login successful", resp))
}

func (ctrl *UserController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.NewError("user not found"))
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, response.NewError("username or email already taken"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.NewError("invalid credentials"))
	default:
		status := apperrors.GetStatus(err)
		if status >= http.StatusInternalServerError {
			ctrl.logger.Error("user request failed", zap.Error(err))
		}
		c.JSON(status, response.NewError(http.StatusText(status)))
	}
}
