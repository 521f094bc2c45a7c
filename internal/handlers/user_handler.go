package handlers

import (
	"net/http"

	"matchmaker_backend/internal/middleware"
	"matchmaker_backend/internal/services"
	"matchmaker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, mw *RouteMiddleware) {
	// Registration happens before any token exists, so it is open.
	r.POST("/users", h.Register)

	r.GET("/users", mw.Auth, mw.Admin, h.ListUsers)
	r.PATCH("/users/admin/:id", mw.Auth, mw.Admin, h.GrantAdmin)

	// Self-service: the path email must match the token identity.
	r.GET("/users/admin/:email", mw.Auth, middleware.RequireSelfParam("email"), h.CheckAdmin)
}

// Register creates the user record. A duplicate registration responds
// 200 with a null insertedId, never an error.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GrantAdmin(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.GrantAdmin(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}

func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	admin, err := h.userService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleCheckResponse{Admin: admin})
}
