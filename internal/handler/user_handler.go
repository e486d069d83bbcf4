package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/service"
)

// UserHandler exposes user administration.
type UserHandler struct {
	users service.UserServiceInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserServiceInterface) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.Fail(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.BadRequest("Failed to create user"))
		return
	}
	respond(c, h.users.CreateUser(c.Request.Context(), req))
}

// Update handles PUT /api/v1/users/:id. The path id wins over any id in the body.
func (h *UserHandler) Update(c *gin.Context) {
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.BadRequest("Failed to update user"))
		return
	}
	req.ID = c.Param("id")
	respond(c, h.users.UpdateUser(c.Request.Context(), req))
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	respond(c, h.users.DeleteUser(c.Request.Context(), c.Param("id")))
}
