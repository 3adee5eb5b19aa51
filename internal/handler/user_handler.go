package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/service"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users service.UserServiceInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserServiceInterface) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Email          string      `json:"email" binding:"required"`
	Username       string      `json:"username" binding:"required"`
	FirstName      string      `json:"first_name" binding:"required"`
	LastName       string      `json:"last_name" binding:"required"`
	Role           domain.Role `json:"role"`
	Password       string      `json:"password" binding:"required"`
	ProfilePicture *string     `json:"profile_picture"`
	IsActive       *bool       `json:"is_active"`
}

type listUsersQuery struct {
	pageQuery
	Role     *string `form:"role"`
	IsActive *bool   `form:"is_active"`
}

// PasswordStrengthRequest is the body of POST /api/v1/users/password-strength.
// The personal fields are optional and only sharpen the policy check.
type PasswordStrengthRequest struct {
	Password  string `json:"password" binding:"required"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PasswordStrengthResponse reports the score and policy violations of a password.
type PasswordStrengthResponse struct {
	Score    int      `json:"score"`
	Strength string   `json:"strength"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), service.CreateUserInput{
		Email:          req.Email,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           req.Role,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
		Active:         req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q listUsersQuery
	if !bindQuery(c, &q) {
		return
	}

	var filter domain.UserFilter
	if q.Role != nil {
		if !domain.IsValidRole(*q.Role) {
			badRequest(c, "role must be one of: student, instructor, admin")
			return
		}
		role := domain.Role(*q.Role)
		filter.Role = &role
	}
	filter.Active = q.IsActive

	users, err := h.users.ListUsers(c.Request.Context(), filter, q.page())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch domain.UserPatch
	if !bindJSON(c, &patch) {
		return
	}
	patch.UpdatedAt = nil

	user, err := h.users.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PasswordStrength handles POST /api/v1/users/password-strength
func (h *UserHandler) PasswordStrength(c *gin.Context) {
	var req PasswordStrengthRequest
	if !bindJSON(c, &req) {
		return
	}

	problems := validator.ValidatePassword(req.Password, validator.PersonalInfo{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if problems == nil {
		problems = []string{}
	}
	score := validator.PasswordStrength(req.Password)

	c.JSON(http.StatusOK, PasswordStrengthResponse{
		Score:    score,
		Strength: validator.StrengthLabel(score),
		Valid:    len(problems) == 0,
		Problems: problems,
	})
}
