package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository         repositories.UserRepository
	relationshipRepository repositories.RelationshipRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, relationshipRepo repositories.RelationshipRepository) *UserHandler {
	return &UserHandler{
		userRepository:         userRepo,
		relationshipRepository: relationshipRepo,
	}
}

// RegisterUserRoutes registers user-related routes on the protected group
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.PUT("/users", h.UpdateUser)
	g.DELETE("/users/:userId", h.DeleteUser)
	g.GET("/users/suggestions", h.GetSuggestions)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/check-username", h.CheckUsername)
	g.GET("/users/check-email", h.CheckEmail)
}

// FindUser retrieves a user by ID with follower/following counts.
// Registered on the public group.
func (h *UserHandler) FindUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found with ID: "+c.Param("userId"))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followerCount, err := h.relationshipRepository.GetFollowerCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followingCount, err := h.relationshipRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user.ToResponse(followerCount, followingCount))
}

// UpdateUser mutates the caller's own display fields, never identity or credentials
func (h *UserHandler) UpdateUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if currentUserID != req.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "You are not authorized to update this user's profile.")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user.Name = req.Name
	user.City = req.City
	user.ProfilePic = req.ProfilePic
	user.CoverPic = req.CoverPic
	user.WebsiteName = req.WebsiteName
	user.WebsiteURL = req.WebsiteURL

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "User updated successfully!")
}

// DeleteUser deletes the caller's own account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID != uint(id) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this user's profile.")
	}

	if _, err := h.userRepository.GetUserByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User with ID "+c.Param("userId")+" not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.userRepository.DeleteUser(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "User deleted successfully!")
}

// GetSuggestions returns users the caller does not already follow.
// Unauthenticated callers receive an empty result, not an error.
func (h *UserHandler) GetSuggestions(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return c.JSON(http.StatusOK, []models.User{})
	}

	followedIDs, err := h.relationshipRepository.GetFollowedIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	excludeIDs := append(followedIDs, currentUserID)

	users, err := h.userRepository.GetUsersExcluding(excludeIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// SearchUsers searches users by username or display name.
// A blank query yields an empty result, not an error.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusOK, []models.User{})
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// CheckUsername reports whether a username is already taken
func (h *UserHandler) CheckUsername(c echo.Context) error {
	taken, err := h.userRepository.UsernameExists(c.QueryParam("username"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, taken)
}

// CheckEmail reports whether an email is already taken
func (h *UserHandler) CheckEmail(c echo.Context) error {
	taken, err := h.userRepository.EmailExists(c.QueryParam("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, taken)
}
