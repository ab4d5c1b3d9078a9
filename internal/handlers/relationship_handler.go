package handlers

import (
	"net/http"
	"strconv"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RelationshipHandler handles follow-edge HTTP requests
type RelationshipHandler struct {
	relationshipRepository repositories.RelationshipRepository
	userRepository         repositories.UserRepository
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(relationshipRepo repositories.RelationshipRepository, userRepo repositories.UserRepository) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipRepository: relationshipRepo,
		userRepository:         userRepo,
	}
}

// RegisterRelationshipRoutes registers relationship-related routes
func (h *RelationshipHandler) RegisterRelationshipRoutes(g *echo.Group) {
	g.GET("/relationships", h.CheckFollowing)
	g.POST("/relationships", h.Follow)
	g.DELETE("/relationships", h.Unfollow)
	g.GET("/relationships/followers/count", h.GetFollowerCount)
	g.GET("/relationships/following/count", h.GetFollowingCount)
	g.GET("/relationships/followers/list", h.GetFollowersList)
	g.GET("/relationships/following/list", h.GetFollowingList)
	g.GET("/relationships/friends/list", h.GetMutualFriendsList)
}

// CheckFollowing reports whether the caller follows the given user.
// An absent identity yields false, not an error.
func (h *RelationshipHandler) CheckFollowing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return c.JSON(http.StatusUnauthorized, false)
	}

	followedUserID, err := strconv.ParseUint(c.QueryParam("followedUserId"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, false)
	}

	isFollowing, err := h.relationshipRepository.IsFollowing(currentUserID, uint(followedUserID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, isFollowing)
}

// Follow creates a follow edge from the caller to the requested user.
// Re-following is an idempotent no-op reported as "Already following.".
func (h *RelationshipHandler) Follow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated.")
	}

	var req models.RelationshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if currentUserID == req.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself!")
	}

	isFollowing, err := h.relationshipRepository.IsFollowing(currentUserID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return c.String(http.StatusOK, "Already following.")
	}

	rel := &models.Relationship{
		FollowerUserID: currentUserID,
		FollowedUserID: req.UserID,
	}
	if err := h.relationshipRepository.CreateRelationship(rel); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "Following")
}

// Unfollow deletes the follow edge from the caller to the requested user
func (h *RelationshipHandler) Unfollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated.")
	}

	var req models.RelationshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isFollowing, err := h.relationshipRepository.IsFollowing(currentUserID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isFollowing {
		return echo.NewHTTPError(http.StatusBadRequest, "Not following this user.")
	}

	if err := h.relationshipRepository.DeleteRelationship(currentUserID, req.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "Unfollow")
}

// GetFollowerCount returns how many users follow the given user
func (h *RelationshipHandler) GetFollowerCount(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	count, err := h.relationshipRepository.GetFollowerCount(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, count)
}

// GetFollowingCount returns how many users the given user follows
func (h *RelationshipHandler) GetFollowingCount(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	count, err := h.relationshipRepository.GetFollowingCount(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, count)
}

// GetFollowersList returns the distinct users following the given user
func (h *RelationshipHandler) GetFollowersList(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.relationshipRepository.GetFollowers(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// GetFollowingList returns the distinct users the given user follows
func (h *RelationshipHandler) GetFollowingList(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.relationshipRepository.GetFollowing(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// GetMutualFriendsList returns the intersection of the given user's
// follower and following sets, each entry carrying its own counts
func (h *RelationshipHandler) GetMutualFriendsList(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return c.JSON(http.StatusUnauthorized, []models.UserResponse{})
	}

	userID, err := strconv.ParseUint(c.QueryParam("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID cannot be null for finding mutual friends.")
	}

	followedIDs, err := h.relationshipRepository.GetFollowedIDs(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followerIDs, err := h.relationshipRepository.GetFollowerIDs(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followerSet := make(map[uint]bool, len(followerIDs))
	for _, id := range followerIDs {
		followerSet[id] = true
	}

	mutualIDs := make([]uint, 0)
	for _, id := range followedIDs {
		if followerSet[id] {
			mutualIDs = append(mutualIDs, id)
		}
	}

	friends, err := h.userRepository.GetUsersByIDs(mutualIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]models.UserResponse, 0, len(friends))
	for i := range friends {
		followerCount, err := h.relationshipRepository.GetFollowerCount(friends[i].ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		followingCount, err := h.relationshipRepository.GetFollowingCount(friends[i].ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resp = append(resp, friends[i].ToResponse(followerCount, followingCount))
	}

	return c.JSON(http.StatusOK, resp)
}
