package handlers

import (
	"net/http"
	"strconv"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// storyFeedLimit caps how many stories the feed exposes.
const storyFeedLimit = 4

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository        repositories.StoryRepository
	userRepository         repositories.UserRepository
	relationshipRepository repositories.RelationshipRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository, userRepo repositories.UserRepository, relationshipRepo repositories.RelationshipRepository) *StoryHandler {
	return &StoryHandler{
		storyRepository:        storyRepo,
		userRepository:         userRepo,
		relationshipRepository: relationshipRepo,
	}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.GET("/stories", h.GetStories)
	g.POST("/stories", h.AddStory)
	g.DELETE("/stories/:id", h.DeleteStory)
}

// GetStories returns the newest stories from the caller and anyone the
// caller follows, truncated to the feed limit and joined with the
// author's display name.
func (h *StoryHandler) GetStories(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	followedIDs, err := h.relationshipRepository.GetFollowedIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	stories, err := h.storyRepository.GetStoriesByUserIDs(append(followedIDs, currentUserID), storyFeedLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Batch author lookup
	idSet := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, s := range stories {
		if !idSet[s.UserID] {
			idSet[s.UserID] = true
			ids = append(ids, s.UserID)
		}
	}
	users, err := h.userRepository.GetUsersByIDs(ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	resp := make([]models.StoryResponse, 0, len(stories))
	for _, s := range stories {
		resp = append(resp, models.StoryResponse{
			ID:        s.ID,
			Img:       s.Img,
			CreatedAt: s.CreatedAt,
			UserID:    s.UserID,
			Name:      userMap[s.UserID].Name,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// AddStory creates a story attributed to the caller
func (h *StoryHandler) AddStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story := &models.Story{
		Img:    req.Img,
		UserID: currentUserID,
	}

	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusCreated, "Story has been created.")
}

// DeleteStory deletes a story. Fails with a permission error unless the
// caller owns it.
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	storyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	story, err := h.storyRepository.GetStoryByID(uint(storyID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found!")
	}

	if story.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can delete only your story!")
	}

	if err := h.storyRepository.DeleteStory(story.ID, currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "Story has been deleted.")
}
