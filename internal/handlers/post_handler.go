package handlers

import (
	"net/http"
	"strconv"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles post and feed HTTP requests
type PostHandler struct {
	postRepository         repositories.PostRepository
	userRepository         repositories.UserRepository
	relationshipRepository repositories.RelationshipRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, relationshipRepo repositories.RelationshipRepository) *PostHandler {
	return &PostHandler{
		postRepository:         postRepo,
		userRepository:         userRepo,
		relationshipRepository: relationshipRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.POST("/posts", h.AddPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// GetPosts returns the feed. With ?userId= it returns that user's posts
// only; otherwise posts authored by the caller or anyone the caller
// follows, newest first. Authors are joined with one batch lookup.
func (h *PostHandler) GetPosts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated!")
	}

	var posts []models.Post
	var err error

	if target := c.QueryParam("userId"); target != "" {
		targetUserID, parseErr := strconv.ParseUint(target, 10, 32)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
		}
		posts, err = h.postRepository.GetPostsByUserID(uint(targetUserID))
	} else {
		var followedIDs []uint
		followedIDs, err = h.relationshipRepository.GetFollowedIDs(currentUserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		posts, err = h.postRepository.GetPostsByUserIDs(append(followedIDs, currentUserID))
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userMap, err := h.authorMap(posts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		author := userMap[p.UserID]
		resp = append(resp, models.PostResponse{
			ID:          p.ID,
			Description: p.Description,
			Img:         p.Img,
			CreatedAt:   p.CreatedAt,
			UserID:      p.UserID,
			Name:        author.Name,
			ProfilePic:  author.ProfilePic,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// AddPost creates a post attributed to the caller
func (h *PostHandler) AddPost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		Description: req.Description,
		Img:         req.Img,
		UserID:      currentUserID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusCreated, "Post has been created.")
}

// DeletePost deletes a post. Fails with a permission error unless the
// caller owns it.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found!")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can delete only your post!")
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.String(http.StatusOK, "Post has been deleted.")
}

// authorMap batches the author lookup for a slice of posts
func (h *PostHandler) authorMap(posts []models.Post) (map[uint]models.User, error) {
	idSet := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, p := range posts {
		if !idSet[p.UserID] {
			idSet[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	users, err := h.userRepository.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}

	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	return userMap, nil
}
