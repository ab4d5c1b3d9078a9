package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, e *echo.Echo, token, description string) {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/posts", token, map[string]string{"description": description})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestPostFeed(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")
	charlieToken := signupUser(t, e, "charlie")
	bobID := userID(t, db, "bob")

	// alice follows bob but not charlie
	doRequest(e, http.MethodPost, "/api/relationships", aliceToken, map[string]uint{"user_id": bobID})

	createPost(t, e, aliceToken, "alice post")
	createPost(t, e, bobToken, "bob post")
	createPost(t, e, charlieToken, "charlie post")

	rec := doRequest(e, http.MethodGet, "/api/posts", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []models.PostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 2, "only the caller's and followed users' posts")

	descriptions := []string{feed[0].Description, feed[1].Description}
	assert.Contains(t, descriptions, "alice post")
	assert.Contains(t, descriptions, "bob post")
	assert.NotContains(t, descriptions, "charlie post")

	t.Run("newest first", func(t *testing.T) {
		assert.Equal(t, "bob post", feed[0].Description)
	})

	t.Run("author fields are joined", func(t *testing.T) {
		for _, p := range feed {
			assert.NotEmpty(t, p.Name)
			assert.Equal(t, "defaultProfile.jpg", p.ProfilePic)
		}
	})

	t.Run("targeted by userId", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/posts?userId=%d", bobID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var posts []models.PostResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "bob post", posts[0].Description)
		assert.Equal(t, bobID, posts[0].UserID)
	})
}

func TestAddPost(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	aliceID := userID(t, db, "alice")

	rec := doRequest(e, http.MethodPost, "/api/posts", aliceToken, map[string]string{
		"description": "hello world",
		"img":         "pic.jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post has been created.")

	var post models.Post
	require.NoError(t, db.Where("description = ?", "hello world").First(&post).Error)
	assert.Equal(t, aliceID, post.UserID)
	assert.Equal(t, "pic.jpg", post.Img)

	t.Run("missing description", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/posts", aliceToken, map[string]string{"img": "pic.jpg"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeletePost(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")

	createPost(t, e, aliceToken, "alice post")

	var post models.Post
	require.NoError(t, db.Where("description = ?", "alice post").First(&post).Error)

	t.Run("someone else's post", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), bobToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "You can delete only your post!")
	})

	t.Run("own post", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post has been deleted.")

		var count int64
		db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("unknown post", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, "/api/posts/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post not found!")
	})
}
