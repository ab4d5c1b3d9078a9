package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")
	bobID := userID(t, db, "bob")

	createPost(t, e, aliceToken, "discuss")
	var post models.Post
	require.NoError(t, db.Where("description = ?", "discuss").First(&post).Error)

	rec := doRequest(e, http.MethodPost, "/api/comments", bobToken, map[string]interface{}{
		"post_id":     post.ID,
		"description": "first comment",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment has been created.")

	rec = doRequest(e, http.MethodPost, "/api/comments", bobToken, map[string]interface{}{
		"post_id":     post.ID,
		"description": "second comment",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("list is newest first with author fields", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/comments?postId=%d", post.ID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var comments []models.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
		require.Len(t, comments, 2)
		assert.Equal(t, "second comment", comments[0].Description)
		assert.Equal(t, bobID, comments[0].UserID)
		assert.NotEmpty(t, comments[0].Name)
		assert.Equal(t, "defaultProfile.jpg", comments[0].ProfilePic)
	})

	t.Run("missing postId is an invalid argument", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/comments", aliceToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCommentOnUnknownPost(t *testing.T) {
	e, _ := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")

	rec := doRequest(e, http.MethodPost, "/api/comments", aliceToken, map[string]interface{}{
		"post_id":     9999,
		"description": "into the void",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found!")
}

func TestDeleteComment(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")

	createPost(t, e, aliceToken, "discuss")
	var post models.Post
	require.NoError(t, db.Where("description = ?", "discuss").First(&post).Error)

	rec := doRequest(e, http.MethodPost, "/api/comments", bobToken, map[string]interface{}{
		"post_id":     post.ID,
		"description": "to be removed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment models.Comment
	require.NoError(t, db.Where("description = ?", "to be removed").First(&comment).Error)

	t.Run("someone else's comment", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), aliceToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "You can delete only your comment!")
	})

	t.Run("own comment", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), bobToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Comment has been deleted.")

		var count int64
		db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("unknown comment", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, "/api/comments/9999", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
