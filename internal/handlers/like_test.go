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

func TestLikeLifecycle(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")
	bobID := userID(t, db, "bob")

	createPost(t, e, aliceToken, "like me")
	var post models.Post
	require.NoError(t, db.Where("description = ?", "like me").First(&post).Error)

	like := map[string]uint{"post_id": post.ID}

	rec := doRequest(e, http.MethodPost, "/api/likes", bobToken, like)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post has been liked.")

	t.Run("duplicate like is rejected", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/likes", bobToken, like)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post already liked by this user")
	})

	t.Run("likers list", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/likes?postId=%d", post.ID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var ids []uint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
		require.Len(t, ids, 1)
		assert.Equal(t, bobID, ids[0])
	})

	t.Run("unlike removes the like", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/likes?postId=%d", post.ID), bobToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post has been disliked.")

		rec = doRequest(e, http.MethodGet, fmt.Sprintf("/api/likes?postId=%d", post.ID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("unlike without a like fails", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/likes?postId=%d", post.ID), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLikeUnknownPost(t *testing.T) {
	e, _ := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")

	rec := doRequest(e, http.MethodPost, "/api/likes", aliceToken, map[string]uint{"post_id": 9999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found!")
}
