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

func createStory(t *testing.T, e *echo.Echo, token, img string) {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/stories", token, map[string]string{"img": img})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestStoryFeed(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")
	charlieToken := signupUser(t, e, "charlie")
	bobID := userID(t, db, "bob")

	// alice follows bob but not charlie
	doRequest(e, http.MethodPost, "/api/relationships", aliceToken, map[string]uint{"user_id": bobID})

	createStory(t, e, aliceToken, "alice-story.jpg")
	createStory(t, e, bobToken, "bob-story.jpg")
	createStory(t, e, charlieToken, "charlie-story.jpg")

	rec := doRequest(e, http.MethodGet, "/api/stories", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []models.StoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 2)

	imgs := []string{feed[0].Img, feed[1].Img}
	assert.Contains(t, imgs, "alice-story.jpg")
	assert.Contains(t, imgs, "bob-story.jpg")
	assert.NotContains(t, imgs, "charlie-story.jpg")

	for _, s := range feed {
		assert.NotEmpty(t, s.Name, "author name is joined")
	}
}

func TestStoryFeedLimit(t *testing.T) {
	e, _ := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")

	for i := 0; i < 6; i++ {
		createStory(t, e, aliceToken, fmt.Sprintf("story-%d.jpg", i))
	}

	rec := doRequest(e, http.MethodGet, "/api/stories", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []models.StoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed, 4)
	assert.Equal(t, "story-5.jpg", feed[0].Img, "newest first")
}

func TestDeleteStory(t *testing.T) {
	e, db := setupTestServer(t)
	aliceToken := signupUser(t, e, "alice")
	bobToken := signupUser(t, e, "bob")

	createStory(t, e, aliceToken, "alice-story.jpg")

	var story models.Story
	require.NoError(t, db.Where("img = ?", "alice-story.jpg").First(&story).Error)

	t.Run("someone else's story", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/stories/%d", story.ID), bobToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "You can delete only your story!")
	})

	t.Run("own story", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/stories/%d", story.ID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Story has been deleted.")

		var count int64
		db.Model(&models.Story{}).Where("id = ?", story.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("unknown story", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, "/api/stories/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Story not found!")
	})
}
