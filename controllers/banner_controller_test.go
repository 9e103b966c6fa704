package controllers

import (
	"net/http"
	"testing"

	"github.com/Meera-417/VastraKart/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBannerRouter() *gin.Engine {
	router := newTestRouter()
	router.GET("/banners", ListBanners)
	router.POST("/banners", CreateBanner)
	router.PUT("/banners/:id", UpdateBanner)
	router.DELETE("/banners/:id", DeleteBanner)
	return router
}

func TestBannerLifecycle(t *testing.T) {
	db := setupTestDB(t)
	router := newBannerRouter()

	t.Run("create requires title and image", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/banners",
			map[string]interface{}{"title": "Wedding Season"}, nil)
		requireStatus(t, w, http.StatusBadRequest)
	})

	w := performJSON(t, router, http.MethodPost, "/banners", map[string]interface{}{
		"title":      "Wedding Season Sale",
		"image":      "https://cdn.example.com/banner.jpg",
		"link":       "/offers",
		"sort_order": 2,
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	var banner models.Banner
	require.NoError(t, db.First(&banner).Error)
	assert.True(t, banner.IsActive)

	w = performJSON(t, router, http.MethodPost, "/banners", map[string]interface{}{
		"title":      "New Arrivals",
		"image":      "https://cdn.example.com/banner2.jpg",
		"sort_order": 1,
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	t.Run("create inactive stays inactive", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/banners", map[string]interface{}{
			"title":     "Draft Banner",
			"image":     "https://cdn.example.com/draft.jpg",
			"is_active": false,
		}, nil)
		requireStatus(t, w, http.StatusCreated)

		var draft models.Banner
		require.NoError(t, db.Where("title = ?", "Draft Banner").First(&draft).Error)
		assert.False(t, draft.IsActive)
		require.NoError(t, db.Delete(&draft).Error)
	})

	t.Run("list follows sort order", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/banners", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		banners := data["banners"].([]interface{})
		require.Len(t, banners, 2)
		assert.Equal(t, "New Arrivals", banners[0].(map[string]interface{})["title"])
	})

	t.Run("update can deactivate", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/banners/1", map[string]interface{}{
			"title":     "Wedding Season Sale",
			"image":     "https://cdn.example.com/banner.jpg",
			"is_active": false,
		}, nil)
		requireStatus(t, w, http.StatusOK)

		var updated models.Banner
		require.NoError(t, db.First(&updated, 1).Error)
		assert.False(t, updated.IsActive)
	})

	t.Run("delete", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/banners/1", nil, nil)
		requireStatus(t, w, http.StatusOK)

		var count int64
		db.Model(&models.Banner{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})
}
