package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Meera-417/VastraKart/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductRouter() *gin.Engine {
	router := newTestRouter()
	router.GET("/products", ListProducts)
	router.GET("/products/:id", GetProduct)
	router.GET("/search", SearchProducts)
	router.GET("/trending", ListTrendingProducts)
	router.POST("/products", CreateProduct)
	router.PUT("/products/:id", UpdateProduct)
	router.DELETE("/products/:id", DeleteProduct)
	return router
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, available bool, createdAt time.Time) models.Product {
	t.Helper()
	product := models.Product{
		Name:         name,
		Description:  "Handwoven " + name,
		SellingPrice: 1499,
		Category:     category,
		Stock:        10,
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Model(&product).UpdateColumn("created_at", createdAt).Error)
	return product
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	body := map[string]interface{}{
		"name":        "Banarasi Silk Saree",
		"description": "Pure silk with zari work",
		"price":       4999.0,
		"category":    "sarees",
		"tags":        []string{"silk", "wedding"},
		"stock":       5,
		"featured":    true,
		"images":      []string{"https://cdn.example.com/saree-1.jpg", "https://cdn.example.com/saree-2.jpg"},
	}
	w := performJSON(t, router, http.MethodPost, "/products", body, nil)
	requireStatus(t, w, http.StatusCreated)

	var product models.Product
	require.NoError(t, db.Preload("Images").First(&product).Error)
	assert.Equal(t, "Banarasi Silk Saree", product.Name)
	assert.Equal(t, "banarasi-silk-saree", product.Handle)
	assert.Equal(t, 4999.0, product.SellingPrice)
	assert.Equal(t, "silk,wedding", product.Tags)
	assert.True(t, product.IsAvailable)
	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].Position)
	assert.Equal(t, 1, product.Images[1].Position)
}

func TestCreateProduct_UnavailableStaysUnavailable(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	body := map[string]interface{}{
		"name":         "Archive Saree",
		"price":        999.0,
		"is_available": false,
	}
	w := performJSON(t, router, http.MethodPost, "/products", body, nil)
	requireStatus(t, w, http.StatusCreated)

	var product models.Product
	require.NoError(t, db.First(&product).Error)
	assert.False(t, product.IsAvailable)

	// An unavailable product never surfaces on the storefront.
	w = performJSON(t, router, http.MethodGet, "/products", nil, nil)
	requireStatus(t, w, http.StatusOK)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["products"].([]interface{}), 0)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	setupTestDB(t)
	router := newProductRouter()

	w := performJSON(t, router, http.MethodPost, "/products", map[string]interface{}{"name": "No price"}, nil)
	requireStatus(t, w, http.StatusBadRequest)

	w = performJSON(t, router, http.MethodPost, "/products", map[string]interface{}{"price": 100.0}, nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestListProducts_FiltersAndPagination(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	now := time.Now()
	seedProduct(t, db, "Kanjivaram Saree", "sarees", true, now.Add(-3*time.Hour))
	seedProduct(t, db, "Anarkali Kurta", "kurtas", true, now.Add(-2*time.Hour))
	seedProduct(t, db, "Chikankari Kurta", "kurtas", true, now.Add(-1*time.Hour))
	seedProduct(t, db, "Discontinued Lehenga", "lehengas", false, now)

	t.Run("hides unavailable products", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/products", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		products := data["products"].([]interface{})
		assert.Len(t, products, 3)
	})

	t.Run("category filter", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/products?category=kurtas", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		products := data["products"].([]interface{})
		require.Len(t, products, 2)
		// Newest first.
		assert.Equal(t, "Chikankari Kurta", products[0].(map[string]interface{})["name"])
	})

	t.Run("pagination envelope", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/products?limit=2&offset=2", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Len(t, data["products"].([]interface{}), 1)

		pagination := data["pagination"].(map[string]interface{})
		assert.EqualValues(t, 3, pagination["total"])
		assert.Equal(t, false, pagination["has_more"])
	})
}

func TestSearchProducts(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	now := time.Now()
	seedProduct(t, db, "Banarasi Silk Saree", "sarees", true, now.Add(-2*time.Hour))
	seedProduct(t, db, "Cotton Kurta", "kurtas", true, now.Add(-1*time.Hour))
	seedProduct(t, db, "Hidden Silk Dupatta", "dupattas", false, now)

	t.Run("case-insensitive name match", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/search?q=SILK", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		products := data["products"].([]interface{})
		// The unavailable dupatta never surfaces.
		require.Len(t, products, 1)
		assert.Equal(t, "Banarasi Silk Saree", products[0].(map[string]interface{})["name"])
	})

	t.Run("category match", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/search?q=kurtas", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Len(t, data["products"].([]interface{}), 1)
	})

	t.Run("empty query returns empty list", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/search", nil, nil)
		requireStatus(t, w, http.StatusOK)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Len(t, data["products"].([]interface{}), 0)
	})
}

func TestListTrendingProducts_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	now := time.Now()
	for i := 0; i < 12; i++ {
		available := i != 0
		seedProduct(t, db, fmt.Sprintf("Saree %d", i), "sarees", available, now.Add(time.Duration(i)*time.Minute))
	}

	w := performJSON(t, router, http.MethodGet, "/trending", nil, nil)
	requireStatus(t, w, http.StatusOK)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 10)

	// Recency ranking: ids descend with creation time.
	first := products[0].(map[string]interface{})["id"].(float64)
	last := products[9].(map[string]interface{})["id"].(float64)
	assert.Greater(t, first, last)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	router := newProductRouter()

	product := seedProduct(t, db, "Phulkari Dupatta", "dupattas", true, time.Now())
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, URL: "https://cdn.example.com/old.jpg"}).Error)

	t.Run("update replaces fields and images", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Phulkari Dupatta",
			"price":        1799.0,
			"stock":        3,
			"is_available": false,
			"images":       []string{"https://cdn.example.com/new.jpg"},
		}
		w := performJSON(t, router, http.MethodPut, "/products/1", body, nil)
		requireStatus(t, w, http.StatusOK)

		var updated models.Product
		require.NoError(t, db.Preload("Images").First(&updated, product.ID).Error)
		assert.Equal(t, 1799.0, updated.SellingPrice)
		assert.Equal(t, 3, updated.Stock)
		assert.False(t, updated.IsAvailable)
		require.Len(t, updated.Images, 1)
		assert.Equal(t, "https://cdn.example.com/new.jpg", updated.Images[0].URL)
	})

	t.Run("delete removes product and images", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/products/1", nil, nil)
		requireStatus(t, w, http.StatusOK)

		var count int64
		db.Model(&models.Product{}).Count(&count)
		assert.EqualValues(t, 0, count)
		db.Model(&models.ProductImage{}).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/products/99", nil, nil)
		requireStatus(t, w, http.StatusNotFound)
	})
}
