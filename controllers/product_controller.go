package controllers

import (
	"strconv"
	"strings"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductRequest is the admin create/update payload for a product.
type ProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Handle       string   `json:"handle"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" binding:"required"`
	ComparePrice *float64 `json:"compare_price"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Tags         []string `json:"tags"`
	Stock        *int     `json:"stock"`
	SKU          string   `json:"sku"`
	Featured     bool     `json:"featured"`
	IsAvailable  *bool    `json:"is_available"`
	Images       []string `json:"images"`
}

// ListProducts returns available products, newest first, with optional
// category/featured filters and limit/offset pagination.
func ListProducts(c *gin.Context) {
	db := config.DB
	query := db.Model(&models.Product{}).Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Error fetching products", nil)
		return
	}

	page := utils.NewLimitOffset(c)
	var products []models.Product
	if err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Error fetching products", nil)
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products":   products,
		"pagination": page.Envelope(total),
	})
}

// GetProduct returns one product by id
func GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}
	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

// CreateProduct adds a product to the catalog
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product request: %v", err)
		utils.BadRequest(c, "Missing required fields: name and price are required", err.Error())
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "uncategorized"
	}

	product := models.Product{
		Name:         req.Name,
		Handle:       req.Handle,
		Description:  req.Description,
		SellingPrice: *req.Price,
		ComparePrice: req.ComparePrice,
		Category:     category,
		Subcategory:  req.Subcategory,
		Tags:         strings.Join(req.Tags, ","),
		SKU:          req.SKU,
		Featured:     req.Featured,
		IsAvailable:  true,
		CreatedBy:    adminEmail(c),
		Images:       buildProductImages(req.Images),
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Error creating product", nil)
		return
	}

	utils.LogInfo("Product %d created: %s", product.ID, product.Name)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct edits an existing product. Submitted images replace the
// current set.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product update request: %v", err)
		utils.BadRequest(c, "Missing required fields: name and price are required", err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		product.Name = req.Name
		product.Description = req.Description
		product.SellingPrice = *req.Price
		product.ComparePrice = req.ComparePrice
		if req.Handle != "" {
			product.Handle = req.Handle
		}
		if req.Category != "" {
			product.Category = req.Category
		}
		product.Subcategory = req.Subcategory
		product.Tags = strings.Join(req.Tags, ",")
		product.SKU = req.SKU
		product.Featured = req.Featured
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.IsAvailable != nil {
			product.IsAvailable = *req.IsAvailable
		}
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		if req.Images != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for i, url := range req.Images {
				img := models.ProductImage{ProductID: product.ID, URL: url, Position: i}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Error updating product", nil)
		return
	}

	config.DB.Preload("Images").First(&product, product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct removes a product and its images. Order items keep their
// snapshots, so history is unaffected.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Error deleting product", nil)
		return
	}

	utils.LogInfo("Product %d deleted", product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}

// SearchProducts does a case-insensitive substring search over name,
// description, category and subcategory of available products.
func SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.Success(c, "Search results", gin.H{"products": []models.Product{}})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var products []models.Product
	if err := config.DB.
		Where("is_available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(subcategory) LIKE ?",
			pattern, pattern, pattern, pattern).
		Preload("Images").
		Order("created_at DESC").
		Limit(10).
		Find(&products).Error; err != nil {
		utils.LogError("Search failed for query %q: %v", q, err)
		utils.InternalServerError(c, "Search failed", nil)
		return
	}

	utils.Success(c, "Search results", gin.H{"products": products})
}

// ListTrendingProducts returns the newest available products. The ranking
// is recency, not engagement; there is no signal to rank on.
func ListTrendingProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.
		Where("is_available = ?", true).
		Preload("Images").
		Order("created_at DESC").
		Limit(10).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch trending products: %v", err)
		utils.InternalServerError(c, "Error fetching trending products", nil)
		return
	}

	utils.Success(c, "Trending products retrieved successfully", gin.H{"products": products})
}

func buildProductImages(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.ProductImage{URL: url, Position: i})
	}
	return images
}

func adminEmail(c *gin.Context) string {
	if adminVal, exists := c.Get("admin"); exists {
		if admin, ok := adminVal.(models.Admin); ok {
			return admin.Email
		}
	}
	return ""
}
