package controllers

import (
	"strconv"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryRequest is the admin create/update payload for a category.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	SortOrder   int    `json:"sort_order"`
}

// SubcategoryRequest is the payload for a subcategory under a category.
type SubcategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
}

// ListCategories returns all categories with their subcategories, in
// display order.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// GetCategory returns one category with subcategories
func GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.Preload("Subcategories").First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}
	utils.Success(c, "Category retrieved successfully", gin.H{"category": category})
}

// CreateCategory adds a category. Duplicate names or slugs are rejected
// with a conflict.
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid category request: %v", err)
		utils.BadRequest(c, "Missing required fields: name is required", err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Name)
	}

	var existing models.Category
	if err := config.DB.Where("name = ? OR slug = ?", req.Name, slug).First(&existing).Error; err == nil {
		utils.Conflict(c, "A category with this name or slug already exists", nil)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.LogInfo("Category %d created: %s", category.ID, category.Name)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory edits an existing category
func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields: name is required", err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = category.Slug
	}

	var conflict models.Category
	if err := config.DB.
		Where("(name = ? OR slug = ?) AND id <> ?", req.Name, slug, category.ID).
		First(&conflict).Error; err == nil {
		utils.Conflict(c, "A category with this name or slug already exists", nil)
		return
	}

	category.Name = req.Name
	category.Slug = slug
	category.Description = req.Description
	category.Image = req.Image
	category.Featured = req.Featured
	category.SortOrder = req.SortOrder

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory removes a category and its subcategories
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		utils.LogError("Failed to delete category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}
	utils.Success(c, "Category deleted successfully", nil)
}

// CreateSubcategory adds a subcategory under a category
func CreateSubcategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields: name is required", err.Error())
		return
	}

	subcategory := models.Subcategory{
		CategoryID: category.ID,
		Name:       req.Name,
		Slug:       req.Slug,
		SortOrder:  req.SortOrder,
	}
	if err := config.DB.Create(&subcategory).Error; err != nil {
		utils.LogError("Failed to create subcategory: %v", err)
		utils.InternalServerError(c, "Failed to create subcategory", nil)
		return
	}
	utils.Created(c, "Subcategory created successfully", gin.H{"subcategory": subcategory})
}

// UpdateSubcategory edits a subcategory
func UpdateSubcategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid subcategory ID", nil)
		return
	}

	var subcategory models.Subcategory
	if err := config.DB.First(&subcategory, id).Error; err != nil {
		utils.NotFound(c, "Subcategory not found")
		return
	}

	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields: name is required", err.Error())
		return
	}

	subcategory.Name = req.Name
	if req.Slug != "" {
		subcategory.Slug = req.Slug
	}
	subcategory.SortOrder = req.SortOrder

	if err := config.DB.Save(&subcategory).Error; err != nil {
		utils.LogError("Failed to update subcategory %d: %v", subcategory.ID, err)
		utils.InternalServerError(c, "Failed to update subcategory", nil)
		return
	}
	utils.Success(c, "Subcategory updated successfully", gin.H{"subcategory": subcategory})
}

// DeleteSubcategory removes a subcategory
func DeleteSubcategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid subcategory ID", nil)
		return
	}

	var subcategory models.Subcategory
	if err := config.DB.First(&subcategory, id).Error; err != nil {
		utils.NotFound(c, "Subcategory not found")
		return
	}

	if err := config.DB.Delete(&subcategory).Error; err != nil {
		utils.LogError("Failed to delete subcategory %d: %v", subcategory.ID, err)
		utils.InternalServerError(c, "Failed to delete subcategory", nil)
		return
	}
	utils.Success(c, "Subcategory deleted successfully", nil)
}
