package controllers

import (
	"strconv"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/Meera-417/VastraKart/utils"
	"github.com/gin-gonic/gin"
)

// BannerRequest is the admin create/update payload for a banner.
type BannerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	ImageID     string `json:"image_id"`
	ImageName   string `json:"image_name"`
	Link        string `json:"link"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// ListBanners returns all banners in display order
func ListBanners(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Order("sort_order ASC").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Error fetching banners", nil)
		return
	}
	utils.Success(c, "Banners retrieved successfully", gin.H{"banners": banners})
}

// CreateBanner adds a promotional banner
func CreateBanner(c *gin.Context) {
	utils.LogInfo("CreateBanner called")

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid banner request: %v", err)
		utils.BadRequest(c, "Missing required fields: title and image are required", err.Error())
		return
	}

	banner := models.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		ImageID:     req.ImageID,
		ImageName:   req.ImageName,
		Link:        req.Link,
		IsActive:    true,
		SortOrder:   req.SortOrder,
		CreatedBy:   adminEmail(c),
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Error creating banner", nil)
		return
	}

	utils.LogInfo("Banner %d created: %s", banner.ID, banner.Title)
	utils.Created(c, "Banner created successfully", gin.H{"banner": banner})
}

// UpdateBanner edits an existing banner
func UpdateBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, id).Error; err != nil {
		utils.NotFound(c, "Banner not found")
		return
	}

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields: title and image are required", err.Error())
		return
	}

	banner.Title = req.Title
	banner.Description = req.Description
	banner.Image = req.Image
	banner.ImageID = req.ImageID
	banner.ImageName = req.ImageName
	banner.Link = req.Link
	banner.SortOrder = req.SortOrder
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&banner).Error; err != nil {
		utils.LogError("Failed to update banner %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Error updating banner", nil)
		return
	}
	utils.Success(c, "Banner updated successfully", gin.H{"banner": banner})
}

// DeleteBanner removes a banner
func DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, id).Error; err != nil {
		utils.NotFound(c, "Banner not found")
		return
	}

	if err := config.DB.Delete(&banner).Error; err != nil {
		utils.LogError("Failed to delete banner %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Error deleting banner", nil)
		return
	}
	utils.Success(c, "Banner deleted successfully", nil)
}
