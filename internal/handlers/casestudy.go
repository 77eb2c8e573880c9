package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/folio-dev/folio/db"
	"github.com/folio-dev/folio/internal/models"
	"github.com/folio-dev/folio/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CaseStudyRequest struct {
	Title             string         `json:"title" binding:"required"`
	Vision            string         `json:"vision" binding:"required"`
	Problem           string         `json:"problem" binding:"required"`
	PlannedFeatures   datatypes.JSON `json:"plannedFeatures"`
	ArchitectureNotes datatypes.JSON `json:"architectureNotes"`
	Challenges        datatypes.JSON `json:"challenges"`
	Media             datatypes.JSON `json:"media"`
	Status            string         `json:"status"`
	SortOrder         int            `json:"sortOrder"`
}

func (body *CaseStudyRequest) apply(item *models.CaseStudy) {
	item.Title = body.Title
	item.Vision = body.Vision
	item.Problem = body.Problem
	item.PlannedFeatures = body.PlannedFeatures
	item.ArchitectureNotes = body.ArchitectureNotes
	item.Challenges = body.Challenges
	item.Media = body.Media
	if body.Status != "" {
		item.Status = body.Status
	}
	item.SortOrder = body.SortOrder
}

func GetMyCaseStudies(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var items []models.CaseStudy

	if err := db.DB.Where("user_id = ?", userID).Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
		log.Printf("Failed to list case studies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve case studies"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func CreateCaseStudy(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CaseStudyRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.CaseStudy{UserID: userID}
	body.apply(&item)

	if err := db.DB.Create(&item).Error; err != nil {
		log.Printf("Failed to create case study: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case study"})
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func UpdateCaseStudy(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CaseStudyRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var item models.CaseStudy
	itemID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		} else {
			log.Printf("Failed to fetch case study: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve case study"})
		}
		return
	}

	body.apply(&item)

	if err := db.DB.Save(&item).Error; err != nil {
		log.Printf("Failed to update case study: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case study"})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func DeleteCaseStudy(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var item models.CaseStudy
	itemID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		} else {
			log.Printf("Failed to fetch case study: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve case study"})
		}
		return
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		log.Printf("Failed to delete case study: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case study"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// GetPublicCaseStudies serves every case study of the owner. Unlike
// projects there is no visibility flag on case studies.
func GetPublicCaseStudies(ctx *gin.Context) {
	owner, err := utils.FindOwnerUser()

	if err != nil {
		if errors.Is(err, utils.ErrOwnerNotConfigured) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Owner not configured"})
		} else {
			log.Printf("Failed to resolve owner: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var items []models.CaseStudy

	err = db.DB.
		Where("user_id = ?", owner.ID).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error

	if err != nil {
		log.Printf("Failed to list public case studies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve case studies"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}
