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

type ProjectRequest struct {
	Title       string         `json:"title" binding:"required"`
	Problem     string         `json:"problem" binding:"required"`
	Solution    string         `json:"solution" binding:"required"`
	Stack       datatypes.JSON `json:"stack"`
	Features    datatypes.JSON `json:"features"`
	UXDecisions datatypes.JSON `json:"uxDecisions"`
	Links       datatypes.JSON `json:"links"`
	Media       datatypes.JSON `json:"media"`
	SortOrder   int            `json:"sortOrder"`
	Visibility  string         `json:"visibility" binding:"omitempty,oneof=public private"`
}

func (body *ProjectRequest) apply(project *models.Project) {
	project.Title = body.Title
	project.Problem = body.Problem
	project.Solution = body.Solution
	project.Stack = body.Stack
	project.Features = body.Features
	project.UXDecisions = body.UXDecisions
	project.Links = body.Links
	project.Media = body.Media
	project.SortOrder = body.SortOrder
	if body.Visibility != "" {
		project.Visibility = body.Visibility
	}
}

func GetMyProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := db.DB.Where("user_id = ?", userID).Order("sort_order ASC, created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := models.Project{UserID: userID}
	body.apply(&project)

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func UpdateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var project models.Project
	projectID := ctx.Param("id")

	// Scoping the lookup by owner is the access control: someone else's id
	// is indistinguishable from a missing one.
	if err := db.DB.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	body.apply(&project)

	if err := db.DB.Save(&project).Error; err != nil {
		log.Printf("Failed to update project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var project models.Project
	projectID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	if err := db.DB.Delete(&project).Error; err != nil {
		log.Printf("Failed to delete project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func GetPublicProjects(ctx *gin.Context) {
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

	var projects []models.Project

	err = db.DB.
		Where("user_id = ? AND visibility = ?", owner.ID, models.VisibilityPublic).
		Order("sort_order ASC, created_at DESC").
		Find(&projects).Error

	if err != nil {
		log.Printf("Failed to list public projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}
