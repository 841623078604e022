package projects

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"newsreel/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{DB: db, Redis: rdb}
}

type CreateProjectRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Description  string `json:"description"`
	Language     string `json:"language"`
	VideosPerDay int    `json:"videos_per_day" binding:"required,min=1,max=3"`
}

type ProjectCreatedMessage struct {
	ProjectID    uint `json:"project_id"`
	VideosPerDay int  `json:"videos_per_day"`
}

func (h *Handler) CreateProject(c *gin.Context) {
	userID := c.GetUint("user_id")
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		UserID:       userID,
		Topic:        req.Topic,
		Description:  req.Description,
		Language:     req.Language,
		VideosPerDay: req.VideosPerDay,
	}
	if project.Language == "" {
		project.Language = "en"
	}

	if err := h.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	// Let the scheduler pick up the new project
	message := ProjectCreatedMessage{
		ProjectID:    project.ID,
		VideosPerDay: project.VideosPerDay,
	}
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling json: %v", err)
	} else {
		err := h.Redis.Publish(c.Request.Context(), "project_created", payload).Err()
		if err != nil {
			log.Printf("Error publishing to redis: %v", err)
		}
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) GetUserProjects(c *gin.Context) {
	userID := c.GetUint("user_id")
	var projects []models.Project
	if err := h.DB.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProjectScripts(c *gin.Context) {
	projectIDStr := c.Param("id")
	projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	userID := c.GetUint("user_id")

	// First, verify the project belongs to the user
	var project models.Project
	if err := h.DB.First(&project, "id = ? AND user_id = ?", projectID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var scripts []models.Script
	if err := h.DB.Where("project_id = ?", projectID).Find(&scripts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scripts"})
		return
	}

	c.JSON(http.StatusOK, scripts)
}
