package scripts

import (
	"net/http"
	"strconv"

	"newsreel/models"
	"newsreel/srt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// loadOwnedScript fetches a script and verifies it belongs to the
// requesting user via its project.
func (h *Handler) loadOwnedScript(c *gin.Context) (*models.Script, bool) {
	scriptID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid script ID"})
		return nil, false
	}

	var script models.Script
	if err := h.DB.First(&script, scriptID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, false
	}

	userID := c.GetUint("user_id")
	var project models.Project
	if err := h.DB.First(&project, "id = ? AND user_id = ?", script.ProjectID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
		return nil, false
	}

	return &script, true
}

// GetScript returns one script with its sections and chunks (with
// clips) preloaded.
func (h *Handler) GetScript(c *gin.Context) {
	script, ok := h.loadOwnedScript(c)
	if !ok {
		return
	}

	if err := h.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Chunks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Chunks.Clips").
		First(script, script.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load script"})
		return
	}

	c.JSON(http.StatusOK, script)
}

// GetScriptChunks returns the script's annotated chunks.
func (h *Handler) GetScriptChunks(c *gin.Context) {
	script, ok := h.loadOwnedScript(c)
	if !ok {
		return
	}

	var chunks []models.Chunk
	if err := h.DB.Preload("Clips").
		Where("script_id = ?", script.ID).
		Order("position").
		Find(&chunks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chunks"})
		return
	}

	c.JSON(http.StatusOK, chunks)
}

// DownloadTranscript serves the normalized SRT transcript as plain
// text.
func (h *Handler) DownloadTranscript(c *gin.Context) {
	script, ok := h.loadOwnedScript(c)
	if !ok {
		return
	}

	if script.Transcript == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not ready"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transcript.srt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(script.Transcript))
}

// DownloadChunkTrack serves the chunked track (one SRT block per
// chunk) rebuilt from the stored chunks.
func (h *Handler) DownloadChunkTrack(c *gin.Context) {
	script, ok := h.loadOwnedScript(c)
	if !ok {
		return
	}

	var rows []models.Chunk
	if err := h.DB.Where("script_id = ?", script.ID).Order("position").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chunks"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chunks not ready"})
		return
	}

	chunks := make([]srt.Chunk, len(rows))
	for i, r := range rows {
		chunks[i] = srt.Chunk{Start: r.StartSec, End: r.EndSec, Text: r.Text}
	}

	c.Header("Content-Disposition", "attachment; filename=chunks.srt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(srt.RenderChunks(chunks)))
}
