package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles mock document generation requests
type DocumentHandler struct {
	service service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: s}
}

func (h *DocumentHandler) Generate(c *gin.Context) {
	jobSeekerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	document, err := h.service.Generate(c.Request.Context(), jobSeekerID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobIDRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID required for cover letter"})
		case errors.Is(err, service.ErrInvalidDocumentType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("Error generating document: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		}
		return
	}
	c.JSON(http.StatusOK, document)
}

// RegisterDocumentRoutes registers the document generation route
func (h *DocumentHandler) RegisterDocumentRoutes(rg *gin.RouterGroup, authMW, seekerMW gin.HandlerFunc) {
	rg.POST("/generate-document", authMW, seekerMW, h.Generate)
}
