package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles job application requests
type ApplicationHandler struct {
	service service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(s service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: s}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobSeekerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), jobSeekerID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, service.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already applied for this job"})
		default:
			log.Printf("Error creating application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		}
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	jobSeekerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	applications, err := h.service.ListSeekerApplications(c.Request.Context(), jobSeekerID)
	if err != nil {
		log.Printf("Error listing seeker applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	employerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	applications, err := h.service.ListJobApplications(c.Request.Context(), employerID, c.Param("job_id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			// Non-owners get the same response as a missing job
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found or unauthorized"})
			return
		}
		log.Printf("Error listing job applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// RegisterApplicationRoutes registers application routes
func (h *ApplicationHandler) RegisterApplicationRoutes(rg *gin.RouterGroup, authMW, seekerMW, employerMW gin.HandlerFunc) {
	rg.POST("/applications", authMW, seekerMW, h.Apply)
	rg.GET("/my-applications", authMW, seekerMW, h.MyApplications)
	rg.GET("/job-applications/:job_id", authMW, employerMW, h.JobApplications)
}
