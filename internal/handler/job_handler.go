package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job posting requests
type JobHandler struct {
	service service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService) *JobHandler {
	return &JobHandler{service: s}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), employerID, req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters model.JobFilters
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	if jobType := c.Query("job_type"); jobType != "" {
		switch jobType {
		case model.JobTypeFullTime, model.JobTypePartTime, model.JobTypeContract, model.JobTypeInternship:
			filters.JobType = &jobType
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job_type"})
			return
		}
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("Error getting job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	employerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	jobs, err := h.service.ListEmployerJobs(c.Request.Context(), employerID)
	if err != nil {
		log.Printf("Error listing employer jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// RegisterJobRoutes registers job routes. Listing and fetching single
// jobs are public; creating and the my-jobs view are employer-only.
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, authMW, employerMW gin.HandlerFunc) {
	rg.POST("/jobs", authMW, employerMW, h.CreateJob)
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/:id", h.GetJob)
	rg.GET("/my-jobs", authMW, employerMW, h.MyJobs)
}
