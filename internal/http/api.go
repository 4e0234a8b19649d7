package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"records-backend/internal/domain"
	"records-backend/internal/service"
	"records-backend/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	admins  service.AdminService
	records service.RecordService
	exports service.ExportService
	tokens  TokenVerifier
	logger  *logrus.Logger
}

func NewHandler(admins service.AdminService, records service.RecordService, exports service.ExportService, tokens TokenVerifier, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		admins:  admins,
		records: records,
		exports: exports,
		tokens:  tokens,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger), corsMiddleware())

	requireAdmin := authMiddleware(h.tokens, h.logger)

	api := router.Group("/api")
	{
		api.POST("/admin/login", h.login)
		api.POST("/admin/exports", requireAdmin, h.createExport)
		api.GET("/admin/exports", requireAdmin, h.listExports)

		api.GET("/students", h.listStudents)
		api.POST("/students", requireAdmin, h.createStudent)
		api.DELETE("/students/:enrollNumber", requireAdmin, h.deleteStudent)

		api.GET("/candidates", h.listCandidates)
		api.POST("/candidates", requireAdmin, h.createCandidate)
		api.DELETE("/candidates/:enrollNumber", requireAdmin, h.deleteCandidate)

		api.GET("/facility-charge", h.getFacilityCharge)
		api.POST("/facility-charge", requireAdmin, h.setFacilityCharge)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.admins.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
			return
		}
		h.logger.WithError(err).Error("admin login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) listStudents(c *gin.Context) {
	students, err := h.records.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *Handler) createStudent(c *gin.Context) {
	var req domain.Student
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.records.CreateStudent(c.Request.Context(), req)
	if err != nil {
		c.JSON(recordErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *Handler) deleteStudent(c *gin.Context) {
	if err := h.records.DeleteStudent(c.Request.Context(), c.Param("enrollNumber")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listCandidates(c *gin.Context) {
	candidates, err := h.records.ListCandidates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *Handler) createCandidate(c *gin.Context) {
	var req domain.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.records.CreateCandidate(c.Request.Context(), req)
	if err != nil {
		c.JSON(recordErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *Handler) deleteCandidate(c *gin.Context) {
	if err := h.records.DeleteCandidate(c.Request.Context(), c.Param("enrollNumber")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type facilityChargeRequest struct {
	Charge *float64 `json:"charge"`
}

func (h *Handler) getFacilityCharge(c *gin.Context) {
	charge, err := h.records.FacilityCharge(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"charge": charge})
}

func (h *Handler) setFacilityCharge(c *gin.Context) {
	var req facilityChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Charge == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "charge is required"})
		return
	}

	charge, err := h.records.SetFacilityCharge(c.Request.Context(), *req.Charge)
	if err != nil {
		c.JSON(recordErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"charge": charge})
}

func (h *Handler) createExport(c *gin.Context) {
	location, err := h.exports.Export(c.Request.Context())
	if err != nil {
		c.JSON(exportErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.logger.WithFields(logrus.Fields{
		"admin_id": AdminID(c),
		"location": location,
	}).Info("records exported")
	c.JSON(http.StatusCreated, gin.H{"location": location})
}

func (h *Handler) listExports(c *gin.Context) {
	objects, err := h.exports.ListExports(c.Request.Context())
	if err != nil {
		c.JSON(exportErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	resp := make([]StorageObjectResponse, len(objects))
	for i := range objects {
		resp[i] = objectToResponse(objects[i])
	}
	c.JSON(http.StatusOK, resp)
}

type StorageObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
}

func objectToResponse(obj storage.ObjectInfo) StorageObjectResponse {
	resp := StorageObjectResponse{
		Key:  obj.Key,
		Size: obj.Size,
	}
	if obj.LastModified != nil && !obj.LastModified.IsZero() {
		v := obj.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}

func recordErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDuplicateRecord):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func exportErrorStatus(err error) int {
	if errors.Is(err, service.ErrStorageNotConfigured) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
