package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-api/internal/dto"
	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/response"
)

type classService interface {
	Create(ctx context.Context, actor models.Identity, req dto.CreateClassRequest) (*models.Class, error)
	AddStudent(ctx context.Context, actor models.Identity, classID string, req dto.AddStudentRequest) (*models.Class, error)
	Get(ctx context.Context, actor models.Identity, classID string) (*models.ClassDetail, error)
}

// ClassHandler exposes class management endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs the handler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /class [post]
func (h *ClassHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateClassRequest
	if !bindJSON(c, &req, "invalid class payload") {
		return
	}

	class, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, class, "Class created successfully")
}

// AddStudent godoc
// @Summary Enroll student
// @Description Append a student to a class owned by the caller
// @Tags Classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param payload body dto.AddStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /class/{id}/add-student [post]
func (h *ClassHandler) AddStudent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.AddStudentRequest
	if !bindJSON(c, &req, "invalid add student payload") {
		return
	}

	class, err := h.service.AddStudent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, class, "Student added to class successfully")
}

// Get godoc
// @Summary Class detail
// @Tags Classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /class/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}
