package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// departmentHandler handles department requests.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

// registerDepartmentRoutes registers department routes. Reads need a
// session; mutations are admin-only.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	departments.GET("", h.listDepartments)

	admin := departments.Group("", middleware.RequireAdmin())
	{
		admin.POST("", h.createDepartment)
		admin.PUT("/:name", h.updateDepartment)
		admin.DELETE("/:name", h.deleteDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// createDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create department")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// updateDepartment godoc
// @Summary Rename a department
// @Description Renames a department. Employees referencing the old name are left unchanged.
// @Tags departments
// @Accept json
// @Produce json
// @Param name path string true "Department name"
// @Param department body dto.UpdateDepartmentRequest true "New name"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{name} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update department")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// deleteDepartment godoc
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param name path string true "Department name"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{name} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Param("name")); err != nil {
		respondServiceError(c, err, "Failed to delete department")
		return
	}
	c.Status(http.StatusNoContent)
}
