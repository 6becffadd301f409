package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestHandler handles item-request submission and review.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
}

func newRequestHandler(rs portssvc.RequestSvcFacade) *requestHandler {
	return &requestHandler{requestService: rs}
}

// registerRequestRoutes registers the request routes. Owners see their own
// requests; the full listing and status decisions are admin-only.
func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade) {
	h := newRequestHandler(requestService)

	requests := rg.Group("/requests")
	{
		requests.GET("", h.listOwnRequests)
		requests.POST("", h.submitRequest)
	}

	admin := requests.Group("", middleware.RequireAdmin())
	{
		admin.GET("/all", h.listAllRequests)
		admin.PUT("/:requestID/status", h.updateRequestStatus)
	}
}

// listOwnRequests godoc
// @Summary List own requests
// @Description Returns the requests owned by the session account.
// @Tags requests
// @Produce json
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *requestHandler) listOwnRequests(c *gin.Context) {
	session, ok := middleware.GetSessionAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requests, err := h.requestService.ListRequestsForOwner(c.Request.Context(), session.Email)
	if err != nil {
		respondServiceError(c, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRequestsResponse(requests))
}

// submitRequest godoc
// @Summary Submit an item request
// @Description Creates a Pending request owned by the session account. Only user-role accounts submit.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Request form"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "No valid items"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	session, ok := middleware.GetSessionAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.requestService.SubmitRequest(c.Request.Context(), req, *session)
	if err != nil {
		respondServiceError(c, err, "Failed to submit request")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Request submitted",
		slog.String("request_id", request.RequestID), slog.Int("items", len(request.Items)))
	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

// listAllRequests godoc
// @Summary List all requests
// @Description Returns every request for admin review.
// @Tags requests
// @Produce json
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/all [get]
func (h *requestHandler) listAllRequests(c *gin.Context) {
	requests, err := h.requestService.ListAllRequests(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRequestsResponse(requests))
}

// updateRequestStatus godoc
// @Summary Approve or reject a request
// @Description Applies a status transition. Only Pending requests transition, and only to Approved or Rejected.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param status body dto.UpdateRequestStatusRequest true "Decision"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse "Illegal transition"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{requestID}/status [put]
func (h *requestHandler) updateRequestStatus(c *gin.Context) {
	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.requestService.UpdateRequestStatus(c.Request.Context(), c.Param("requestID"), req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update request status")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Request status updated",
		slog.String("request_id", request.RequestID), slog.String("status", string(request.Status)))
	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}
