package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"logquery/internal/features/filters"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionController struct {
	sessionService *SessionService
}

func (c *SessionController) RegisterRoutes(router *gin.RouterGroup) {
	sessionRoutes := router.Group("/sessions")

	sessionRoutes.POST("", c.CreateSession)
	sessionRoutes.DELETE("/:sessionId", c.CloseSession)
	sessionRoutes.GET("/:sessionId/filters", c.GetFilters)
	sessionRoutes.PUT("/:sessionId/filters", c.SetFilter)
	sessionRoutes.POST("/:sessionId/filters/reset", c.ResetFilters)
	sessionRoutes.GET("/:sessionId/params", c.GetParams)
	sessionRoutes.GET("/:sessionId/logs", c.GetLogs)
	sessionRoutes.GET("/:sessionId/table", c.GetTable)
}

// CreateSession
// @Summary Open viewer session
// @Description Create a viewer with all filters empty. The initial fetch with no query parameters is issued immediately.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponseDTO
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	session := c.sessionService.CreateSession()

	ctx.JSON(http.StatusCreated, SessionResponseDTO{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		Filters:   session.FilterState.Get(),
	})
}

// CloseSession
// @Summary Close viewer session
// @Description Stop the session's pending fetches and forget it
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionId} [delete]
func (c *SessionController) CloseSession(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	if err := c.sessionService.CloseSession(sessionID); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

// GetFilters
// @Summary Get filter values
// @Description Current value of every filter field, empty string meaning unset
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} FiltersResponseDTO
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionId}/filters [get]
func (c *SessionController) GetFilters(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.GetFilters(sessionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SetFilter
// @Summary Change one filter field
// @Description Apply a user edit to one field. Text values are stored verbatim. Date values must be YYYY-MM-DD or empty and are stored as the UTC instant of local midnight.
// @Description Every accepted change triggers exactly one fetch. A rejected date leaves all filters unchanged and triggers no fetch.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Param request body SetFilterRequestDTO true "Field change"
// @Success 200 {object} FiltersResponseDTO
// @Failure 400 {object} map[string]string "Invalid date, unknown field or unknown input kind"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 429 {object} map[string]string "Too many filter changes"
// @Router /sessions/{sessionId}/filters [put]
func (c *SessionController) SetFilter(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var request SetFilterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.sessionService.SetFilter(sessionID, &request)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ResetFilters
// @Summary Reset all filters
// @Description Clear every field and trigger one fetch with no query parameters, even when nothing was set
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} FiltersResponseDTO
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 429 {object} map[string]string "Too many filter changes"
// @Router /sessions/{sessionId}/filters/reset [post]
func (c *SessionController) ResetFilters(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.ResetFilters(sessionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetParams
// @Summary Get derived query parameters
// @Description Query parameters derived from the current filters, with the encoded query string and the full log service URL
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} ParamsResponseDTO
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionId}/params [get]
func (c *SessionController) GetParams(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.GetParams(sessionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetLogs
// @Summary Get displayed records
// @Description Records of the latest applied fetch, plus pending and last error state
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} logs_querying.ViewState
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionId}/logs [get]
func (c *SessionController) GetLogs(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.GetView(sessionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTable
// @Summary Get rendered table
// @Description Displayed records rendered as table rows, one per record in response order
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID (UUID format)"
// @Success 200 {object} logs_rendering.TableResponseDTO
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionId}/table [get]
func (c *SessionController) GetTable(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.GetTable(sessionID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *SessionController) parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("sessionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, false
	}

	return sessionID, true
}

func (c *SessionController) handleError(ctx *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Code == ErrorRateLimitExceeded {
			ctx.Header("Retry-After", strconv.Itoa(max(validationErr.RetryAfterSec, 1)))
		}

		ctx.JSON(c.getStatusCodeForValidationError(validationErr.Code), gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	if code := filters.ErrorCode(err); code != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  code,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
}

func (c *SessionController) getStatusCodeForValidationError(errorCode string) int {
	switch errorCode {
	case ErrorSessionNotFound:
		return http.StatusNotFound
	case ErrorRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}
