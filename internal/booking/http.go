package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/apperr"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/logger"
)

// HTTPHandler 预约工作流的 HTTP 入口。
type HTTPHandler struct {
	svc *Service
	log logger.Logger
}

func NewHTTPHandler(svc *Service, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// RegisterRoutes 注册 /api/booking 路由。
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/booking")
	{
		api.POST("/create", h.Create)
		api.GET("/:id", h.Get)
		api.POST("/:id/rate", h.Rate)
		api.POST("/:id/confirm", h.Confirm)
	}
}

// Create 处理 POST /api/booking/create。
// 请求体示例：
//
//	{
//	  "service": { "id": "..." },
//	  "vehicle": { "plateNumber": "KBD123", "type": "SUV" },
//	  "bookingTime": "2025-01-20T10:00:00Z"
//	}
func (h *HTTPHandler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.abortWithError(c, apperr.Validation("invalid request body"))
		return
	}
	b, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Get 处理 GET /api/booking/:id。
func (h *HTTPHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Rate 处理 POST /api/booking/:id/rate?rating=N。
func (h *HTTPHandler) Rate(c *gin.Context) {
	rating, err := strconv.Atoi(c.Query("rating"))
	if err != nil {
		h.abortWithError(c, apperr.Validation("rating must be an integer"))
		return
	}
	b, err := h.svc.Rate(c.Request.Context(), c.Param("id"), rating)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Confirm 处理 POST /api/booking/:id/confirm。
func (h *HTTPHandler) Confirm(c *gin.Context) {
	b, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *HTTPHandler) abortWithError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError && h.log != nil {
		h.log.Errorf("booking handler error path=%s err=%v", c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error":   apperr.Kind(err),
		"message": err.Error(),
	})
}
