package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/apperr"
	"github.com/Jeremiahogingo/CarWash-Booking-System/internal/common/logger"
)

// HTTPHandler 服务目录的 HTTP 入口。
type HTTPHandler struct {
	catalog *Catalog
	log     logger.Logger
}

func NewHTTPHandler(catalog *Catalog, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, log: log}
}

// RegisterRoutes 注册 /api/services 路由。
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.POST("", h.Create)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}
}

func (h *HTTPHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *HTTPHandler) Get(c *gin.Context) {
	s, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *HTTPHandler) Create(c *gin.Context) {
	var in ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.abortWithError(c, apperr.Validation("invalid request body"))
		return
	}
	s, err := h.catalog.Create(c.Request.Context(), in)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *HTTPHandler) Update(c *gin.Context) {
	var in ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.abortWithError(c, apperr.Validation("invalid request body"))
		return
	}
	s, err := h.catalog.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *HTTPHandler) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) abortWithError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError && h.log != nil {
		h.log.Errorf("catalog handler error path=%s err=%v", c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error":   apperr.Kind(err),
		"message": err.Error(),
	})
}
