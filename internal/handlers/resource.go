package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-manager-api/internal/constants"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

// ResourceService is the CRUD surface shared by the user, task status,
// label and task services.
type ResourceService[D, C, U any] interface {
	List(ctx context.Context, page *utils.PaginationParams) ([]D, int64, error)
	Get(ctx context.Context, id uint64) (*D, error)
	Create(ctx context.Context, req C) (*D, error)
	Update(ctx context.Context, id uint64, req U) (*D, error)
	Delete(ctx context.Context, id uint64) error
}

// ResourceHandler serves the five CRUD endpoints of one resource. D is the
// response DTO, C the create request and U the partial update request.
type ResourceHandler[D, C, U any] struct {
	service ResourceService[D, C, U]
	log     *zap.Logger
}

func NewResourceHandler[D, C, U any](service ResourceService[D, C, U], log *zap.Logger) *ResourceHandler[D, C, U] {
	return &ResourceHandler[D, C, U]{service: service, log: log}
}

// Register mounts the handler on group.
func (h *ResourceHandler[D, C, U]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List returns every row, or one page when page/limit are given. The total
// is sent in X-Total-Count.
func (h *ResourceHandler[D, C, U]) List(c *gin.Context) {
	items, total, err := h.service.List(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Header(constants.HeaderTotalCount, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[D, C, U]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[D, C, U]) Create(c *gin.Context) {
	var req C
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update applies a partial update; fields missing from the body are kept.
func (h *ResourceHandler[D, C, U]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[D, C, U]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
