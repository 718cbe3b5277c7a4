package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-dashboard/pkg/errors"
	"personal-dashboard/pkg/response"
)

func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.List(c.Request.Context())))
}

func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest)
		return
	}

	item, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTodoResp(item))
}

func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.Toggle(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "todo.delivery.http.Toggle: uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(item))
}

func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Remove(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "todo.delivery.http.Remove: uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
