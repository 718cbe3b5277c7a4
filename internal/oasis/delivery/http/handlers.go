package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-dashboard/pkg/errors"
	"personal-dashboard/pkg/response"
)

func (h *handler) State(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.State(c.Request.Context())))
}

func (h *handler) Water(c *gin.Context) {
	out, err := h.uc.Water(c.Request.Context())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(out))
}

func (h *handler) Nurture(c *gin.Context) {
	var req nurtureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest)
		return
	}

	out, err := h.uc.Nurture(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStateResp(out))
}
