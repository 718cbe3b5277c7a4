package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-dashboard/pkg/errors"
)

// processSubmitReq binds the command body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processListEventsReq binds the view query and resolves the date anchor.
// date accepts yyyy-MM-dd or a relative expression such as "tomorrow".
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	if req.Date == "" {
		return req, nil
	}

	anchor, err := h.parser.Parse(req.Date, h.clock())
	if err != nil {
		return req, errInvalidDate
	}
	req.anchor = anchor
	return req, nil
}
