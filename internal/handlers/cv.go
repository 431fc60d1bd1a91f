package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/logger"
)

const cvUnavailableMessage = "CV will be available soon. Please contact me directly for now."

type CVHandler struct {
	cvService *services.CVService
}

func NewCVHandler(cvService *services.CVService) *CVHandler {
	return &CVHandler{
		cvService: cvService,
	}
}

// Download sends the CV as an attachment
func (h *CVHandler) Download(c *gin.Context) {
	if !h.probe(c) {
		return
	}
	c.FileAttachment(h.cvService.Path(), h.cvService.Filename())
}

// Head reports whether the CV can be downloaded
func (h *CVHandler) Head(c *gin.Context) {
	if !h.probe(c) {
		return
	}
	c.Status(http.StatusOK)
}

func (h *CVHandler) probe(c *gin.Context) bool {
	err := h.cvService.Probe()
	if err == nil {
		return true
	}

	if errors.Is(err, services.ErrCVNotFound) {
		c.String(http.StatusNotFound, h.cvService.MissingMessage())
		return false
	}

	logger.WithError(err).WithField("path", h.cvService.Path()).Error("Failed to probe CV")
	c.String(http.StatusServiceUnavailable, cvUnavailableMessage)
	return false
}
