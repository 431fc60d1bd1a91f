package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	exportService    *services.ExportService
	frameInterval    time.Duration
}

func NewPortfolioHandler(portfolioService *services.PortfolioService, exportService *services.ExportService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		exportService:    exportService,
		frameInterval:    render.DefaultFrameInterval,
	}
}

// Index renders the full page with every counter at its final value
func (h *PortfolioHandler) Index(c *gin.Context) {
	page := render.NewPage()
	result := h.portfolioService.Load(c.Request.Context(), page, render.FinalFrameAnimator{})

	data := gin.H{
		"Title":    "Portfolio",
		"Username": h.portfolioService.Username(),
		"Page":     page,
		"Live":     result.Final != services.StateFallback,
	}

	c.HTML(http.StatusOK, "index", data)
}

// Stream replays the page load as server-sent events. Counters animate
// frame by frame; a final "done" event carries the terminal state.
func (h *PortfolioHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events := make(chan render.Event, 32)
	target := render.NewStreamTarget(ctx, events)
	animator := render.NewCounterAnimator(h.frameInterval)
	defer animator.StopAll()

	var result *services.LoadResult
	go func() {
		defer close(events)
		result = h.portfolioService.Load(ctx, target, animator)
		animator.Wait()
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				c.SSEvent("done", gin.H{"state": result.Final})
				return false
			}
			c.SSEvent("region", ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// Snapshot returns the resolved snapshot as JSON
func (h *PortfolioHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.portfolioService.Resolve(c.Request.Context())
	if err != nil {
		h.badGateway(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Export downloads the resolved snapshot as a spreadsheet
func (h *PortfolioHandler) Export(c *gin.Context) {
	snapshot, err := h.portfolioService.Resolve(c.Request.Context())
	if err != nil {
		h.badGateway(c, err)
		return
	}

	data, err := h.exportService.Export(snapshot)
	if err != nil {
		logger.WithError(err).Error("Failed to build spreadsheet export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	filename := fmt.Sprintf("%s-portfolio.xlsx", h.portfolioService.Username())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *PortfolioHandler) badGateway(c *gin.Context, err error) {
	fields := logrus.Fields{"path": c.Request.URL.Path}
	status := 0
	var remoteErr *services.RemoteError
	if errors.As(err, &remoteErr) {
		status = remoteErr.StatusCode
		fields["upstream_status"] = status
	}
	logger.WithFields(fields).WithError(err).Warn("Failed to resolve portfolio data")

	body := gin.H{"error": "Failed to load data from GitHub"}
	if status != 0 {
		body["upstream_status"] = status
	}
	c.JSON(http.StatusBadGateway, body)
}
