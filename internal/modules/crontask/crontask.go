package crontask

import (
	"github.com/gin-gonic/gin"
	pkgcron "github.com/hjstudio/core/internal/pkg/cron"
	"github.com/hjstudio/core/internal/pkg/response"
)

// Handler wraps the scheduler for HTTP access.
type Handler struct {
	sched *pkgcron.Scheduler
}

func NewHandler(sched *pkgcron.Scheduler) *Handler {
	return &Handler{sched: sched}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	g := rg.Group("/cron-task", gateMW)
	g.GET("", h.list)
	g.POST("/:name/run", h.run)
}

// GET /cron-task lists all jobs with their last run state.
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.sched.List())
}

// POST /cron-task/:name/run triggers a job without waiting for it.
func (h *Handler) run(c *gin.Context) {
	if err := h.sched.Run(c.Request.Context(), c.Param("name")); err != nil {
		response.NotFoundMsg(c, "job not found")
		return
	}
	response.OK(c, gin.H{"message": "job triggered"})
}
