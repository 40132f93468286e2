package controller

import (
	"context"
	"net/http"
	"time"

	"workload_survey/internal/util"

	"github.com/gin-gonic/gin"
)

// Pinger is the local snapshot store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Store        Pinger
	RemoteOnline func() bool
}

func NewHealthController(store Pinger, remoteOnline func() bool) *HealthController {
	return &HealthController{Store: store, RemoteOnline: remoteOnline}
}

// @Summary Health check
// @Description Reports the local store and whether remote sync is configured
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.Store.Ping(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Local store unavailable")
		return
	}

	remote := "offline"
	if c.RemoteOnline != nil && c.RemoteOnline() {
		remote = "configured"
	}
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store":  "up",
			"remote": remote,
		},
	})
}
