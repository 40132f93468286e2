package controller

import (
	"errors"
	"net/http"
	"time"

	"workload_survey/internal/model"
	"workload_survey/internal/service"
	"workload_survey/internal/survey"
	"workload_survey/internal/util"
	"workload_survey/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	State        *service.StateService
	Fetcher      service.Fetcher
	FetchTimeout time.Duration
}

func NewAdminController(state *service.StateService, fetcher service.Fetcher, fetchTimeout time.Duration) *AdminController {
	return &AdminController{State: state, Fetcher: fetcher, FetchTimeout: fetchTimeout}
}

// @Summary Full application data
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.AppData}
// @Router /admin/data [get]
func (c *AdminController) GetData(ctx *gin.Context) {
	util.Success(ctx, c.State.Snapshot())
}

// @Summary Roster
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/personnel [get]
func (c *AdminController) ListPersonnel(ctx *gin.Context) {
	util.Success(ctx, c.State.Personnel())
}

// @Summary Bulk add personnel
// @Description One name per line; blanks and names already on the roster are ignored
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{\"text\": \"Ad Soyad\\nAd Soyad\"}"
// @Success 200 {object} util.Response
// @Router /admin/personnel [post]
func (c *AdminController) AddPersonnel(ctx *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	added, err := c.State.AddPersonnel(req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if added == nil {
		added = []string{}
	}
	util.Success(ctx, gin.H{
		"added":     added,
		"personnel": c.State.Personnel(),
	})
}

// @Summary Remove a person from the roster
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param name path string true "exact name"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/personnel/{name} [delete]
func (c *AdminController) RemovePersonnel(ctx *gin.Context) {
	if err := c.State.RemovePersonnel(ctx.Param("name")); err != nil {
		if errors.Is(err, survey.ErrPersonnelNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
		respondError(ctx, err)
		return
	}
	util.Success(ctx, c.State.Personnel())
}

// @Summary Update section weights
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{\"weights\": [{\"sectionId\": \"1a\", \"weight\": 15}]}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/weights [put]
func (c *AdminController) UpdateWeights(ctx *gin.Context) {
	var req struct {
		Weights []model.SectionWeight `json:"weights" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	weights, err := c.State.UpdateWeights(req.Weights)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, weights)
}

// @Summary Update the welcome text
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{\"welcomeText\": \"...\"}"
// @Success 200 {object} util.Response
// @Router /admin/welcome [put]
func (c *AdminController) UpdateWelcome(ctx *gin.Context) {
	var req struct {
		WelcomeText string `json:"welcomeText" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.State.SetWelcomeText(req.WelcomeText)
	util.Success(ctx, gin.H{"welcomeText": req.WelcomeText})
}

// @Summary Response log
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Response}
// @Router /admin/responses [get]
func (c *AdminController) ListResponses(ctx *gin.Context) {
	util.Success(ctx, c.State.Responses())
}

// @Summary Re-sync from the remote store
// @Description Fetches the remote sheets once and merges them like at startup
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /admin/sync [post]
func (c *AdminController) Sync(ctx *gin.Context) {
	res, err := c.State.Bootstrap(ctx.Request.Context(), c.Fetcher, c.FetchTimeout)
	if err != nil {
		logger.Log.Warn("Manual remote sync failed", zap.Error(err))
		util.Error(ctx, http.StatusBadGateway, "remote sync failed: "+err.Error())
		return
	}
	util.Success(ctx, res)
}
