package controller

import (
	"net/http"

	"workload_survey/internal/model"
	"workload_survey/internal/service"
	"workload_survey/internal/survey"
	"workload_survey/internal/util"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	State    *service.StateService
	Sessions *service.SessionService
}

func NewSurveyController(state *service.StateService, sessions *service.SessionService) *SurveyController {
	return &SurveyController{State: state, Sessions: sessions}
}

type sessionView struct {
	ID string `json:"id"`
	survey.State
	Response *model.Response `json:"response,omitempty"`
}

// @Summary Welcome text
// @Tags survey
// @Produce json
// @Success 200 {object} util.Response
// @Router /welcome [get]
func (c *SurveyController) Welcome(ctx *gin.Context) {
	util.Success(ctx, gin.H{"welcomeText": c.State.WelcomeText()})
}

// @Summary Configured questions
// @Tags survey
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *SurveyController) Questions(ctx *gin.Context) {
	util.Success(ctx, c.State.Questions())
}

// @Summary Search the roster
// @Description Case-insensitive substring match with Turkish casing rules
// @Tags survey
// @Produce json
// @Param q query string false "search text"
// @Success 200 {object} util.Response
// @Router /personnel [get]
func (c *SurveyController) SearchPersonnel(ctx *gin.Context) {
	util.Success(ctx, c.State.SearchPersonnel(ctx.Query("q")))
}

// @Summary Start a survey session
// @Tags survey
// @Produce json
// @Success 201 {object} util.Response
// @Router /sessions [post]
func (c *SurveyController) CreateSession(ctx *gin.Context) {
	id, st := c.Sessions.Create()
	util.Created(ctx, sessionView{ID: id, State: st})
}

// @Summary Session state
// @Tags survey
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /sessions/{id} [get]
func (c *SurveyController) GetSession(ctx *gin.Context) {
	id := ctx.Param("id")
	st, err := c.Sessions.State(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessionView{ID: id, State: st})
}

// @Summary Choose the respondent
// @Tags survey
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body object true "{\"personnelName\": \"...\"}"
// @Success 200 {object} util.Response
// @Router /sessions/{id}/personnel [put]
func (c *SurveyController) SelectPersonnel(ctx *gin.Context) {
	var req struct {
		PersonnelName string `json:"personnelName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := ctx.Param("id")
	st, err := c.Sessions.SelectPersonnel(id, req.PersonnelName)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessionView{ID: id, State: st})
}

// @Summary Rate items of the current step
// @Tags survey
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body object true "{\"ratings\": [{\"itemId\": \"1a_t70\", \"value\": 4}]}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /sessions/{id}/ratings [put]
func (c *SurveyController) Rate(ctx *gin.Context) {
	var req struct {
		Ratings []service.Rating `json:"ratings" binding:"required,min=1,dive"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := ctx.Param("id")
	st, err := c.Sessions.Rate(id, req.Ratings)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessionView{ID: id, State: st})
}

// @Summary Advance the session
// @Description Validates the current step; leaving the last question submits the survey
// @Tags survey
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /sessions/{id}/next [post]
func (c *SurveyController) Next(ctx *gin.Context) {
	id := ctx.Param("id")
	st, resp, err := c.Sessions.Next(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if resp != nil {
		ctx.JSON(http.StatusCreated, util.Response{
			Code:    http.StatusCreated,
			Message: "submitted",
			Data:    sessionView{ID: id, State: st, Response: resp},
		})
		return
	}
	util.Success(ctx, sessionView{ID: id, State: st})
}

// @Summary Go back one step
// @Description From the identity step the session is closed
// @Tags survey
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Router /sessions/{id}/back [post]
func (c *SurveyController) Back(ctx *gin.Context) {
	id := ctx.Param("id")
	st, err := c.Sessions.Back(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessionView{ID: id, State: st})
}
