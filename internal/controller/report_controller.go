package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"workload_survey/internal/service"
	"workload_survey/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *service.ReportService
}

func NewReportController(reports *service.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// @Summary Unit summary
// @Description Reference score plus participants, rounded average and intensity ratio per aircraft
// @Tags report
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	util.Success(ctx, c.Reports.Summary())
}

// @Summary Dense report matrix
// @Tags report
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/reports/matrix [get]
func (c *ReportController) Matrix(ctx *gin.Context) {
	util.Success(ctx, c.Reports.Matrix())
}

// @Summary Download the matrix workbook
// @Tags report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /admin/reports/export/xlsx [get]
func (c *ReportController) ExportXLSX(ctx *gin.Context) {
	c.download(ctx, service.ExportMatrix)
}

// @Summary Download the summary document
// @Tags report
// @Produce application/msword
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /admin/reports/export/doc [get]
func (c *ReportController) ExportDoc(ctx *gin.Context) {
	c.download(ctx, service.ExportSummary)
}

func (c *ReportController) download(ctx *gin.Context, kind service.ExportKind) {
	var buf bytes.Buffer
	name, contentType, err := c.Reports.Export(kind, &buf)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", name, url.PathEscape(name)))
	ctx.Data(http.StatusOK, contentType, buf.Bytes())
}

// @Summary Archive an export to storage
// @Tags report
// @Produce json
// @Security ApiKeyAuth
// @Param kind query string true "xlsx or doc"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/reports/archive [post]
func (c *ReportController) Archive(ctx *gin.Context) {
	res, err := c.Reports.Archive(ctx.Request.Context(), service.ExportKind(ctx.Query("kind")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, res)
}
