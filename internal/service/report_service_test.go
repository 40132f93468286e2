package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"workload_survey/internal/config"
	"workload_survey/internal/model"
	"workload_survey/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReports(t *testing.T) (*service.ReportService, string) {
	t.Helper()
	data := smallData()
	data.Responses = []model.Response{{ID: "r1", PersonnelName: "Ali", Scores: map[string]int{"1a_x": 5, "2a_x": 5}, TotalScore: 100}}
	state, _, _ := newState(t, data)

	dir := t.TempDir()
	storage := service.NewStorageService(&config.StorageConfig{Type: "local", LocalPath: dir})
	reports := service.NewReportService(state, storage, []model.Aircraft{{Label: "X", IDSuffix: "x"}})
	return reports, dir
}

func TestReportService_Summary(t *testing.T) {
	reports, _ := newReports(t)
	s := reports.Summary()
	assert.Equal(t, 100, s.ReferenceScore)
	require.Len(t, s.Units, 1)
	assert.Equal(t, 1, s.Units[0].Participants)
	assert.Equal(t, "100.0", s.Units[0].IntensityRatio)
}

func TestReportService_ExportAndArchive(t *testing.T) {
	reports, dir := newReports(t)

	var buf bytes.Buffer
	name, contentType, err := reports.Export(service.ExportSummary, &buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "Dinamik_Analiz_Raporu_"))
	assert.Equal(t, "application/msword", contentType)
	assert.Contains(t, buf.String(), "%100.0")

	_, _, err = reports.Export("pdf", &buf)
	assert.ErrorIs(t, err, service.ErrUnknownExport)

	res, err := reports.Archive(context.Background(), service.ExportMatrix)
	require.NoError(t, err)
	wantName := "reports/Ayrintili_Rapor_Excel_" + time.Now().Format("02.01.2006") + ".xlsx"
	assert.Equal(t, wantName, res.Name)
	assert.Equal(t, "/exports/"+wantName, res.URL)

	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(wantName)))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
