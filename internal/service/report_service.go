package service

import (
	"bytes"
	"context"
	"io"
	"path"
	"time"

	"workload_survey/internal/export"
	"workload_survey/internal/model"
	"workload_survey/internal/scoring"
	"workload_survey/internal/util"
	"workload_survey/pkg/logger"

	"go.uber.org/zap"
)

type ExportKind string

const (
	ExportMatrix  ExportKind = "xlsx"
	ExportSummary ExportKind = "doc"
)

const archivePrefix = "reports"

// ArchiveResult points at an export stored by the storage provider.
type ArchiveResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ReportService computes the reports over a consistent snapshot of the live data.
type ReportService struct {
	state    *StateService
	storage  *StorageService
	aircraft []model.Aircraft
	now      func() time.Time
}

func NewReportService(state *StateService, storage *StorageService, aircraft []model.Aircraft) *ReportService {
	return &ReportService{
		state:    state,
		storage:  storage,
		aircraft: aircraft,
		now:      time.Now,
	}
}

func (s *ReportService) Summary() scoring.Summary {
	data := s.state.Snapshot()
	return scoring.Summarize(data.Questions, data.Responses, s.aircraft)
}

func (s *ReportService) Matrix() scoring.Matrix {
	data := s.state.Snapshot()
	return scoring.BuildMatrix(data.Questions, data.Responses, s.aircraft)
}

// Export renders the requested document into w and returns its file name and content type.
func (s *ReportService) Export(kind ExportKind, w io.Writer) (string, string, error) {
	day := s.now()
	switch kind {
	case ExportMatrix:
		if err := export.WriteMatrix(w, s.Matrix()); err != nil {
			return "", "", err
		}
		return export.MatrixFileName(day), util.MimeXLSX, nil
	case ExportSummary:
		if err := export.WriteSummary(w, s.Summary(), day); err != nil {
			return "", "", err
		}
		return export.SummaryFileName(day), util.MimeWord, nil
	}
	return "", "", ErrUnknownExport
}

// Archive renders an export and stores it under reports/ with the configured provider.
func (s *ReportService) Archive(ctx context.Context, kind ExportKind) (ArchiveResult, error) {
	var buf bytes.Buffer
	name, contentType, err := s.Export(kind, &buf)
	if err != nil {
		return ArchiveResult{}, err
	}
	key := path.Join(archivePrefix, name)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), contentType)
	if err != nil {
		return ArchiveResult{}, err
	}
	logger.Log.Info("Report archived", zap.String("name", key), zap.String("url", url))
	return ArchiveResult{Name: key, URL: url}, nil
}
