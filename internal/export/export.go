// Package export renders the report matrix and the unit summary as downloadable documents.
package export

import (
	"fmt"
	"time"
)

const (
	dateLayout = "02.01.2006"

	MatrixFilePrefix  = "Ayrintili_Rapor_Excel_"
	SummaryFilePrefix = "Dinamik_Analiz_Raporu_"
)

// MatrixFileName is the workbook name for the given report date.
func MatrixFileName(t time.Time) string {
	return fmt.Sprintf("%s%s.xlsx", MatrixFilePrefix, t.Format(dateLayout))
}

// SummaryFileName is the Word document name for the given report date.
func SummaryFileName(t time.Time) string {
	return fmt.Sprintf("%s%s.doc", SummaryFilePrefix, t.Format(dateLayout))
}
