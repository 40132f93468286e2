package export

import (
	"fmt"
	"io"

	"workload_survey/internal/scoring"

	"github.com/xuri/excelize/v2"
)

const (
	MatrixSheet = "Rapor"
	// RatingSheet repeats the matrix layout with the raw 1-5 rating of every section.
	RatingSheet = "Ham Puanlar"
)

const (
	colorHeader = "15803D"
	colorUnit   = "166534"
)

// WriteMatrix writes the dense per-unit matrix: one banner row per aircraft followed by one
// row per response with each section's weighted contribution and the aircraft total. A second
// sheet carries the raw ratings behind those contributions.
func WriteMatrix(w io.Writer, m scoring.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MatrixSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeader}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	unitStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorUnit}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	scoreStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorUnit},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	header := make([]interface{}, 0, len(m.Columns)+3)
	header = append(header, "HAVA ARACI", "PERSONEL AD SOYAD")
	for _, c := range m.Columns {
		header = append(header, c.Header())
	}
	header = append(header, "TOPLAM PUAN")
	width := len(header)

	lastCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(MatrixSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(MatrixSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, unit := range m.Units {
		first := fmt.Sprintf("A%d", row)
		last := fmt.Sprintf("%s%d", lastCol, row)
		if err := f.SetCellValue(MatrixSheet, first, unit.Aircraft.Label+" BİRİMİ KAYITLARI"); err != nil {
			return err
		}
		if err := f.MergeCell(MatrixSheet, first, last); err != nil {
			return err
		}
		if err := f.SetCellStyle(MatrixSheet, first, last, unitStyle); err != nil {
			return err
		}
		row++

		for _, r := range unit.Rows {
			values := make([]interface{}, 0, width)
			values = append(values, unit.Aircraft.Label, r.PersonnelName)
			for _, cell := range r.Cells {
				values = append(values, cell.Contribution)
			}
			values = append(values, r.Total)

			start := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(MatrixSheet, start, &values); err != nil {
				return err
			}
			if err := f.SetCellStyle(MatrixSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%s%d", lastCol, row), scoreStyle); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(MatrixSheet, "A", "B", 22); err != nil {
		return err
	}
	if width > 2 {
		if err := f.SetColWidth(MatrixSheet, "C", lastCol, 18); err != nil {
			return err
		}
	}
	if err := f.SetPanes(MatrixSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}

	if err := writeRatings(f, m, headerStyle); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func writeRatings(f *excelize.File, m scoring.Matrix, headerStyle int) error {
	if _, err := f.NewSheet(RatingSheet); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(m.Columns)+2)
	header = append(header, "HAVA ARACI", "PERSONEL AD SOYAD")
	for _, c := range m.Columns {
		header = append(header, c.Header())
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(RatingSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(RatingSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, unit := range m.Units {
		for _, r := range unit.Rows {
			values := make([]interface{}, 0, len(header))
			values = append(values, unit.Aircraft.Label, r.PersonnelName)
			for _, cell := range r.Cells {
				values = append(values, cell.Rating)
			}
			if err := f.SetSheetRow(RatingSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return err
			}
			row++
		}
	}
	return f.SetColWidth(RatingSheet, "A", "B", 22)
}
