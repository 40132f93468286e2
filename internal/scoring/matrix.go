package scoring

import (
	"fmt"

	"workload_survey/internal/model"
)

// Column describes one section column of the dense report matrix.
type Column struct {
	SectionID string `json:"sectionId"`
	Key       string `json:"key"` // question id + section label, e.g. "1a"
	Title     string `json:"title"`
	Weight    int    `json:"weight"`
}

// Header renders the column caption used by the exports.
func (c Column) Header() string {
	return fmt.Sprintf("%s (%s)", c.Key, c.Title)
}

// Cell is one section of one response for one aircraft.
type Cell struct {
	Rating       int `json:"rating"`
	Contribution int `json:"contribution"`
}

type Row struct {
	ResponseID    string `json:"responseId"`
	PersonnelName string `json:"personnelName"`
	Timestamp     string `json:"timestamp"`
	Cells         []Cell `json:"cells"`
	Total         int    `json:"total"`
}

type UnitBlock struct {
	Aircraft model.Aircraft `json:"aircraft"`
	Rows     []Row          `json:"rows"`
}

// Matrix is every (aircraft x response) pair with its per-section breakdown.
type Matrix struct {
	Columns []Column    `json:"columns"`
	Units   []UnitBlock `json:"units"`
}

// Columns lists the section columns in configuration order.
func Columns(questions []model.Question) []Column {
	cols := make([]Column, 0, model.SectionCount(questions))
	for _, q := range questions {
		for _, s := range q.Sections {
			cols = append(cols, Column{
				SectionID: s.ID,
				Key:       fmt.Sprintf("%d%s", q.ID, s.Label),
				Title:     s.Title,
				Weight:    s.SectionWeight,
			})
		}
	}
	return cols
}

// BuildMatrix groups the response rows by aircraft using the live section weights.
func BuildMatrix(questions []model.Question, responses []model.Response, aircraft []model.Aircraft) Matrix {
	cols := Columns(questions)
	m := Matrix{Columns: cols, Units: make([]UnitBlock, 0, len(aircraft))}
	for _, a := range aircraft {
		block := UnitBlock{Aircraft: a, Rows: make([]Row, 0, len(responses))}
		for _, r := range responses {
			cells := make([]Cell, len(cols))
			for i, c := range cols {
				rating := Rating(r.Scores, c.SectionID, a.IDSuffix)
				cells[i] = Cell{Rating: rating, Contribution: rating * c.Weight}
			}
			block.Rows = append(block.Rows, Row{
				ResponseID:    r.ID,
				PersonnelName: r.PersonnelName,
				Timestamp:     r.Timestamp,
				Cells:         cells,
				Total:         AircraftScore(questions, r.Scores, a.IDSuffix),
			})
		}
		m.Units = append(m.Units, block)
	}
	return m
}
