// Package scoring holds the pure scoring and aggregation functions used by the survey
// and the reports. Nothing here keeps state.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"workload_survey/internal/model"
)

var ErrMissingRating = errors.New("missing rating")

// MissingRatingError names the first item that has no rating.
type MissingRatingError struct {
	ItemID string
}

func (e *MissingRatingError) Error() string {
	return fmt.Sprintf("missing rating for item %s", e.ItemID)
}

func (e *MissingRatingError) Is(target error) bool {
	return target == ErrMissingRating
}

// roundHalfUp matches Math.round for the non-negative totals produced here.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// TotalScore is the snapshot score stored on a response: for every section the mean rating of
// its items times the section weight, summed over all questions and rounded half-up.
// Sections without items contribute nothing.
func TotalScore(questions []model.Question, scores map[string]int) (int, error) {
	total := 0.0
	for _, q := range questions {
		for _, s := range q.Sections {
			if len(s.Items) == 0 {
				continue
			}
			sum := 0
			for _, it := range s.Items {
				r, ok := scores[it.ID]
				if !ok {
					return 0, &MissingRatingError{ItemID: it.ID}
				}
				sum += r
			}
			avg := float64(sum) / float64(len(s.Items))
			total += avg * float64(s.SectionWeight)
		}
	}
	return roundHalfUp(total), nil
}

// Rating looks up the single item of a section that belongs to an aircraft. Absent ratings are 0.
func Rating(scores map[string]int, sectionID, aircraftSuffix string) int {
	return scores[model.ItemID(sectionID, aircraftSuffix)]
}

// AircraftScore is the report score of one response for one aircraft, computed against the
// weights passed in (the live configuration), not the weights at submission time.
func AircraftScore(questions []model.Question, scores map[string]int, aircraftSuffix string) int {
	sum := 0
	for _, q := range questions {
		for _, s := range q.Sections {
			sum += Rating(scores, s.ID, aircraftSuffix) * s.SectionWeight
		}
	}
	return sum
}
