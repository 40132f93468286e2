package scoring

import (
	"math/big"

	"workload_survey/internal/model"
)

// UnitStat is the per-aircraft block of the summary report.
type UnitStat struct {
	Aircraft       model.Aircraft `json:"aircraft"`
	Participants   int            `json:"participants"`
	AverageScore   float64        `json:"averageScore"`
	RoundedAverage int            `json:"roundedAverage"`
	IntensityRatio string         `json:"intensityRatio"`
}

// Summary is the aggregated report over the whole response set.
type Summary struct {
	ReferenceScore int        `json:"referenceScore"`
	Units          []UnitStat `json:"units"`
}

// ReferenceScore is the highest aircraft score over all responses and aircraft, 0 when there
// are no responses.
func ReferenceScore(questions []model.Question, responses []model.Response, aircraft []model.Aircraft) int {
	max := 0
	for _, r := range responses {
		for _, a := range aircraft {
			if s := AircraftScore(questions, r.Scores, a.IDSuffix); s > max {
				max = s
			}
		}
	}
	return max
}

// Summarize computes the reference score and the per-unit statistics. Every response counts as
// a participant of every unit.
func Summarize(questions []model.Question, responses []model.Response, aircraft []model.Aircraft) Summary {
	ref := ReferenceScore(questions, responses, aircraft)
	units := make([]UnitStat, 0, len(aircraft))
	for _, a := range aircraft {
		n := len(responses)
		avg := 0.0
		if n > 0 {
			sum := 0
			for _, r := range responses {
				sum += AircraftScore(questions, r.Scores, a.IDSuffix)
			}
			avg = float64(sum) / float64(n)
		}
		units = append(units, UnitStat{
			Aircraft:       a,
			Participants:   n,
			AverageScore:   avg,
			RoundedAverage: roundHalfUp(avg),
			IntensityRatio: IntensityRatio(avg, ref),
		})
	}
	return Summary{ReferenceScore: ref, Units: units}
}

// IntensityRatio is average / reference * 100 with one decimal, "0.0" for a zero reference.
func IntensityRatio(average float64, reference int) string {
	if reference <= 0 {
		return "0.0"
	}
	return FormatFixed1(average / float64(reference) * 100)
}

// FormatFixed1 formats a non-negative value with one decimal, resolving exact ties upward
// like Number.prototype.toFixed. strconv rounds ties to even, which differs on values such
// as 12.25.
func FormatFixed1(x float64) string {
	if x < 0 {
		x = 0
	}
	y := new(big.Float).SetPrec(256).SetFloat64(x)
	y.Mul(y, big.NewFloat(10))
	y.Add(y, big.NewFloat(0.5))
	n, _ := y.Int(nil)

	q, r := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	return q.String() + "." + r.String()
}
