package remote

import (
	"encoding/json"
	"strings"

	"workload_survey/internal/model"
	"workload_survey/internal/util"
	"workload_survey/pkg/logger"
	"workload_survey/pkg/monitoring"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const welcomeTextKey = "welcomeText"

// Record kinds, also the label of the skipped-records metric.
const (
	kindPersonnel = "personnel"
	kindConfig    = "config"
	kindResponse  = "response"
	kindWeight    = "weight"
)

// Records are decoded one by one: the sheet hands back numbers, numeric strings and blanks
// interchangeably, and a single odd row must not cost the rest of the payload.
type rawConfig struct {
	Key   interface{} `json:"Key"`
	Value interface{} `json:"Value"`
}

type rawResponse struct {
	ID            interface{} `json:"ID"`
	Timestamp     interface{} `json:"Timestamp"`
	PersonnelName interface{} `json:"PersonnelName"`
	TotalScore    interface{} `json:"TotalScore"`
	ScoresJSON    interface{} `json:"ScoresJSON"`
}

type rawWeight struct {
	SectionID interface{} `json:"SectionID"`
	Weight    interface{} `json:"Weight"`
}

// Snapshot is the validated remote state. Nil fields were absent from the payload and must
// leave the local value untouched.
type Snapshot struct {
	Personnel   []string
	WelcomeText *string
	Responses   []model.Response
	Weights     map[string]int
	Skipped     int
}

// Decode validates a fetchAll body. A JSON null yields a nil snapshot and no error. Only a body
// that is not a JSON object fails; malformed sections and records are skipped and counted.
func Decode(body []byte) (*Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, err
	}
	if top == nil {
		return nil, nil
	}

	snap := &Snapshot{}
	if items, ok := snap.section(top, "personnel", kindPersonnel); ok {
		snap.Personnel = decodePersonnel(snap, items)
	}
	if items, ok := snap.section(top, "config", kindConfig); ok {
		snap.decodeConfig(items)
	}
	if items, ok := snap.section(top, "responses", kindResponse); ok {
		snap.Responses = make([]model.Response, 0, len(items))
		for i, item := range items {
			var r rawResponse
			if err := json.Unmarshal(item, &r); err != nil {
				snap.skip(kindResponse, zap.Int("index", i), zap.Error(err))
				continue
			}
			resp, ok := decodeResponse(r)
			if !ok {
				snap.skip(kindResponse, zap.Int("index", i), zap.Any("id", r.ID))
				continue
			}
			snap.Responses = append(snap.Responses, resp)
		}
	}
	if items, ok := snap.section(top, "weights", kindWeight); ok && len(items) > 0 {
		snap.Weights = make(map[string]int, len(items))
		for i, item := range items {
			var w rawWeight
			if err := json.Unmarshal(item, &w); err != nil {
				snap.skip(kindWeight, zap.Int("index", i), zap.Error(err))
				continue
			}
			id := strings.TrimSpace(cast.ToString(w.SectionID))
			weight, ok := util.ParseIntLoose(w.Weight)
			if id == "" || !ok || weight < 0 {
				snap.skip(kindWeight, zap.Int("index", i), zap.Any("sectionId", w.SectionID), zap.Any("weight", w.Weight))
				continue
			}
			snap.Weights[id] = weight
		}
	}
	return snap, nil
}

// section returns the records under key. Absent or null sections report ok=false; a section
// that is not a list is skipped as a whole.
func (s *Snapshot) section(top map[string]json.RawMessage, key, kind string) ([]json.RawMessage, bool) {
	raw, present := top[key]
	if !present || string(raw) == "null" {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		s.skip(kind, zap.String("section", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

func (s *Snapshot) decodeConfig(items []json.RawMessage) {
	for i, item := range items {
		var c rawConfig
		if err := json.Unmarshal(item, &c); err != nil {
			s.skip(kindConfig, zap.Int("index", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(cast.ToString(c.Key)) != welcomeTextKey {
			continue
		}
		text, err := cast.ToStringE(c.Value)
		if err != nil {
			s.skip(kindConfig, zap.Error(err))
			continue
		}
		s.WelcomeText = &text
	}
}

func (s *Snapshot) skip(kind string, fields ...zap.Field) {
	s.Skipped++
	monitoring.RemoteRecordsSkipped.WithLabelValues(kind).Inc()
	logger.Log.Warn("Skipping malformed remote record", append([]zap.Field{zap.String("kind", kind)}, fields...)...)
}

// decodePersonnel keeps the first occurrence of every name.
func decodePersonnel(snap *Snapshot, in []json.RawMessage) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for i, item := range in {
		var v interface{}
		if err := json.Unmarshal(item, &v); err != nil {
			snap.skip(kindPersonnel, zap.Int("index", i), zap.Error(err))
			continue
		}
		name, err := cast.ToStringE(v)
		name = strings.TrimSpace(name)
		if err != nil || name == "" {
			snap.skip(kindPersonnel, zap.Int("index", i))
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func decodeResponse(r rawResponse) (model.Response, bool) {
	id := strings.TrimSpace(cast.ToString(r.ID))
	if id == "" {
		return model.Response{}, false
	}
	scores, ok := decodeScores(r.ScoresJSON)
	if !ok {
		return model.Response{}, false
	}
	total, ok := util.ParseIntLoose(r.TotalScore)
	if !ok {
		total = 0
	}
	return model.Response{
		ID:            id,
		Timestamp:     cast.ToString(r.Timestamp),
		PersonnelName: cast.ToString(r.PersonnelName),
		Scores:        scores,
		TotalScore:    total,
	}, true
}

// decodeScores accepts the serialized mapping or, from hand-edited sheets, an already
// expanded object. Individual unparseable ratings are dropped.
func decodeScores(v interface{}) (map[string]int, bool) {
	var m map[string]interface{}
	switch t := v.(type) {
	case string:
		if err := json.Unmarshal([]byte(t), &m); err != nil || m == nil {
			return nil, false
		}
	case map[string]interface{}:
		m = t
	default:
		return nil, false
	}
	scores := make(map[string]int, len(m))
	for k, raw := range m {
		if n, ok := util.ParseIntLoose(raw); ok {
			scores[k] = n
		}
	}
	return scores, true
}
