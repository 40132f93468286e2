package model

// CloneQuestions deep-copies a question set so callers can not alias the live configuration.
func CloneQuestions(in []Question) []Question {
	if in == nil {
		return nil
	}
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = q
		out[i].Sections = make([]Section, len(q.Sections))
		for j, s := range q.Sections {
			out[i].Sections[j] = s
			out[i].Sections[j].Items = append([]Item(nil), s.Items...)
		}
	}
	return out
}

// CloneScores copies a scores map.
func CloneScores(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Clone returns a copy of the response whose scores map is not shared.
func (r Response) Clone() Response {
	r.Scores = CloneScores(r.Scores)
	return r
}

// Clone deep-copies the whole aggregate.
func (d AppData) Clone() AppData {
	out := AppData{
		WelcomeText: d.WelcomeText,
		Questions:   CloneQuestions(d.Questions),
		Personnel:   append([]string(nil), d.Personnel...),
	}
	if d.Responses != nil {
		out.Responses = make([]Response, len(d.Responses))
		for i, r := range d.Responses {
			out.Responses[i] = r.Clone()
		}
	}
	return out
}
