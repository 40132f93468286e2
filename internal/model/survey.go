package model

// Item is one rateable target inside a section. Its id is `{sectionId}_{aircraftSuffix}`.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// swagger:model Section
type Section struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Label         string `json:"label"` // a, b, c, ç
	SectionWeight int    `json:"sectionWeight"`
	Items         []Item `json:"items"`
}

// swagger:model Question
type Question struct {
	ID       int       `json:"id"`
	Text     string    `json:"text"`
	Sections []Section `json:"sections"`
}

// ItemIDs returns every item id of the question in presentation order.
func (q Question) ItemIDs() []string {
	var ids []string
	for _, s := range q.Sections {
		for _, it := range s.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// swagger:model Response
type Response struct {
	ID            string         `json:"id"`
	Timestamp     string         `json:"timestamp"`
	PersonnelName string         `json:"personnelName"`
	Scores        map[string]int `json:"scores"`
	TotalScore    int            `json:"totalScore"`
}

// swagger:model AppData
type AppData struct {
	WelcomeText string     `json:"welcomeText"`
	Questions   []Question `json:"questions"`
	Personnel   []string   `json:"personnel"`
	Responses   []Response `json:"responses"`
}

// Aircraft is a reporting unit. Items are matched to it by IDSuffix.
type Aircraft struct {
	Label    string `json:"label"`
	IDSuffix string `json:"idSuffix"`
}

// ItemID builds the composite item key for a section and an aircraft suffix.
func ItemID(sectionID, aircraftSuffix string) string {
	return sectionID + "_" + aircraftSuffix
}

// SectionWeight pairs a section id with its weight, the shape pushed to the remote store.
type SectionWeight struct {
	SectionID string `json:"sectionId"`
	Weight    int    `json:"weight"`
}

// Weights flattens the section weights of all questions.
func Weights(questions []Question) []SectionWeight {
	var out []SectionWeight
	for _, q := range questions {
		for _, s := range q.Sections {
			out = append(out, SectionWeight{SectionID: s.ID, Weight: s.SectionWeight})
		}
	}
	return out
}

// SectionCount is the number of sections across all questions.
func SectionCount(questions []Question) int {
	n := 0
	for _, q := range questions {
		n += len(q.Sections)
	}
	return n
}
