package service_test

import (
	"context"
	"testing"
	"time"

	"workload_survey/internal/model"
	"workload_survey/internal/remote"
	"workload_survey/internal/scoring"
	"workload_survey/internal/service"
	"workload_survey/internal/survey"
	"workload_survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, data *model.AppData) (*service.StateService, *memStore, *recordingQueue) {
	t.Helper()
	store := &memStore{data: data}
	q := &recordingQueue{}
	s := service.NewStateService(store, q)
	s.Load(context.Background())
	return s, store, q
}

func TestStateService_LoadFallsBackToDefaults(t *testing.T) {
	s, _, _ := newState(t, nil)
	assert.Equal(t, model.DefaultAppData(), s.Snapshot())

	store := &memStore{loadErr: errBoom}
	s = service.NewStateService(store, &recordingQueue{})
	s.Load(context.Background())
	assert.Equal(t, model.DefaultAppData().Questions, s.Questions())
}

func TestStateService_SnapshotDoesNotAlias(t *testing.T) {
	s, _, _ := newState(t, smallData())
	snap := s.Snapshot()
	snap.Questions[0].Sections[0].SectionWeight = 99
	snap.Personnel[0] = "changed"
	assert.Equal(t, 10, s.Questions()[0].Sections[0].SectionWeight)
	assert.True(t, s.HasPersonnel("Ali"))
}

func TestStateService_MergeRules(t *testing.T) {
	s, store, _ := newState(t, smallData())
	welcome := "Merhaba"
	res := s.Merge(&remote.Snapshot{
		Personnel:   []string{"Veli", "Ayşe"},
		WelcomeText: &welcome,
		Responses:   []model.Response{{ID: "r1", Scores: map[string]int{"1a_x": 5}, TotalScore: 50}},
		Weights:     map[string]int{"2a": 30, "zz": 4},
		Skipped:     2,
	})

	assert.Equal(t, service.MergeResult{Personnel: 2, Responses: 1, WeightsApplied: 1, WelcomeText: true, Skipped: 2}, res)
	data := s.Snapshot()
	assert.Equal(t, []string{"Veli", "Ayşe"}, data.Personnel)
	assert.Equal(t, "Merhaba", data.WelcomeText)
	assert.Len(t, data.Responses, 1)
	assert.Equal(t, 10, data.Questions[0].Sections[0].SectionWeight)
	assert.Equal(t, 30, data.Questions[1].Sections[0].SectionWeight)
	assert.Equal(t, data, store.saved())
}

func TestStateService_MergeKeepsAbsentFields(t *testing.T) {
	s, _, _ := newState(t, smallData())
	s.Merge(&remote.Snapshot{})
	assert.Equal(t, *smallData(), s.Snapshot())
}

func TestStateService_Bootstrap(t *testing.T) {
	s, _, _ := newState(t, smallData())

	_, err := s.Bootstrap(context.Background(), fakeFetcher{wait: true}, 20*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, *smallData(), s.Snapshot())

	_, err = s.Bootstrap(context.Background(), fakeFetcher{err: errBoom}, time.Second)
	assert.ErrorIs(t, err, errBoom)

	res, err := s.Bootstrap(context.Background(), fakeFetcher{}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, service.MergeResult{}, res)

	res, err = s.Bootstrap(context.Background(), fakeFetcher{snap: &remote.Snapshot{Personnel: []string{"Z"}}}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Personnel)
	assert.Equal(t, []string{"Z"}, s.Personnel())
}

func TestStateService_AppendResponse(t *testing.T) {
	s, store, q := newState(t, smallData())
	resp := model.Response{ID: "r1", PersonnelName: "Ali", Scores: map[string]int{"1a_x": 3, "2a_x": 4}, TotalScore: 70}

	require.NoError(t, s.AppendResponse(resp))
	resp.Scores["1a_x"] = 1

	got := s.Responses()
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Scores["1a_x"])
	assert.Len(t, store.saved().Responses, 1)

	tasks := q.all()
	require.Len(t, tasks, 1)
	assert.Equal(t, remote.ActionAddResponse, tasks[0].action)
}

func TestStateService_PersistFailureKeepsCommit(t *testing.T) {
	s, store, q := newState(t, smallData())
	store.saveErr = errBoom

	require.NoError(t, s.AppendResponse(model.Response{ID: "r1", Scores: map[string]int{}}))
	assert.Len(t, s.Responses(), 1)
	assert.Len(t, q.all(), 1)
}

func TestStateService_AddAndRemovePersonnel(t *testing.T) {
	s, _, q := newState(t, smallData())

	added, err := s.AddPersonnel("  Veli \n\nAli\nAyşe\nVeli\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Veli", "Ayşe"}, added)
	assert.Equal(t, []string{"Ali", "Veli", "Ayşe"}, s.Personnel())

	_, err = s.AddPersonnel(" \n ")
	assert.ErrorIs(t, err, util.ErrEmptyRoster)

	added, err = s.AddPersonnel("Ali")
	require.NoError(t, err)
	assert.Empty(t, added)

	require.NoError(t, s.RemovePersonnel("Veli"))
	assert.Equal(t, []string{"Ali", "Ayşe"}, s.Personnel())
	assert.ErrorIs(t, s.RemovePersonnel("Nobody"), survey.ErrPersonnelNotFound)

	tasks := q.all()
	require.Len(t, tasks, 2)
	assert.Equal(t, remote.ActionUpdatePersonnel, tasks[0].action)
	assert.Equal(t, []string{"Ali", "Veli", "Ayşe"}, tasks[0].data)
	assert.Equal(t, []string{"Ali", "Ayşe"}, tasks[1].data)
}

func TestStateService_SearchPersonnelTurkish(t *testing.T) {
	s, _, _ := newState(t, &model.AppData{
		Questions: smallQuestions(),
		Personnel: []string{"İsmail Yılmaz", "Işıl Kaya", "Ali Demir"},
	})

	assert.Equal(t, []string{"İsmail Yılmaz"}, s.SearchPersonnel("ismail"))
	assert.Equal(t, []string{"Işıl Kaya"}, s.SearchPersonnel("IŞIL"))
	assert.Empty(t, s.SearchPersonnel("isil"))
	assert.Len(t, s.SearchPersonnel("  "), 3)
}

func TestStateService_UpdateWeights(t *testing.T) {
	s, _, q := newState(t, smallData())

	_, err := s.UpdateWeights([]model.SectionWeight{{SectionID: "1a", Weight: 20}, {SectionID: "nope", Weight: 1}})
	assert.ErrorIs(t, err, service.ErrSectionNotFound)
	_, err = s.UpdateWeights([]model.SectionWeight{{SectionID: "1a", Weight: -1}})
	assert.ErrorIs(t, err, service.ErrInvalidWeight)
	_, err = s.UpdateWeights(nil)
	assert.ErrorIs(t, err, util.ErrEmptyWeights)
	assert.Equal(t, 10, s.Questions()[0].Sections[0].SectionWeight)
	assert.Empty(t, q.all())

	weights, err := s.UpdateWeights([]model.SectionWeight{{SectionID: "1a", Weight: 20}})
	require.NoError(t, err)
	assert.Equal(t, []model.SectionWeight{{SectionID: "1a", Weight: 20}, {SectionID: "2a", Weight: 10}}, weights)

	tasks := q.all()
	require.Len(t, tasks, 1)
	assert.Equal(t, remote.ActionUpdateWeights, tasks[0].action)
}

func TestStateService_WeightEditIsLiveForReportsOnly(t *testing.T) {
	s, _, _ := newState(t, smallData())
	scores := map[string]int{"1a_x": 5, "2a_x": 5}
	total, err := scoring.TotalScore(s.Questions(), scores)
	require.NoError(t, err)
	require.NoError(t, s.AppendResponse(model.Response{ID: "r1", Scores: scores, TotalScore: total}))
	assert.Equal(t, 100, scoring.AircraftScore(s.Questions(), scores, "x"))

	_, err = s.UpdateWeights([]model.SectionWeight{{SectionID: "1a", Weight: 20}})
	require.NoError(t, err)

	assert.Equal(t, 150, scoring.AircraftScore(s.Questions(), s.Responses()[0].Scores, "x"))
	assert.Equal(t, 100, s.Responses()[0].TotalScore)
}

func TestStateService_SetWelcomeText(t *testing.T) {
	s, store, q := newState(t, smallData())
	s.SetWelcomeText("Yeni metin")
	assert.Equal(t, "Yeni metin", s.WelcomeText())
	assert.Equal(t, "Yeni metin", store.saved().WelcomeText)

	tasks := q.all()
	require.Len(t, tasks, 1)
	assert.Equal(t, remote.ActionUpdateConfig, tasks[0].action)
	assert.Equal(t, map[string]string{"welcomeText": "Yeni metin"}, tasks[0].data)
}
