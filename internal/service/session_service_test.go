package service_test

import (
	"testing"
	"time"

	"workload_survey/internal/service"
	"workload_survey/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_FullFlow(t *testing.T) {
	state, _, q := newState(t, smallData())
	reg := service.NewSessionService(state, time.Hour)

	id, st := reg.Create()
	assert.Equal(t, survey.PhaseIdentity, st.Phase)
	assert.Equal(t, 2, st.TotalSteps)

	_, err := reg.SelectPersonnel(id, "Ali")
	require.NoError(t, err)
	st, _, err = reg.Next(id)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Step)
	assert.Equal(t, 50.0, st.Progress)

	_, _, err = reg.Next(id)
	assert.ErrorIs(t, err, survey.ErrStepIncomplete)

	_, err = reg.Rate(id, []service.Rating{{ItemID: "1a_x", Value: 4}})
	require.NoError(t, err)
	_, _, err = reg.Next(id)
	require.NoError(t, err)
	_, err = reg.Rate(id, []service.Rating{{ItemID: "2a_x", Value: 5}})
	require.NoError(t, err)

	st, resp, err := reg.Next(id)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, survey.PhaseSubmitted, st.Phase)
	assert.Equal(t, 90, resp.TotalScore)
	assert.Equal(t, "Ali", resp.PersonnelName)

	assert.Len(t, state.Responses(), 1)
	assert.Len(t, q.all(), 1)
	assert.Equal(t, 0, reg.Len())

	_, err = reg.State(id)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionService_RateStopsAtFirstError(t *testing.T) {
	state, _, _ := newState(t, smallData())
	reg := service.NewSessionService(state, time.Hour)
	id, _ := reg.Create()
	reg.SelectPersonnel(id, "Ali")
	reg.Next(id)

	st, err := reg.Rate(id, []service.Rating{{ItemID: "1a_x", Value: 3}, {ItemID: "1a_x", Value: 9}})
	assert.ErrorIs(t, err, survey.ErrInvalidRating)
	assert.Equal(t, 3, st.Scores["1a_x"])
}

func TestSessionService_BackFromIdentityRemovesSession(t *testing.T) {
	state, _, _ := newState(t, smallData())
	reg := service.NewSessionService(state, time.Hour)
	id, _ := reg.Create()

	st, err := reg.Back(id)
	require.NoError(t, err)
	assert.Equal(t, survey.PhaseExited, st.Phase)
	assert.Equal(t, 0, reg.Len())
}

func TestSessionService_Expiry(t *testing.T) {
	state, _, _ := newState(t, smallData())
	reg := service.NewSessionService(state, time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.SetClock(func() time.Time { return now })

	idle, _ := reg.Create()
	active, _ := reg.Create()

	now = now.Add(50 * time.Second)
	_, err := reg.State(active)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, reg.Sweep())
	_, err = reg.State(idle)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	now = now.Add(2 * time.Minute)
	_, err = reg.State(active)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.Equal(t, 0, reg.Len())
}
