package util_test

import (
	"testing"
	"time"

	"workload_survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := util.GenerateJWT(util.RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, util.RoleAdmin, claims.Role)
}

func TestJWT_RejectsWrongSecretAndExpired(t *testing.T) {
	token, err := util.GenerateJWT(util.RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)
	_, err = util.ParseJWT(token, "other")
	assert.Error(t, err)

	expired, err := util.GenerateJWT(util.RoleAdmin, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = util.ParseJWT(expired, "secret")
	assert.Error(t, err)
}
