package util_test

import (
	"encoding/json"
	"testing"

	"workload_survey/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestParseIntLoose(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   int
		wantOK bool
	}{
		{"plain string", "15", 15, true},
		{"padded string", "  7 ", 7, true},
		{"decimal string truncates", "12.9", 12, true},
		{"leading zero", "08", 8, true},
		{"float64", float64(42), 42, true},
		{"int", 5, 5, true},
		{"json number", json.Number("9"), 9, true},
		{"garbage", "abc", 0, false},
		{"empty", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"huge exponent string", "1e300", 0, false},
		{"huge float64", 1e300, 0, false},
		{"integer beyond int32", "99999999999", 0, false},
		{"negative beyond int32", json.Number("-3000000000"), 0, false},
		{"int32 max", "2147483647", 2147483647, true},
		{"negative", "-15", -15, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := util.ParseIntLoose(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := util.SplitLines("  Ali Veli \r\n\n Ayşe\n   \nMehmet")
	assert.Equal(t, []string{"Ali Veli", "Ayşe", "Mehmet"}, got)
	assert.Empty(t, util.SplitLines("\n \n"))
}
