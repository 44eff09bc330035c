package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain object",
			in:   `{"destination": "Tokyo"}`,
			want: `{"destination": "Tokyo"}`,
		},
		{
			name: "markdown fenced",
			in:   "```json\n{\"destination\": \"Tokyo\"}\n```",
			want: `{"destination": "Tokyo"}`,
		},
		{
			name: "surrounding prose",
			in:   `Sure! Here is your plan: {"days": [{"day": 1}]} Hope you enjoy it.`,
			want: `{"days": [{"day": 1}]}`,
		},
		{
			name: "array payload",
			in:   "the list follows [1, 2, 3] thanks",
			want: `[1, 2, 3]`,
		},
		{
			name: "braces inside string literals",
			in:   `{"notes": "use the {old} gate", "day": 1} trailing`,
			want: `{"notes": "use the {old} gate", "day": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJSONResponse(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestCleanJSONResponseNoJSON(t *testing.T) {
	assert.Equal(t, "no structured data here", CleanJSONResponse("no structured data here"))
}
