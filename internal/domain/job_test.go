package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWorkLocation(t *testing.T) {
	cases := map[string]string{
		"":                "Unknown",
		"Fully REMOTE":    "Remote",
		"hybrid (3 days)": "Hybrid",
		"On-site":         "Onsite",
		" Dallas, TX ":    "Dallas, TX",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeWorkLocation(in), in)
	}
}

func TestJobStatusValid(t *testing.T) {
	assert.True(t, StatusApplied.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, JobStatus("ghosted").Valid())
}
