package utils

import (
	"testing"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceLabel(t *testing.T) {
	cases := []struct {
		name     string
		projects int
		tasks    int
		want     string
	}{
		{"no projects", 0, 0, constants.PerformanceNoProjects},
		{"no projects with tasks", 0, 5, constants.PerformanceNoProjects},
		{"excellent equal", 4, 4, constants.PerformanceExcellent},
		{"excellent above", 4, 6, constants.PerformanceExcellent},
		{"good at threshold", 4, 3, constants.PerformanceGood},
		{"average at threshold", 4, 2, constants.PerformanceAverage},
		{"needs improvement", 4, 1, constants.PerformanceNeedsWork},
		{"needs improvement zero tasks", 3, 0, constants.PerformanceNeedsWork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PerformanceLabel(tc.projects, tc.tasks))
		})
	}
}

func TestPerformanceLabel_Idempotent(t *testing.T) {
	first := PerformanceLabel(7, 5)
	second := PerformanceLabel(7, 5)
	assert.Equal(t, first, second)
}
