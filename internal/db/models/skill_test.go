package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillLevelLabel(t *testing.T) {
	testCases := []struct {
		level    int
		expected string
	}{
		{1, "Beginner"},
		{2, "Beginner"},
		{3, "Intermediate"},
		{4, "Intermediate"},
		{5, "Proficient"},
		{6, "Proficient"},
		{7, "Advanced"},
		{8, "Advanced"},
		{9, "Expert"},
		{10, "Expert"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			s := Skill{Level: tc.level}
			assert.Equal(t, tc.expected, s.LevelLabel())
		})
	}
}
