package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		gp   float64
		want string
	}{
		{4.0, "A"},
		{3.85, "A"},
		{3.849, "A-"},
		{3.5, "A-"},
		{3.15, "B+"},
		{3.0, "B"},
		{2.85, "B"},
		{2.5, "B-"},
		{2.15, "C+"},
		{1.85, "C"},
		{1.5, "C-"},
		{1.0, "D"},
		{0.99, "F"},
		{0.0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.gp), "grade point %v", tt.gp)
	}
}

func TestLetterGrade_RoundTripsRegistrarValues(t *testing.T) {
	for _, l := range []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"} {
		gp, ok := GradePoint(l)
		assert.True(t, ok, l)
		assert.Equal(t, l, LetterGrade(gp))
	}
}

func TestGradePoint_Unknown(t *testing.T) {
	_, ok := GradePoint("E")
	assert.False(t, ok)

	gp, ok := GradePoint(" b+ ")
	assert.True(t, ok)
	assert.Equal(t, 3.3, gp)
}

func TestNearestLetter(t *testing.T) {
	assert.Equal(t, "B", NearestLetter(3.1))
	assert.Equal(t, "A", NearestLetter(3.9))
	assert.Equal(t, "D", NearestLetter(1.2))
	assert.Equal(t, "F", NearestLetter(0.2))
}
