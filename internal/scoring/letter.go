package scoring

import "strings"

var letterBreaks = []struct {
	min    float64
	letter string
}{
	{3.85, "A"},
	{3.5, "A-"},
	{3.15, "B+"},
	{2.85, "B"},
	{2.5, "B-"},
	{2.15, "C+"},
	{1.85, "C"},
	{1.5, "C-"},
	{1.0, "D"},
}

// LetterGrade maps a grade point to its letter. Anything under 1.0 is F.
func LetterGrade(gp float64) string {
	for _, b := range letterBreaks {
		if gp >= b.min {
			return b.letter
		}
	}
	return "F"
}

var gradePoints = map[string]float64{
	"A": 4.0, "A-": 3.7, "B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7, "D": 1.0, "F": 0.0,
}

// GradePoint is the registrar value for a letter.
func GradePoint(letter string) (float64, bool) {
	gp, ok := gradePoints[strings.ToUpper(strings.TrimSpace(letter))]
	return gp, ok
}

// NearestLetter returns the letter whose registrar value is closest to gp.
func NearestLetter(gp float64) string {
	best, bestDiff := "F", 5.0
	for _, l := range []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"} {
		d := gradePoints[l] - gp
		if d < 0 {
			d = -d
		}
		if d < bestDiff {
			best, bestDiff = l, d
		}
	}
	return best
}
