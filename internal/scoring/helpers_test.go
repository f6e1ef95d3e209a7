package scoring

import "github.com/mind-engage/mindengage-advisor/internal/academic"

func studentWithoutGPA() academic.Student { return academic.Student{ID: "s-1"} }

func courseOf(difficulty, credits int) academic.Course {
	return academic.Course{ID: "c-1", Difficulty: difficulty, Credits: credits}
}
