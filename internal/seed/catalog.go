package seed

import "github.com/mind-engage/mindengage-advisor/internal/academic"

var departments = []string{
	"Computer Science", "Mathematics", "Physics", "Biology", "Chemistry",
	"Psychology", "Economics", "History", "English", "Art",
}

var levelGPA = map[string]struct{ mean, sd float64 }{
	"Freshman":  {2.8, 0.6},
	"Sophomore": {3.0, 0.6},
	"Junior":    {3.1, 0.5},
	"Senior":    {3.2, 0.5},
	"Graduate":  {3.5, 0.4},
}

var academicLevels = []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"}

var semesters = []string{"Fall", "Spring", "Summer"}

type accommodation struct{ mode, support string }

var accommodations = map[string]accommodation{
	"Visual":   {"Audio materials and screen reader compatible content", "Braille materials, audio descriptions, magnified text"},
	"Hearing":  {"Visual materials and written summaries", "Captioning, sign language interpreter, written notes"},
	"Mobility": {"Flexible seating and movement breaks", "Accessible facilities, flexible class attendance"},
	"Learning": {"Structured materials and additional time", "Extended test time, simplified instructions, tutoring"},
}

var disabilityTypes = []string{"Visual", "Hearing", "Mobility", "Learning"}

var (
	careerPool   = []string{"Software Engineering", "Data Science", "Artificial Intelligence", "Web Development", "Cybersecurity", "Research", "Academia", "Game Development", "Mobile Development", "Cloud Computing"}
	stylePool    = []string{"Visual", "Auditory", "Kinesthetic", "Reading/Writing"}
	timePool     = []string{"Morning", "Afternoon", "Evening"}
	formatPool   = []string{"In-person", "Online", "Hybrid"}
	interestPool = []string{"Programming", "Algorithms", "Database Design", "Web Technologies", "Machine Learning", "Mathematics", "Physics", "Biology", "Economics"}
	defaultGoals = "Build a successful career in technology and contribute to innovative projects."
)

// Catalog is the default course list loaded when the store has no courses.
func Catalog() []academic.Course {
	c := func(code, name, dept string, credits, difficulty int, access ...string) academic.Course {
		return academic.Course{Code: code, Name: name, Department: dept, Credits: credits, Difficulty: difficulty, AccessibilityFeatures: access}
	}
	return []academic.Course{
		c("CS101", "Introduction to Programming", "Computer Science", 3, 2, "Screen reader compatible", "Captioned lectures"),
		c("CS201", "Data Structures", "Computer Science", 4, 3, "Captioned lectures"),
		c("CS301", "Algorithms", "Computer Science", 4, 4),
		c("CS340", "Database Systems", "Computer Science", 3, 3, "Screen reader compatible"),
		c("CS450", "Machine Learning", "Computer Science", 4, 5),
		c("MATH101", "Calculus I", "Mathematics", 4, 3, "Extended test time"),
		c("MATH201", "Linear Algebra", "Mathematics", 3, 3),
		c("MATH301", "Real Analysis", "Mathematics", 3, 5),
		c("PHYS101", "General Physics I", "Physics", 4, 3, "Accessible lab stations"),
		c("PHYS301", "Quantum Mechanics", "Physics", 4, 5),
		c("BIO101", "Principles of Biology", "Biology", 4, 2, "Accessible lab stations", "Captioned lectures"),
		c("CHEM101", "General Chemistry", "Chemistry", 4, 3, "Accessible lab stations"),
		c("PSY101", "Introduction to Psychology", "Psychology", 3, 1, "Online option", "Captioned lectures"),
		c("ECON101", "Principles of Microeconomics", "Economics", 3, 2, "Online option"),
		c("ECON301", "Econometrics", "Economics", 3, 4),
		c("HIST101", "World History", "History", 3, 1, "Online option", "Screen reader compatible"),
		c("ENG101", "Academic Writing", "English", 3, 1, "Extended deadlines"),
		c("ENG220", "Creative Writing Workshop", "English", 3, 2),
		c("ART101", "Drawing Fundamentals", "Art", 3, 1, "Flexible seating"),
		c("ART210", "Digital Design", "Art", 3, 2, "Screen reader compatible"),
	}
}

// Fixtures are named students with fixed profiles for manual testing.
func Fixtures() []academic.Student {
	gpa := func(v float64) *float64 { return &v }
	return []academic.Student{
		{FullName: "John Doe", Email: "john.doe@example.com", Major: "Computer Science", AcademicLevel: "Junior", CurrentGPA: gpa(3.5)},
		{FullName: "Jane Smith", Email: "jane.smith@example.com", Major: "Computer Science", AcademicLevel: "Senior", CurrentGPA: gpa(3.8), HasDisability: true},
		{FullName: "Bob Johnson", Email: "bob.johnson@example.com", Major: "Mathematics", AcademicLevel: "Sophomore", CurrentGPA: gpa(2.9)},
		{FullName: "Alice Williams", Email: "alice.williams@example.com", Major: "Physics", AcademicLevel: "Freshman", CurrentGPA: gpa(3.2), HasDisability: true},
		{FullName: "Charlie Brown", Email: "charlie.brown@example.com", Major: "Biology", AcademicLevel: "Junior", CurrentGPA: gpa(2.5)},
	}
}
