package exercise

// Exercise is one math problem presented to the student.
type Exercise struct {
	// Statement is the question shown. Always non-empty.
	Statement string

	// Solution is the detailed reference solution used for evaluation.
	Solution string

	// Hints guide the student without giving the answer away.
	Hints []string

	// Difficulty is the level name, e.g. "Linear equations".
	Difficulty string

	// Concept is the objective key the exercise belongs to.
	Concept string
}

// Input holds the catalog context an exercise is generated from.
type Input struct {
	ObjectiveKey         string
	ObjectiveDescription string
	Level                int
	LevelName            string
	LevelObjectives      []string
	ExampleFunctions     []string

	// RecentMemories are recalled notes about the student's past work,
	// used to personalize the exercise. Optional.
	RecentMemories []string
}
