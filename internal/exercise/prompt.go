package exercise

import (
	"fmt"
	"strings"
)

const exerciseSystemPrompt = `You are an expert math teacher writing exercises for a one-on-one tutoring session. Write in clear, precise language and use plain ASCII for all math: / for fractions, * for multiplication, ^ for powers. No LaTeX, no Unicode symbols.`

func buildExerciseUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Objective: %s\n", input.ObjectiveDescription))
	b.WriteString(fmt.Sprintf("Level %d: %s\n", input.Level, input.LevelName))

	b.WriteString("\nSkills to test:\n")
	for _, o := range input.LevelObjectives {
		b.WriteString(fmt.Sprintf("- %s\n", o))
	}

	if len(input.ExampleFunctions) > 0 {
		b.WriteString("\nExample problems at this level:\n")
		for _, e := range input.ExampleFunctions {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	if len(input.RecentMemories) > 0 {
		b.WriteString("\nRecent history with this student:\n")
		for _, m := range input.RecentMemories {
			b.WriteString(fmt.Sprintf("- %s\n", m))
		}
	}

	b.WriteString(`
Instructions:
Create one exercise that:
1. Tests exactly the skills listed above, at the stated level.
2. Is a single, precise question with one correct answer.
3. Has a detailed reference solution showing every step.
4. Includes 2-3 pedagogical hints ordered from gentle to direct.
Use numbers different from the example problems.`)

	return b.String()
}

func buildSimilarUserMessage(original *Exercise) string {
	var b strings.Builder

	b.WriteString("Original exercise: ")
	b.WriteString(original.Statement)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Concept: %s\n", original.Concept))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", original.Difficulty))
	b.WriteString(fmt.Sprintf("Original solution: %s\n", original.Solution))

	b.WriteString(`
Instructions:
Generate a NEW exercise that is SIMILAR but DIFFERENT:
1. Same skills and same difficulty, different values and numbers.
2. A single precise question with one correct answer.
3. A complete reference solution.
4. 2-3 pedagogical hints.`)

	return b.String()
}
