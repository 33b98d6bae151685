package evaluation

import (
	"fmt"
	"strings"

	"github.com/mathcoach-dev/mathcoach/internal/exercise"
)

const evaluationSystemPrompt = `You are a rigorous math teacher grading a student's answer. Judge correctness against the reference solution, but accept any mathematically equivalent form. Be precise about errors and generous with explanation. Use plain ASCII for all math.`

func buildEvaluationUserMessage(ex *exercise.Exercise, answer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Exercise: %s\n", ex.Statement))
	b.WriteString(fmt.Sprintf("Reference solution: %s\n", ex.Solution))
	b.WriteString(fmt.Sprintf("Student's answer: %s\n", answer))

	b.WriteString(`
Analysis criteria:
1. Reasoning: identify the student's steps, check their logical coherence
   and whether the necessary justifications are present.
2. Error classification (when incorrect), pick the dominant one:
   - conceptual (misunderstanding of the notions)
   - calculation (arithmetic mistakes)
   - notation (mathematical writing)
   - method (wrong approach chosen)
   - logic (flawed reasoning)
3. Recommendations: propose targeted remediation and the points to review
   first.

Return the structured evaluation.`)

	return b.String()
}
