package evaluation

// Result is the structured verdict on a submitted answer.
type Result struct {
	// IsCorrect is the binary verdict the progression engine consumes.
	IsCorrect bool

	// ErrorType classifies the mistake: conceptual, calculation,
	// notation, method, logic — or "system_error" for the fallback.
	ErrorType string

	// Feedback is the pedagogical feedback shown to the student.
	Feedback string

	// DetailedExplanation is the full mathematical explanation.
	DetailedExplanation string

	// StepByStepCorrection walks through the correct solution.
	StepByStepCorrection string

	// Recommendations are personalized next steps.
	Recommendations []string
}

// SystemError reports whether the result is the degraded fallback produced
// when evaluation itself failed. Such results never count as correct and
// direct the student to self-check.
func (r *Result) SystemError() bool {
	return r.ErrorType == "system_error"
}
