package types

// AtsAssessment is the structured result of an ATS analysis of résumé text.
// Values come straight from the model response: the score is not clamped to
// [0,100] and the list cardinalities are not enforced. Consumers treat absent
// fields as "nothing to display" rather than as errors.
type AtsAssessment struct {
	Score        int      `json:"score"`
	Highlights   []string `json:"highlights"`
	Improvements []string `json:"improvements"`
	MatchingJobs []string `json:"matching_jobs"`
}
