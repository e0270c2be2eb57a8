// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents a student profile as stored by the candidate store.
// GPA is a pointer so that a missing GPA can be distinguished from a 0.0 GPA;
// ranking treats a missing GPA as lowest for tie-breaking only.
type CandidateProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	Skills          []string         `json:"skills"`
	GPA             *float64         `json:"gpa,omitempty"`
	Degree          string           `json:"degree,omitempty"`
	University      string           `json:"university,omitempty"`
	GraduationYear  string           `json:"graduation_year,omitempty"`
	Location        string           `json:"location,omitempty"`
	RepoCount       int              `json:"repo_count,omitempty"`
	Interests       []string         `json:"interests,omitempty"`
	CulturalFitness *CulturalFitness `json:"cultural_fitness,omitempty"`
}

// CulturalFitness holds a candidate's answers to the cultural-fitness questionnaire.
// It is the input payload for the retention-scoring collaborator.
type CulturalFitness struct {
	Answers []QuestionAnswer `json:"answers"`
}

// QuestionAnswer is a single question/answer pair from the questionnaire.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Empty reports whether there is no usable cultural-fitness data.
func (cf *CulturalFitness) Empty() bool {
	if cf == nil {
		return true
	}
	for _, qa := range cf.Answers {
		if qa.Answer != "" {
			return false
		}
	}
	return true
}
