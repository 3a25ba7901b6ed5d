// Package career implements the career-exploration domain: the four-query
// analysis pipeline, the follow-up chat assistant, the chart-derivation
// heuristics, and email report rendering.
package career

import "time"

// UserProfile is the transient input collected from the user before
// analysis. It lives only for the active session.
type UserProfile struct {
	Name            string   `json:"name"`
	Age             int      `json:"age,omitempty"`
	EducationLevel  string   `json:"education_level,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	CurrentField    string   `json:"current_field,omitempty"`
	Location        string   `json:"location,omitempty"`
	CareerStage     string   `json:"career_stage,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	Skills          string   `json:"skills,omitempty"`
	Goals           string   `json:"goals,omitempty"`
}

// CareerRecord is the consolidated analysis bundle for one career name.
// Once created it is immutable and memoized by name for the session's
// lifetime; re-analysis requires explicit eviction.
type CareerRecord struct {
	CareerName       string    `json:"career_name"`
	Research         string    `json:"research"`
	MarketAnalysis   string    `json:"market_analysis"`
	LearningRoadmap  string    `json:"learning_roadmap"`
	IndustryInsights string    `json:"industry_insights"`
	Timestamp        time.Time `json:"timestamp"`
}

// Experience-level buckets used to template the learning roadmap query.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ExperienceLevel maps years of experience to a roadmap bucket:
// 0-2 beginner, 3-9 intermediate, 10+ advanced.
func ExperienceLevel(years int) string {
	switch {
	case years >= 10:
		return LevelAdvanced
	case years >= 3:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
