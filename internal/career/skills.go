package career

import (
	"math/rand"
	"sort"
	"strings"
)

// SkillScore is one skill category with its derived importance (0-100).
type SkillScore struct {
	Skill      string `json:"skill"`
	Importance int    `json:"importance"`
}

// skillCategories is scanned against the combined research + roadmap text.
var skillCategories = []struct {
	name     string
	keywords []string
}{
	{"Technical Skills", []string{"programming", "software", "coding", "development", "technical", "tools", "technology", "systems"}},
	{"Communication", []string{"communication", "presentation", "writing", "speaking", "collaboration", "interpersonal", "client"}},
	{"Problem Solving", []string{"problem", "analytical", "critical thinking", "troubleshooting", "analysis", "solve", "debug"}},
	{"Leadership", []string{"leadership", "management", "team", "supervision", "mentoring", "guide", "lead", "coordinate"}},
	{"Creativity", []string{"creative", "design", "innovation", "artistic", "brainstorming", "imagination", "visual", "aesthetic"}},
	{"Project Management", []string{"project", "planning", "organization", "coordination", "timeline", "management", "agile", "scrum"}},
	{"Data Analysis", []string{"data", "statistics", "excel", "reporting", "metrics", "analysis", "insights", "visualization"}},
	{"Customer Service", []string{"customer", "client", "service", "support", "relationship", "satisfaction", "user experience"}},
	{"Research", []string{"research", "investigation", "study", "analysis", "explore", "discover", "evidence", "methodology"}},
	{"Sales & Marketing", []string{"sales", "marketing", "business development", "networking", "persuasion", "negotiation"}},
}

// Career-name boosts, per category.
var skillNameBoosts = map[string]struct {
	words []string
	boost int
}{
	"Technical Skills": {[]string{"engineer", "developer", "data", "tech"}, 30},
	"Creativity":       {[]string{"design", "creative", "art", "ui", "ux"}, 30},
	"Communication":    {[]string{"marketing", "sales", "manager", "consultant"}, 25},
}

// fallbackSkills is returned when the record has no research text at all.
var fallbackSkills = []SkillScore{
	{"Technical Skills", 85},
	{"Communication", 75},
	{"Problem Solving", 90},
	{"Leadership", 70},
	{"Creativity", 65},
}

// SkillImportance scores the ten skill categories against the record's
// research and roadmap text and returns the six most important.
func SkillImportance(rec *CareerRecord, rng *rand.Rand) []SkillScore {
	if rec == nil || rec.Research == "" {
		out := make([]SkillScore, len(fallbackSkills))
		copy(out, fallbackSkills)
		return out
	}

	combined := strings.ToLower(rec.Research) + " " + strings.ToLower(rec.LearningRoadmap)
	careerName := strings.ToLower(rec.CareerName)

	var skills []SkillScore
	for _, cat := range skillCategories {
		score := keywordScore(combined, cat.keywords, 8)
		if nb, ok := skillNameBoosts[cat.name]; ok && containsAny(careerName, nb.words) {
			score += nb.boost
		}

		final := clamp(score+rng.Intn(20)+15, 40, 95)

		if score > 0 || len(skills) < 6 {
			skills = append(skills, SkillScore{Skill: cat.name, Importance: final})
		}
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Importance > skills[j].Importance
	})
	if len(skills) > 6 {
		skills = skills[:6]
	}
	return skills
}
