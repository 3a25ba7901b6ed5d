package career

// Category is one curated group of career options.
type Category struct {
	Name    string   `json:"name"`
	Careers []string `json:"careers"`
}

// Options returns the curated career catalog shown on the selection screen.
// Any free-text career name is also accepted by the pipeline; this list only
// seeds exploration.
func Options() []Category {
	return []Category{
		{Name: "Technology", Careers: []string{
			"Software Engineering", "Data Science", "Cybersecurity",
			"AI/ML Engineering", "DevOps", "Cloud Architecture",
			"Mobile Development", "Full Stack Development",
			"Web Development", "Game Development",
		}},
		{Name: "Healthcare", Careers: []string{
			"Medicine", "Nursing", "Pharmacy", "Biomedical Engineering",
			"Healthcare Administration", "Physical Therapy",
			"Medical Research", "Healthcare IT", "Clinical Psychology",
			"Dentistry",
		}},
		{Name: "Business", Careers: []string{
			"Finance", "Marketing", "Management", "Entrepreneurship",
			"Business Analysis", "Project Management", "Human Resources",
			"Sales", "Operations", "Consulting",
		}},
		{Name: "Creative", Careers: []string{
			"Graphic Design", "UX/UI Design", "Content Creation",
			"Digital Marketing", "Animation", "Film Production",
			"Photography", "Writing & Journalism", "Music Production",
			"Interior Design",
		}},
		{Name: "Engineering", Careers: []string{
			"Mechanical Engineering", "Electrical Engineering",
			"Civil Engineering", "Chemical Engineering",
			"Aerospace Engineering", "Environmental Engineering",
			"Industrial Engineering",
		}},
		{Name: "Education", Careers: []string{
			"Teaching", "Educational Administration",
			"Curriculum Development", "Educational Technology",
			"School Counseling", "Special Education",
		}},
	}
}
