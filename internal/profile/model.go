package profile

import "strings"

// PersonalInfo holds the contact block of a built profile.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceEntry is one job in the experience section. EndYear may be
// the literal "Present" for a current role.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one degree in the education section.
type EducationEntry struct {
	Degree   string `json:"degree"`
	School   string `json:"school"`
	Major    string `json:"major,omitempty"`
	Year     string `json:"year,omitempty"`
	GPA      string `json:"gpa,omitempty"`
	Location string `json:"location,omitempty"`
}

// ProjectEntry is one project in the projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// Profile is a structured resume built section by section.
type Profile struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
}

// New returns an empty profile with non-nil slices so exports always
// carry every top-level key.
func New() Profile {
	return Profile{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Projects:       []ProjectEntry{},
		Certifications: []string{},
	}
}

// Flatten renders the profile as plain resume text so the scoring
// engine can treat a built profile like an uploaded document.
func (p Profile) Flatten() string {
	var b strings.Builder

	if p.PersonalInfo.Name != "" {
		b.WriteString(p.PersonalInfo.Name)
		b.WriteString("\n")
	}
	contact := make([]string, 0, 6)
	for _, part := range []string{
		p.PersonalInfo.Email,
		p.PersonalInfo.Phone,
		p.PersonalInfo.LinkedIn,
		p.PersonalInfo.GitHub,
		p.PersonalInfo.Website,
		p.PersonalInfo.Location,
	} {
		if strings.TrimSpace(part) != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | "))
		b.WriteString("\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, exp := range p.Experience {
			b.WriteString(exp.Title)
			if exp.Company != "" {
				b.WriteString(" at " + exp.Company)
			}
			if exp.Location != "" {
				b.WriteString(", " + exp.Location)
			}
			if exp.StartYear != "" || exp.EndYear != "" {
				b.WriteString(" (" + exp.StartYear + " - " + exp.EndYear + ")")
			}
			b.WriteString("\n")
			for _, line := range strings.Split(exp.Description, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				b.WriteString("- " + strings.TrimSpace(line) + "\n")
			}
		}
	}

	if len(p.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, edu := range p.Education {
			b.WriteString(edu.Degree)
			if edu.Major != "" {
				b.WriteString(" in " + edu.Major)
			}
			if edu.School != "" {
				b.WriteString(", " + edu.School)
			}
			if edu.Location != "" {
				b.WriteString(", " + edu.Location)
			}
			if edu.Year != "" {
				b.WriteString(" (" + edu.Year + ")")
			}
			if edu.GPA != "" {
				b.WriteString(" GPA: " + edu.GPA)
			}
			b.WriteString("\n")
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		b.WriteString(strings.Join(p.Skills, ", "))
		b.WriteString("\n")
	}

	if len(p.Projects) > 0 {
		b.WriteString("\nPROJECTS\n")
		for _, proj := range p.Projects {
			b.WriteString(proj.Name)
			if proj.StartDate != "" || proj.EndDate != "" {
				b.WriteString(" (" + proj.StartDate + " - " + proj.EndDate + ")")
			}
			if proj.Status != "" {
				b.WriteString(" [" + proj.Status + "]")
			}
			if proj.Description != "" {
				b.WriteString(": " + proj.Description)
			}
			b.WriteString("\n")
			if len(proj.Technologies) > 0 {
				b.WriteString("- Technologies: " + strings.Join(proj.Technologies, ", ") + "\n")
			}
			if proj.URL != "" {
				b.WriteString("- " + proj.URL + "\n")
			}
		}
	}

	if len(p.Certifications) > 0 {
		b.WriteString("\nCERTIFICATIONS\n")
		for _, cert := range p.Certifications {
			b.WriteString("- " + cert + "\n")
		}
	}

	return b.String()
}

// clone returns a deep copy so store reads never alias internal slices.
func (p Profile) clone() Profile {
	out := p
	out.Experience = append([]ExperienceEntry(nil), p.Experience...)
	out.Education = append([]EducationEntry(nil), p.Education...)
	out.Skills = append([]string(nil), p.Skills...)
	out.Projects = make([]ProjectEntry, len(p.Projects))
	for i, proj := range p.Projects {
		out.Projects[i] = proj
		out.Projects[i].Technologies = append([]string(nil), proj.Technologies...)
	}
	out.Certifications = append([]string(nil), p.Certifications...)
	return out
}
