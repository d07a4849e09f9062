package parsing

import "strings"

// ParsedResume is the wire contract returned to callers. Every string field is
// trimmed and empty when missing, never null; every list field is present,
// possibly empty. custom_fields holds only entries with a resolved value.
type ParsedResume struct {
	FullName             string            `json:"full_name"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	MobilePhone          string            `json:"mobile_phone"`
	Address              string            `json:"address"`
	Address2             string            `json:"address_2"`
	City                 string            `json:"city"`
	State                string            `json:"state"`
	Zip                  string            `json:"zip"`
	Location             string            `json:"location"`
	LinkedIn             string            `json:"linkedin"`
	Portfolio            string            `json:"portfolio"`
	CurrentJobTitle      string            `json:"current_job_title"`
	TotalExperienceYears string            `json:"total_experience_years"`
	Skills               []string          `json:"skills"`
	Education            []Education       `json:"education"`
	WorkExperience       []WorkExperience  `json:"work_experience"`
	CustomFields         map[string]string `json:"custom_fields,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// WorkExperience is one employment entry.
type WorkExperience struct {
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Normalize enforces the output invariants in place: trimmed strings and
// non-nil list fields.
func (r *ParsedResume) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.MobilePhone = strings.TrimSpace(r.MobilePhone)
	r.Address = strings.TrimSpace(r.Address)
	r.Address2 = strings.TrimSpace(r.Address2)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Zip = strings.TrimSpace(r.Zip)
	r.Location = strings.TrimSpace(r.Location)
	r.LinkedIn = strings.TrimSpace(r.LinkedIn)
	r.Portfolio = strings.TrimSpace(r.Portfolio)
	r.CurrentJobTitle = strings.TrimSpace(r.CurrentJobTitle)
	r.TotalExperienceYears = strings.TrimSpace(r.TotalExperienceYears)

	if r.Skills == nil {
		r.Skills = []string{}
	}
	for i := range r.Skills {
		r.Skills[i] = strings.TrimSpace(r.Skills[i])
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	for i := range r.Education {
		r.Education[i].Degree = strings.TrimSpace(r.Education[i].Degree)
		r.Education[i].Institution = strings.TrimSpace(r.Education[i].Institution)
		r.Education[i].Year = strings.TrimSpace(r.Education[i].Year)
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	for i := range r.WorkExperience {
		r.WorkExperience[i].Company = strings.TrimSpace(r.WorkExperience[i].Company)
		r.WorkExperience[i].JobTitle = strings.TrimSpace(r.WorkExperience[i].JobTitle)
		r.WorkExperience[i].StartDate = strings.TrimSpace(r.WorkExperience[i].StartDate)
		r.WorkExperience[i].EndDate = strings.TrimSpace(r.WorkExperience[i].EndDate)
		r.WorkExperience[i].Description = strings.TrimSpace(r.WorkExperience[i].Description)
	}
	for k, v := range r.CustomFields {
		r.CustomFields[k] = strings.TrimSpace(v)
	}
}
