package models

import "time"

// RawDocument represents an uploaded resume after text extraction.
// It is immutable once the decoder has produced it.
type RawDocument struct {
	FileName      string `json:"file_name"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	MimeType      string `json:"mime_type"`
	Text          string `json:"text"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
	GPA         string `json:"gpa,omitempty"`
}

// Skills holds the extracted skill sets split by kind
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// Certification represents a certification entry
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language represents a spoken language and its proficiency level
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ExtractedProfile is the structured record produced by the extraction
// pipeline. Scalar fields are nil when nothing was found; list fields are
// always non-nil, possibly empty.
type ExtractedProfile struct {
	ID             string          `json:"id"`
	Name           *string         `json:"name"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	Address        *string         `json:"address"`
	Summary        *string         `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Interests      []string        `json:"interests"`
}

// NewExtractedProfile returns a profile with every list field initialized
func NewExtractedProfile() *ExtractedProfile {
	return &ExtractedProfile{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         Skills{Technical: []string{}, Soft: []string{}},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Interests:      []string{},
	}
}

// Normalize replaces nil list fields with empty slices so that the
// no-null-lists invariant holds even for profiles decoded from oracle JSON
func (p *ExtractedProfile) Normalize() {
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills.Technical == nil {
		p.Skills.Technical = []string{}
	}
	if p.Skills.Soft == nil {
		p.Skills.Soft = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
	if p.Languages == nil {
		p.Languages = []Language{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	for i := range p.Experience {
		if p.Experience[i].Responsibilities == nil {
			p.Experience[i].Responsibilities = []string{}
		}
	}
}

// Extraction method values recorded in ExtractionMetadata
const (
	MethodAIAugmented   = "AI-Augmented"
	MethodHeuristicOnly = "Heuristic-Only"
)

// ExtractionMetadata describes how a profile was extracted and how complete
// it looks. It is recomputed whenever the profile changes.
type ExtractionMetadata struct {
	Method             string    `json:"method"`
	Timestamp          time.Time `json:"timestamp"`
	SectionsIdentified []string  `json:"sections_identified"`
	CompletenessScore  float64   `json:"completeness_score"`
	ValidationIssues   []string  `json:"validation_issues"`
	ExtractionErrors   []string  `json:"extraction_errors"`
}

// NotSpecified is the display placeholder substituted by DisplayProfile for
// fields the extractors left empty. It never appears inside ExtractedProfile.
const NotSpecified = "Not Specified"

// DisplayProfile is the presentation form of an ExtractedProfile with
// placeholders substituted for missing values
type DisplayProfile struct {
	ExtractedProfile
	DisplayName    string `json:"display_name"`
	DisplayEmail   string `json:"display_email"`
	DisplayPhone   string `json:"display_phone"`
	DisplayAddress string `json:"display_address"`
}

// ForDisplay converts the profile into its presentation form, filling
// "Not Specified" placeholders for empty scalar fields and empty entry parts
func (p *ExtractedProfile) ForDisplay() *DisplayProfile {
	display := &DisplayProfile{
		ExtractedProfile: *p,
		DisplayName:      orPlaceholder(p.Name),
		DisplayEmail:     orPlaceholder(p.Email),
		DisplayPhone:     orPlaceholder(p.Phone),
		DisplayAddress:   orPlaceholder(p.Address),
	}

	display.Experience = make([]Experience, len(p.Experience))
	for i, exp := range p.Experience {
		if exp.Company == "" {
			exp.Company = "Company " + NotSpecified
		}
		if exp.Position == "" {
			exp.Position = "Position " + NotSpecified
		}
		if exp.Duration == "" {
			exp.Duration = "Duration " + NotSpecified
		}
		display.Experience[i] = exp
	}

	display.Education = make([]Education, len(p.Education))
	for i, edu := range p.Education {
		if edu.Institution == "" {
			edu.Institution = "Institution " + NotSpecified
		}
		if edu.Degree == "" {
			edu.Degree = "Degree " + NotSpecified
		}
		if edu.Dates == "" {
			edu.Dates = "Dates " + NotSpecified
		}
		display.Education[i] = edu
	}

	return display
}

func orPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return NotSpecified
	}
	return *value
}
