package extractor

import (
	"regexp"
	"strings"

	"resumelens/pkg/models"
)

// technicalSkillNames is the dictionary checked for literal presence
// anywhere in the document (word-boundary, case-insensitive)
var technicalSkillNames = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Kotlin", "Swift", "Go",
	"Rust", "Ruby", "PHP", "C++", "C#", "Scala", "Perl", "R", "MATLAB",
	"Objective-C", "Dart", "Elixir", "Haskell",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap",
	"React", "Angular", "Vue", "Svelte", "Next.js", "Nuxt", "jQuery", "Redux",
	"Node.js", "Express", "Django", "Flask", "FastAPI", "Spring", "Rails",
	"Laravel", "ASP.NET", ".NET", "GraphQL", "REST", "gRPC",
	"SQL", "MySQL", "PostgreSQL", "SQLite", "MongoDB", "Redis", "Cassandra",
	"DynamoDB", "Elasticsearch", "Oracle", "MariaDB", "Neo4j", "Firebase",
	"AWS", "Azure", "GCP", "Heroku", "DigitalOcean", "Kubernetes", "Docker",
	"Terraform", "Ansible", "Jenkins", "CircleCI", "GitHub Actions", "GitLab",
	"Git", "SVN", "Linux", "Unix", "Bash", "PowerShell", "Nginx", "Apache",
	"Kafka", "RabbitMQ", "Spark", "Hadoop", "Airflow", "Snowflake",
	"TensorFlow", "PyTorch", "Keras", "scikit-learn", "Pandas", "NumPy",
	"OpenCV", "NLP", "Machine Learning", "Deep Learning", "Data Analysis",
	"Tableau", "Power BI", "Excel", "Jira", "Confluence", "Figma",
	"Selenium", "Cypress", "Jest", "JUnit", "Agile", "Scrum", "CI/CD",
	"Microservices", "DevOps",
}

// softSkillNames is the soft-skill dictionary; checked within the skills
// section when one exists, otherwise the whole document
var softSkillNames = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Critical Thinking", "Time Management", "Adaptability", "Creativity",
	"Collaboration", "Attention to Detail", "Decision Making", "Mentoring",
	"Negotiation", "Presentation", "Public Speaking", "Project Management",
	"Conflict Resolution", "Emotional Intelligence", "Organization",
	"Self-Motivation", "Work Ethic", "Interpersonal Skills", "Flexibility",
	"Analytical Thinking", "Customer Service",
}

// skillNoiseBlacklist filters pattern-pass tokens that are labels or degree
// words rather than skills
var skillNoiseBlacklist = []string{
	"skills", "skill", "technical", "soft", "languages", "tools", "other",
	"proficient", "familiar", "experienced", "knowledge", "bachelor",
	"master", "degree", "university", "college", "etc", "and", "various",
}

var skillSplitRegex = regexp.MustCompile(`\s*(?:[,;/•|]|\band\b|&)\s*`)

// ExtractSkills returns the technical and soft skills found by two
// independent passes: a delimiter-pattern pass over the skills section and a
// dictionary pass over the document. The union is deduplicated
// case-insensitively, first occurrence order preserved.
func ExtractSkills(text string) models.Skills {
	skills := models.Skills{Technical: []string{}, Soft: []string{}}
	section := Section(text, SectionSkills)

	seenTechnical := make(map[string]bool)
	seenSoft := make(map[string]bool)

	addTechnical := func(name string) {
		key := strings.ToLower(name)
		if !seenTechnical[key] {
			seenTechnical[key] = true
			skills.Technical = append(skills.Technical, name)
		}
	}
	addSoft := func(name string) {
		key := strings.ToLower(name)
		if !seenSoft[key] {
			seenSoft[key] = true
			skills.Soft = append(skills.Soft, name)
		}
	}

	// Pass 1: delimiter patterns inside the skills section
	for _, token := range patternPassTokens(section) {
		if term, ok := matchDictionary(token, softSkillNames); ok {
			addSoft(term)
			continue
		}
		if term, ok := matchDictionary(token, technicalSkillNames); ok {
			addTechnical(term)
			continue
		}
		addTechnical(token)
	}

	// Pass 2: dictionary presence over the full document
	for _, term := range technicalSkillNames {
		if containsTerm(text, term) {
			addTechnical(term)
		}
	}
	softScope := text
	if section != "" {
		softScope = section
	}
	for _, term := range softSkillNames {
		if containsTerm(softScope, term) {
			addSoft(term)
		}
	}

	return skills
}

// patternPassTokens pulls candidate skill tokens out of a skills section by
// splitting on the usual delimiters, title-casing and blacklist-filtering
func patternPassTokens(section string) []string {
	if section == "" {
		return nil
	}

	var tokens []string
	for _, raw := range strings.Split(section, "\n") {
		line := stripBullet(raw)
		if line == "" {
			continue
		}
		// drop a leading "Category:" label, keep the values after it
		if idx := strings.Index(line, ":"); idx >= 0 && idx < 40 {
			line = line[idx+1:]
		}
		for _, token := range skillSplitRegex.Split(line, -1) {
			token = strings.Trim(token, " .\t-–")
			if len(token) < 2 || len(token) > 40 {
				continue
			}
			if isSkillNoise(token) {
				continue
			}
			tokens = append(tokens, toTitleCase(token))
		}
	}
	return tokens
}

func isSkillNoise(token string) bool {
	lowered := strings.ToLower(token)
	for _, noise := range skillNoiseBlacklist {
		if lowered == noise {
			return true
		}
	}
	return false
}

// matchDictionary maps a free-form token onto its canonical dictionary
// spelling when the token matches a dictionary term case-insensitively
func matchDictionary(token string, dictionary []string) (string, bool) {
	lowered := strings.ToLower(token)
	for _, term := range dictionary {
		if lowered == strings.ToLower(term) {
			return term, true
		}
	}
	return "", false
}

// containsTerm reports whether term appears in text as a whole word,
// case-insensitively. Boundaries are any non-alphanumeric runes, which keeps
// terms like "C++" and "Node.js" matchable where \b falls short.
func containsTerm(text, term string) bool {
	lowerText := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)

	for from := 0; ; {
		idx := strings.Index(lowerText[from:], lowerTerm)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(lowerTerm)
		if boundaryAt(lowerText, start-1) && boundaryAt(lowerText, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryAt(text string, idx int) bool {
	if idx < 0 || idx >= len(text) {
		return true
	}
	c := text[idx]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
