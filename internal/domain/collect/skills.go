package collect

import "strings"

// Skill lexicon scanned against posting text. Imported boards rarely ship a
// structured skill list, so the collector derives one from title and
// description by lexicon lookup. Casing here is the display casing.
var (
	technicalSkills = []string{
		"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust",
		"React", "Angular", "Vue", "Node.js", "Express", "Flask", "Django", "Spring",
		"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle",
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
		"Git", "GitHub", "Jenkins", "Linux", "Bash",
		"HTML", "CSS", "GraphQL", "REST", "gRPC",
		"TensorFlow", "PyTorch", "scikit-learn", "Spark", "Kafka",
	}

	domainSkills = []string{
		"Agile", "Scrum", "Kanban", "CI/CD", "DevOps", "Microservices",
		"Machine Learning", "Data Analysis", "Cloud Computing", "Security",
		"Testing", "Debugging", "Monitoring", "Automation", "Architecture",
		"Web Development", "Full-Stack",
	}
)

// ExtractSkills scans text for known skills and returns them in lexicon
// order, technical before domain, without duplicates. Matching is
// case-insensitive with word boundaries, so "Going" does not match "Go".
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, group := range [][]string{technicalSkills, domainSkills} {
		for _, skill := range group {
			if containsTerm(lower, strings.ToLower(skill)) {
				found = append(found, skill)
			}
		}
	}
	return found
}

// containsTerm reports whether term occurs in text delimited by word
// boundaries. Symbols that appear inside tech names (+ # . /) only join words
// when more word text follows them, so "node" does not match inside "node.js"
// but a sentence-final "Python." still matches Python.
func containsTerm(text, term string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start

		if isBoundary(text, i-1, -1) && isBoundary(text, i+len(term), +1) {
			return true
		}
		start = i + 1
	}
}

// isBoundary reports whether the character at idx separates a match from the
// rest of text. dir points away from the match.
func isBoundary(text string, idx, dir int) bool {
	if idx < 0 || idx >= len(text) {
		return true
	}

	c := rune(text[idx])
	if alnum(c) {
		return false
	}
	if c == '+' || c == '#' || c == '.' || c == '/' {
		next := idx + dir
		if next >= 0 && next < len(text) && alnum(rune(text[next])) {
			return false
		}
	}
	return true
}

func alnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}
