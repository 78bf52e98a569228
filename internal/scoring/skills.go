// internal/scoring/skills.go
package scoring

import (
	"regexp"
	"strings"
)

// Canonical skill names mapped to the synonyms that identify them. Order is
// fixed so extraction output is deterministic.
var skillDictionary = []struct {
	name     string
	synonyms []string
}{
	// Programming languages
	{"javascript", []string{"javascript", "js", "node", "nodejs"}},
	{"python", []string{"python", "python3", "py"}},
	{"java", []string{"java", "jvm"}},
	{"csharp", []string{"csharp", "c#", "dotnet", "cplus"}},
	{"cpp", []string{"cpp", "c++"}},
	{"rust", []string{"rust"}},
	{"go", []string{"golang", "go"}},
	{"typescript", []string{"typescript", "ts"}},

	// Frontend
	{"react", []string{"react", "reactjs", "react.js"}},
	{"vue", []string{"vue", "vuejs"}},
	{"angular", []string{"angular", "angularjs"}},
	{"html/css", []string{"html", "css", "scss", "sass", "bootstrap"}},

	// Backend
	{"nodejs", []string{"nodejs", "express", "nestjs"}},
	{"python_backend", []string{"django", "flask", "fastapi", "sqlalchemy"}},
	{"java_spring", []string{"spring", "springboot"}},
	{"dotnet", []string{"dotnet", "aspnet"}},

	// Databases
	{"postgresql", []string{"postgresql", "postgres", "psql"}},
	{"mysql", []string{"mysql"}},
	{"mongodb", []string{"mongodb", "mongo"}},
	{"redis", []string{"redis"}},
	{"dynamodb", []string{"dynamodb"}},
	{"elasticsearch", []string{"elasticsearch"}},

	// Cloud and DevOps
	{"aws", []string{"aws", "amazon", "ec2", "s3"}},
	{"gcp", []string{"gcp", "google cloud"}},
	{"azure", []string{"azure", "microsoft azure"}},
	{"docker", []string{"docker", "dockerize"}},
	{"kubernetes", []string{"kubernetes", "k8s"}},
	{"jenkins", []string{"jenkins"}},
	{"github", []string{"github", "git"}},
	{"gitlab", []string{"gitlab"}},

	// Data and AI
	{"tensorflow", []string{"tensorflow", "tf"}},
	{"pytorch", []string{"pytorch"}},
	{"scikit", []string{"scikit-learn", "sklearn"}},
	{"pandas", []string{"pandas"}},
	{"numpy", []string{"numpy"}},
	{"spark", []string{"spark", "apache spark"}},
	{"hadoop", []string{"hadoop"}},

	// Testing
	{"jest", []string{"jest"}},
	{"pytest", []string{"pytest"}},
	{"mocha", []string{"mocha"}},
	{"rspec", []string{"rspec"}},

	// Other
	{"sql", []string{"sql", "plsql"}},
	{"api", []string{"api", "rest", "restful", "graphql"}},
	{"agile", []string{"agile", "scrum", "kanban"}},
	{"microservices", []string{"microservices"}},
	{"ci_cd", []string{"cicd", "ci/cd", "continuous integration"}},
}

// synonymMatcher matches one synonym, by word-boundary regex when the
// synonym compiles into one, by substring containment otherwise.
type synonymMatcher struct {
	re      *regexp.Regexp
	literal string
}

func (m synonymMatcher) match(lowerText string) bool {
	if m.re != nil {
		return m.re.MatchString(lowerText)
	}
	return strings.Contains(lowerText, m.literal)
}

func newSynonymMatcher(synonym string) synonymMatcher {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(synonym) + `\b`)
	if err != nil {
		return synonymMatcher{literal: synonym}
	}
	return synonymMatcher{re: re, literal: synonym}
}

var skillMatchers = buildSkillMatchers()

func buildSkillMatchers() map[string][]synonymMatcher {
	matchers := make(map[string][]synonymMatcher, len(skillDictionary))
	for _, entry := range skillDictionary {
		list := make([]synonymMatcher, 0, len(entry.synonyms))
		for _, syn := range entry.synonyms {
			list = append(list, newSynonymMatcher(syn))
		}
		matchers[entry.name] = list
	}
	return matchers
}

// ExtractSkills returns the canonical names of every dictionary skill whose
// synonyms appear in the text. Each skill is reported once, in dictionary
// order.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, entry := range skillDictionary {
		for _, m := range skillMatchers[entry.name] {
			if m.match(lower) {
				found = append(found, entry.name)
				break
			}
		}
	}
	return found
}
