// Package vocab provides the fixed vocabularies used for feature extraction:
// the curated skill-phrase list and the education keyword table. Both are
// immutable after construction and injected into the extractor so tests can
// substitute smaller tables.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jmartin/jobmatch/internal/types"
)

// SkillVocabulary is a fixed list of recognized skill phrases. Phrases are
// stored lowercase; matching against text is done by the extraction package.
type SkillVocabulary struct {
	phrases []string
}

// NewSkillVocabulary builds a vocabulary from the given phrases,
// lowercasing and deduplicating them.
func NewSkillVocabulary(phrases []string) *SkillVocabulary {
	seen := make(map[string]struct{}, len(phrases))
	cleaned := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		cleaned = append(cleaned, normalized)
	}
	return &SkillVocabulary{phrases: cleaned}
}

// Contains reports whether the vocabulary holds the given phrase
// (case-insensitive).
func (v *SkillVocabulary) Contains(phrase string) bool {
	normalized := strings.ToLower(strings.TrimSpace(phrase))
	for _, p := range v.phrases {
		if p == normalized {
			return true
		}
	}
	return false
}

// FromFile loads a skill vocabulary from a JSON file containing an array of
// phrases.
func FromFile(path string) (*SkillVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	var phrases []string
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no phrases", path)
	}
	return NewSkillVocabulary(phrases), nil
}

// Phrases returns the vocabulary phrases in insertion order.
// The returned slice is a copy.
func (v *SkillVocabulary) Phrases() []string {
	out := make([]string, len(v.phrases))
	copy(out, v.phrases)
	return out
}

// Len returns the number of phrases in the vocabulary.
func (v *SkillVocabulary) Len() int {
	return len(v.phrases)
}

// DefaultSkills returns the default curated skill vocabulary spanning
// languages, frameworks, cloud platforms, data stores, and methodology terms.
func DefaultSkills() *SkillVocabulary {
	return NewSkillVocabulary([]string{
		"python", "javascript", "typescript", "java", "c++", "c#", "go", "rust",
		"react", "angular", "vue", "node.js", "express", "django", "flask",
		"fastapi", "spring",
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "git",
		"jenkins", "circleci", "github actions",
		"jira", "confluence", "agile", "scrum", "kanban",
		"sql", "nosql", "mongodb", "postgresql", "mysql", "oracle", "redis",
		"kafka", "rabbitmq", "elasticsearch",
		"machine learning", "deep learning", "data science", "data analysis",
		"nlp", "tableau", "power bi", "excel",
		"product management", "project management",
	})
}

// EducationTable maps degree keywords to ordinal education levels. Keyword
// matching is case-insensitive on whole-word boundaries; the highest-ranked
// keyword found wins.
type EducationTable struct {
	ranks map[string]types.EducationLevel
	// keywords sorted by descending length so longer phrases
	// ("high school") are tried before their substrings.
	keywords []string
}

// NewEducationTable builds an education table from keyword-to-level pairs.
func NewEducationTable(ranks map[string]types.EducationLevel) *EducationTable {
	table := &EducationTable{
		ranks:    make(map[string]types.EducationLevel, len(ranks)),
		keywords: make([]string, 0, len(ranks)),
	}
	for keyword, level := range ranks {
		normalized := strings.ToLower(strings.TrimSpace(keyword))
		if normalized == "" {
			continue
		}
		table.ranks[normalized] = level
		table.keywords = append(table.keywords, normalized)
	}
	sort.Slice(table.keywords, func(i, j int) bool {
		if len(table.keywords[i]) != len(table.keywords[j]) {
			return len(table.keywords[i]) > len(table.keywords[j])
		}
		return table.keywords[i] < table.keywords[j]
	})
	return table
}

// Keywords returns the table keywords, longest first.
func (t *EducationTable) Keywords() []string {
	out := make([]string, len(t.keywords))
	copy(out, t.keywords)
	return out
}

// Rank returns the level for a keyword, or LevelNone if unknown.
func (t *EducationTable) Rank(keyword string) types.EducationLevel {
	return t.ranks[strings.ToLower(strings.TrimSpace(keyword))]
}

// DefaultEducation returns the default degree keyword table.
func DefaultEducation() *EducationTable {
	return NewEducationTable(map[string]types.EducationLevel{
		"phd":           types.LevelDoctorate,
		"ph.d":          types.LevelDoctorate,
		"doctorate":     types.LevelDoctorate,
		"doctorates":    types.LevelDoctorate,
		"doctoral":      types.LevelDoctorate,
		"master":        types.LevelMaster,
		"masters":       types.LevelMaster,
		"msc":           types.LevelMaster,
		"m.s":           types.LevelMaster,
		"m.a":           types.LevelMaster,
		"mba":           types.LevelMaster,
		"bachelor":      types.LevelBachelor,
		"bachelors":     types.LevelBachelor,
		"bsc":           types.LevelBachelor,
		"b.s":           types.LevelBachelor,
		"b.a":           types.LevelBachelor,
		"associate":     types.LevelAssociate,
		"associates":    types.LevelAssociate,
		"a.s":           types.LevelAssociate,
		"a.a":           types.LevelAssociate,
		"certificate":   types.LevelAssociate,
		"certification": types.LevelAssociate,
		"diploma":       types.LevelAssociate,
	})
}
