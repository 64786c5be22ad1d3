// Package extraction turns free-text résumés and job descriptions into
// structured feature sets: skills, experience years, education level, and a
// semantic vector.
package extraction

import (
	"sort"
	"strings"

	"github.com/jmartin/jobmatch/internal/types"
	"github.com/jmartin/jobmatch/internal/vocab"
)

// FindSkills scans text for vocabulary phrases and returns the matched
// skills ordered by their first occurrence in the text. A phrase counts as
// present only on a whole-token boundary: "java" does not match inside
// "javascript", and multi-word phrases like "machine learning" must appear
// as a phrase. Skills outside the vocabulary are never found; that is the
// deliberate recall/precision trade-off of keyword extraction.
func FindSkills(text string, vocabulary *vocab.SkillVocabulary) *types.SkillSet {
	found := types.NewSkillSet()
	if strings.TrimSpace(text) == "" {
		return found
	}

	textLower := strings.ToLower(text)

	type hit struct {
		skill string
		pos   int
	}
	hits := make([]hit, 0, 16)
	for _, phrase := range vocabulary.Phrases() {
		if pos := indexWithBoundary(textLower, phrase); pos >= 0 {
			hits = append(hits, hit{skill: phrase, pos: pos})
		}
	}

	// Order by first occurrence; ties broken by phrase for determinism.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].skill < hits[j].skill
	})

	for _, h := range hits {
		found.Add(h.skill)
	}
	return found
}

// indexWithBoundary returns the index of the first occurrence of phrase in
// text that sits on whole-token boundaries, or -1 if there is none. Both
// inputs must already be lowercase. A boundary requires that the characters
// adjacent to the occurrence are not letters or digits; punctuation that is
// part of the phrase itself ("c++", "node.js") needs no special casing.
func indexWithBoundary(text, phrase string) int {
	if phrase == "" {
		return -1
	}
	from := 0
	for {
		rel := strings.Index(text[from:], phrase)
		if rel < 0 {
			return -1
		}
		pos := from + rel
		end := pos + len(phrase)
		if boundaryBefore(text, pos) && boundaryAfter(text, end) {
			return pos
		}
		from = pos + 1
	}
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	return !isWordChar(text[pos-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	return !isWordChar(text[end])
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
