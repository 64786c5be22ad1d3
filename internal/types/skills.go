// Package types provides type definitions for structured data used throughout the jobmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SkillSet is an ordered, deduplicated set of normalized lowercase skill
// tokens. Insertion order is preserved so skill lists derived from a job
// description keep the order in which the skills appear in the text.
type SkillSet struct {
	skills []string
	index  map[string]struct{}
}

// NewSkillSet creates a SkillSet from the given skills. Each skill is
// lowercased and trimmed; duplicates and empty strings are dropped.
func NewSkillSet(skills ...string) *SkillSet {
	s := &SkillSet{index: make(map[string]struct{})}
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

// Add inserts a skill into the set, normalizing to lowercase.
// Duplicates and empty strings are ignored.
func (s *SkillSet) Add(skill string) {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, exists := s.index[normalized]; exists {
		return
	}
	s.index[normalized] = struct{}{}
	s.skills = append(s.skills, normalized)
}

// Contains reports whether the set holds the given skill (case-insensitive).
func (s *SkillSet) Contains(skill string) bool {
	if s == nil || s.index == nil {
		return false
	}
	_, exists := s.index[strings.ToLower(strings.TrimSpace(skill))]
	return exists
}

// Len returns the number of skills in the set.
func (s *SkillSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.skills)
}

// Slice returns the skills in insertion order. The returned slice is a copy.
func (s *SkillSet) Slice() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

// Intersect returns the skills of s that are also in other, preserving the
// insertion order of s.
func (s *SkillSet) Intersect(other *SkillSet) []string {
	if s == nil || other == nil {
		return []string{}
	}
	matched := make([]string, 0, len(s.skills))
	for _, skill := range s.skills {
		if other.Contains(skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// Subtract returns the skills of s that are not in other, preserving the
// insertion order of s.
func (s *SkillSet) Subtract(other *SkillSet) []string {
	if s == nil {
		return []string{}
	}
	missing := make([]string, 0, len(s.skills))
	for _, skill := range s.skills {
		if !other.Contains(skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}
