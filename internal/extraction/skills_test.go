package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmartin/jobmatch/internal/vocab"
)

func testVocabulary() *vocab.SkillVocabulary {
	return vocab.NewSkillVocabulary([]string{
		"python", "java", "javascript", "c++", "node.js",
		"machine learning", "aws", "react", "docker",
	})
}

func TestFindSkills_WholeWordMatch(t *testing.T) {
	skills := FindSkills("Strong Python and AWS background", testVocabulary())

	assert.ElementsMatch(t, []string{"python", "aws"}, skills.Slice())
}

func TestFindSkills_NoPartialWordMatch(t *testing.T) {
	// "java" must not match inside "javascript"
	skills := FindSkills("Expert in JavaScript", testVocabulary())

	assert.Equal(t, []string{"javascript"}, skills.Slice())
	assert.False(t, skills.Contains("java"))
}

func TestFindSkills_PhraseMatch(t *testing.T) {
	skills := FindSkills("background in machine learning systems", testVocabulary())

	assert.Equal(t, []string{"machine learning"}, skills.Slice())
}

func TestFindSkills_PhraseNotSplitAcrossWords(t *testing.T) {
	// "machine" and "learning" present separately is not the phrase
	skills := FindSkills("machine operator, learning on the job", testVocabulary())

	assert.False(t, skills.Contains("machine learning"))
}

func TestFindSkills_PunctuationInSkillName(t *testing.T) {
	skills := FindSkills("We use Node.js and C++ daily.", testVocabulary())

	assert.ElementsMatch(t, []string{"node.js", "c++"}, skills.Slice())
}

func TestFindSkills_CaseInsensitive(t *testing.T) {
	skills := FindSkills("PYTHON, Docker, ReAcT", testVocabulary())

	assert.ElementsMatch(t, []string{"python", "docker", "react"}, skills.Slice())
}

func TestFindSkills_EncounterOrderPreserved(t *testing.T) {
	skills := FindSkills("docker first, then aws, then python", testVocabulary())

	assert.Equal(t, []string{"docker", "aws", "python"}, skills.Slice())
}

func TestFindSkills_EmptyText(t *testing.T) {
	skills := FindSkills("   ", testVocabulary())

	assert.Equal(t, 0, skills.Len())
}

func TestFindSkills_OutsideVocabularyIgnored(t *testing.T) {
	skills := FindSkills("Deep expertise in Haskell and Erlang", testVocabulary())

	assert.Equal(t, 0, skills.Len())
}
