package extraction

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jmartin/jobmatch/internal/embedding"
	"github.com/jmartin/jobmatch/internal/types"
	"github.com/jmartin/jobmatch/internal/vocab"
)

// Extractor builds feature sets from résumés and job descriptions. The
// vocabularies are read-only after construction, so one Extractor may be
// shared by concurrent matches.
type Extractor struct {
	skills   *vocab.SkillVocabulary
	eduTable *vocab.EducationTable
	embedder embedding.Embedder
	logger   *zap.Logger

	// Now supplies the evaluation time used to resolve "present" dates.
	// Overridable in tests for reproducible durations.
	Now func() time.Time
}

// NewExtractor creates an Extractor. The embedder may be nil, in which case
// semantic vectors are left empty and the semantic subscore degrades to its
// neutral default. A nil logger disables extraction logging.
func NewExtractor(skills *vocab.SkillVocabulary, eduTable *vocab.EducationTable, embedder embedding.Embedder, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		skills:   skills,
		eduTable: eduTable,
		embedder: embedder,
		logger:   logger,
		Now:      time.Now,
	}
}

// ExtractResumeFeatures builds the feature set for a résumé. The document's
// declared skills are merged with skills found in the raw text, experience
// durations are resolved against the evaluation date, and the education
// level is the maximum rank across education entries. The returned features
// are computed once per résumé and treated as immutable afterwards.
func (e *Extractor) ExtractResumeFeatures(ctx context.Context, doc *types.ResumeDocument) *types.ResumeFeatures {
	eval := e.Now()

	rawText := resumeText(doc)
	skills := FindSkills(rawText, e.skills)
	for _, declared := range doc.Skills {
		// Declared skills are trusted only if the vocabulary knows them,
		// keeping the skill set closed over the configured phrases.
		if e.skills.Contains(declared) {
			skills.Add(declared)
		}
	}

	records := ResolveExperience(doc.Experience, eval, e.logger)

	return &types.ResumeFeatures{
		Skills:               skills,
		SkillList:            skills.Slice(),
		Experience:           records,
		TotalExperienceYears: TotalExperienceYears(records),
		EducationLevel:       HighestEducationLevel(doc.Education, e.eduTable),
		RawText:              rawText,
		SemanticVector:       e.embed(ctx, rawText),
	}
}

// ExtractJobFeatures builds the feature set for a single job description.
func (e *Extractor) ExtractJobFeatures(ctx context.Context, jobText string) *types.JobFeatures {
	required := FindSkills(jobText, e.skills)
	return &types.JobFeatures{
		RequiredSkills: required,
		SkillList:      required.Slice(),
		RawText:        jobText,
		SemanticVector: e.embed(ctx, jobText),
	}
}

// embed computes the semantic vector, degrading to nil on any failure.
// Embedding errors are reported through the logger as warnings; they never
// abort feature extraction.
func (e *Extractor) embed(ctx context.Context, text string) []float32 {
	if e.embedder == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	vector, err := e.embedder.Embed(ctx, text)
	if err != nil {
		e.logger.Warn("embedding failed, semantic subscore will use neutral default", zap.Error(err))
		return nil
	}
	return vector
}

// resumeText assembles the text used for skill extraction and the semantic
// vector. The raw text is preferred; structured fields fill in when the
// caller supplied no raw export.
func resumeText(doc *types.ResumeDocument) string {
	if strings.TrimSpace(doc.RawText) != "" {
		return doc.RawText
	}

	var sb strings.Builder
	sb.WriteString(doc.Summary)
	for _, exp := range doc.Experience {
		sb.WriteString("\n")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString("\n")
		sb.WriteString(exp.Description)
	}
	for _, edu := range doc.Education {
		sb.WriteString("\n")
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(doc.Skills, ", "))
	return strings.TrimSpace(sb.String())
}
