// Package coverletter renders plain text cover letters from a resume and a
// match report.
package coverletter

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jmartin/jobmatch/internal/types"
)

//go:embed letter.txt.tmpl
var defaultTemplate string

// maxSkillMentions limits how many matched skills the letter calls out.
const maxSkillMentions = 5

// TemplateData is the data structure passed to the cover letter template.
type TemplateData struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	RoleTitle      string
	MatchingSkills []string
	Strengths      []string
	OverallScore   float64
}

// BuildData assembles template data from a resume document and match report.
// The strongest matched skills and the report's strengths become the letter's
// talking points.
func BuildData(doc *types.ResumeDocument, report *types.MatchReport, company, roleTitle string) TemplateData {
	data := TemplateData{
		Company:   company,
		RoleTitle: roleTitle,
	}

	if doc != nil {
		data.Name = doc.Contact.Name
		data.Email = doc.Contact.Email
		data.Phone = doc.Contact.Phone
	}
	if data.Name == "" {
		data.Name = "The Candidate"
	}

	if report != nil {
		data.OverallScore = report.OverallScore
		data.Strengths = report.Strengths

		skills := report.MatchingSkills
		if len(skills) > maxSkillMentions {
			skills = skills[:maxSkillMentions]
		}
		data.MatchingSkills = skills
	}

	return data
}

// Render executes the cover letter template with the given data. An empty
// templatePath uses the built-in template.
func Render(data TemplateData, templatePath string) (string, error) {
	content := defaultTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("coverletter").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(content)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Message: "failed to execute template", Cause: err}
	}

	return strings.TrimSpace(sb.String()) + "\n", nil
}
