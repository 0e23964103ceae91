// internal/app/system/mailer/templates.go
package mailer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Template kinds accepted by the send endpoint.
const (
	KindJobAcceptance = "job_acceptance"
	KindJobClosed     = "job_closed"
	KindUserConfirm   = "user_confirm"
)

var templateFiles = map[string]string{
	KindJobAcceptance: "job-acceptance-template.html",
	KindJobClosed:     "jobs-closed-template.html",
	KindUserConfirm:   "user-confirmation-template.html",
}

var defaultSubjects = map[string]string{
	KindJobAcceptance: "Cochran Films – Welcome to the Team",
	KindJobClosed:     "Cochran Films – Position Update",
	KindUserConfirm:   "Cochran Films – Contract Signed",
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([\w_.]+)\s*\}\}`)

// Render substitutes {{name}} placeholders from vars. Unknown placeholders
// render as empty strings rather than leaking braces to the recipient.
func Render(body string, vars map[string]string) string {
	if body == "" {
		return ""
	}
	return placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		key := strings.TrimSpace(placeholderRe.FindStringSubmatch(m)[1])
		return vars[key]
	})
}

// Templates loads and renders email bodies from a directory of HTML files.
type Templates struct {
	Dir string
}

// Known reports whether kind names a registered template.
func (t Templates) Known(kind string) bool {
	_, ok := templateFiles[strings.ToLower(kind)]
	return ok
}

// Build renders the named template into an Email. An empty subject falls
// back to the kind's default. A missing template file yields an empty body,
// matching the long-standing behavior of the hosted send endpoint.
func (t Templates) Build(kind, to, subject string, vars map[string]string) (Email, error) {
	kind = strings.ToLower(kind)
	file, ok := templateFiles[kind]
	if !ok {
		return Email{}, fmt.Errorf("unknown template %q", kind)
	}

	body := ""
	if t.Dir != "" {
		if raw, err := os.ReadFile(filepath.Join(t.Dir, file)); err == nil {
			body = string(raw)
		}
	}

	if subject == "" {
		subject = defaultSubjects[kind]
		if subject == "" {
			subject = "Cochran Films"
		}
	}

	return Email{
		To:       to,
		Subject:  subject,
		HTMLBody: Render(body, vars),
	}, nil
}
