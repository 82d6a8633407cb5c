package playbooks

import (
	"strings"

	"playbook-backend/internal/render"
)

// Defaults applied to blank form fields.
const (
	DefaultCompanyName   = "Your Company"
	DefaultPrimaryDriver = "Improve operations"
	DefaultRiskTolerance = "Moderate"
	DefaultTimeline      = "Standard (3-6 months)"
	DefaultLeadership    = "Cross-functional team"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Upload is one report file as received.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Request holds everything needed to generate one playbook.
type Request struct {
	CompanyName string
	Profile     render.Profile
	Readiness   Upload
	Toolbox     Upload
}

// Playbook is a generated document and where it was archived.
type Playbook struct {
	ID         string
	FileName   string
	StorageKey string
	Document   []byte
}

func (r *Request) applyDefaults() {
	r.CompanyName = orDefault(r.CompanyName, DefaultCompanyName)
	r.Profile.PrimaryDriver = orDefault(r.Profile.PrimaryDriver, DefaultPrimaryDriver)
	r.Profile.RiskTolerance = orDefault(r.Profile.RiskTolerance, DefaultRiskTolerance)
	r.Profile.Timeline = orDefault(r.Profile.Timeline, DefaultTimeline)
	r.Profile.Leadership = orDefault(r.Profile.Leadership, DefaultLeadership)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func storageKey(id string) string {
	return "playbooks/" + id + ".docx"
}
