// SPDX-License-Identifier: MPL-2.0

package report

import (
	"github.com/ConradoAlmeida/cheatsheets/internal/storecsv"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// Status is the overall outcome of a run.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Document is the serializable form of one validation run.
type Document struct {
	Path     string             `json:"path" yaml:"path" toml:"path"`
	Status   Status             `json:"status" yaml:"status" toml:"status"`
	Errors   int                `json:"errors" yaml:"errors" toml:"errors"`
	Warnings int                `json:"warnings" yaml:"warnings" toml:"warnings"`
	Findings []storecsv.Finding `json:"findings" yaml:"findings" toml:"findings"`
}

// NewDocument summarizes r for the file at path. failOnWarning decides whether
// warnings alone make the status failed.
func NewDocument(path types.FilesystemPath, r *storecsv.Report, failOnWarning bool) *Document {
	findings := r.Findings()
	if findings == nil {
		findings = []storecsv.Finding{}
	}

	status := StatusFailed
	if r.Passed(failOnWarning) {
		status = StatusPassed
	}

	return &Document{
		Path:     path.String(),
		Status:   status,
		Errors:   len(r.Errors()),
		Warnings: len(r.Warnings()),
		Findings: findings,
	}
}

// Passed reports whether the document's status is passed.
func (d *Document) Passed() bool {
	return d.Status == StatusPassed
}

func (d *Document) messages(sev storecsv.Severity) []string {
	var out []string
	for _, f := range d.Findings {
		if f.Severity == sev {
			out = append(out, f.Message)
		}
	}
	return out
}
