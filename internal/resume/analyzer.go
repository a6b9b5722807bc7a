// Package resume is the engine's boundary to the resume analysis
// collaborator. The engine treats analyzer internals as opaque: it hands in a
// raw document and a role and gets back a ResumeAnalysis used only for
// question personalization and feedback alignment.
package resume

import (
	"context"

	"github.com/mockview/mockview/internal/interview"
)

// Analyzer produces a ResumeAnalysis for a document against a role.
// Implementations may fail; the controller absorbs failures into a minimal
// zero-alignment analysis so the interview can proceed.
type Analyzer interface {
	Analyze(ctx context.Context, doc *interview.ResumeDocument, role *interview.JobRole) (*interview.ResumeAnalysis, error)
}
