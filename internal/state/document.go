package state

import (
	"path/filepath"
	"strings"

	"docchat/internal/api"
)

// allowedExtensions are the file types the backend can ingest. Anything else
// is rejected locally, before a request is issued.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".txt":  {},
	".docx": {},
}

// DocumentGate tracks whether a document is available for the active
// interaction and whether chat requests should be grounded in it.
type DocumentGate struct {
	hasDocument bool
	useDocument bool
	fileName    string
}

// NewDocumentGate starts with no document and grounding disabled.
func NewDocumentGate() *DocumentGate {
	return &DocumentGate{}
}

// ValidateFilename rejects unsupported extensions with a validation error.
func ValidateFilename(name string) error {
	extension := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[extension]; !ok {
		return api.NewValidationError("unsupported file type %q: use .pdf, .txt or .docx", extension)
	}
	return nil
}

// MarkUploaded records a successful upload and auto-enables document mode.
func (g *DocumentGate) MarkUploaded(fileName string) {
	g.hasDocument = true
	g.useDocument = true
	g.fileName = fileName
}

// Toggle flips document mode. It is rejected while no document is loaded.
func (g *DocumentGate) Toggle() error {
	if !g.hasDocument {
		return api.NewValidationError("no document uploaded yet")
	}
	g.useDocument = !g.useDocument
	return nil
}

// HasDocument reports whether a document was successfully processed.
func (g *DocumentGate) HasDocument() bool { return g.hasDocument }

// UseDocument reports whether the next chat request should be grounded.
func (g *DocumentGate) UseDocument() bool { return g.useDocument }

// FileName returns the name of the uploaded document, or "".
func (g *DocumentGate) FileName() string { return g.fileName }
