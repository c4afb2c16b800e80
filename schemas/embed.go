// Package schemas embeds the JSON Schemas for persisted and exchanged documents.
package schemas

import "embed"

// Schema file names
const (
	EntrySchema          = "entry.schema.json"
	AnalyzeRequestSchema = "analyze_request.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema file
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// names lists the embedded schema files
func names() []string {
	return []string{EntrySchema, AnalyzeRequestSchema}
}
