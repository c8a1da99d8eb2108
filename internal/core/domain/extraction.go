package domain

// Extraction is the normalised text produced from a single file.
// The text may differ from the source bytes (re-indented JSON,
// re-joined CSV rows) while preserving informational content.
type Extraction struct {
	// Path is the file the text was read from.
	Path string

	// Format is the resolved format category.
	Format Format

	// Text is the normalised UTF-8 payload.
	Text string
}
