package mcp

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadTextInput is the input schema for the read_text_from_file tool.
type ReadTextInput struct {
	Path string `json:"path" jsonschema:"path of the file to read"`
}

// ReadTextOutput is the output schema for the read_text_from_file tool.
type ReadTextOutput struct {
	OpStatus
	Content string `json:"content,omitempty"`
	Format  string `json:"format,omitempty"`
}

// DetectFormatInput is the input schema for the detect_format tool.
type DetectFormatInput struct {
	Path string `json:"path" jsonschema:"path whose extension should be classified"`
}

// DetectFormatOutput is the output schema for the detect_format tool.
type DetectFormatOutput struct {
	OpStatus
	Format string `json:"format,omitempty"`
}

// FormatInfo describes one format category and its availability.
type FormatInfo struct {
	Format    string `json:"format"`
	Available bool   `json:"available"`
}

// ListFormatsOutput is the output schema for the list_formats tool.
type ListFormatsOutput struct {
	OpStatus
	Formats    []FormatInfo `json:"formats"`
	Extensions []string     `json:"extensions"`
}

// registerReaderTools registers the extraction tool handlers.
func (s *Server) registerReaderTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "read_text_from_file",
		Description: "Read a file and return its normalised text. Supports plain text, " +
			"JSON, XML, CSV/TSV, XLSX spreadsheets, DOCX documents, HTML and YAML, " +
			"selected by file extension.",
	}, s.handleReadText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_format",
		Description: "Classify a file's structural format from its extension without reading it.",
	}, s.handleDetectFormat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_formats",
		Description: "List the supported format categories, their availability and the extension table.",
	}, s.handleListFormats)
}

func (s *Server) handleReadText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadTextInput,
) (*mcp.CallToolResult, ReadTextOutput, error) {
	extraction, err := s.ports.Reader.Extract(ctx, input.Path)
	if err != nil {
		return nil, ReadTextOutput{OpStatus: statusFor(err)}, nil
	}
	return nil, ReadTextOutput{
		OpStatus: statusFor(nil),
		Content:  extraction.Text,
		Format:   string(extraction.Format),
	}, nil
}

func (s *Server) handleDetectFormat(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DetectFormatInput,
) (*mcp.CallToolResult, DetectFormatOutput, error) {
	format, err := s.ports.Reader.Detect(input.Path)
	if err != nil {
		return nil, DetectFormatOutput{OpStatus: statusFor(err)}, nil
	}
	return nil, DetectFormatOutput{
		OpStatus: statusFor(nil),
		Format:   string(format),
	}, nil
}

func (s *Server) handleListFormats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListFormatsOutput, error) {
	caps := s.ports.Reader.Capabilities()
	formats := make([]FormatInfo, 0, len(caps))
	for format, available := range caps {
		formats = append(formats, FormatInfo{Format: string(format), Available: available})
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i].Format < formats[j].Format })

	extensions := s.ports.Reader.SupportedExtensions()
	sort.Strings(extensions)

	return nil, ListFormatsOutput{
		OpStatus:   statusFor(nil),
		Formats:    formats,
		Extensions: extensions,
	}, nil
}
