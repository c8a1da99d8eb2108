package mcp

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Filekit resources.
const uriScheme = "filekit://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the format table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Supported format categories and the extension table",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)
}

// handleFormatsResource returns the format table as JSON.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	caps := s.ports.Reader.Capabilities()
	formats := make([]FormatInfo, 0, len(caps))
	for format, available := range caps {
		formats = append(formats, FormatInfo{Format: string(format), Available: available})
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i].Format < formats[j].Format })

	extensions := s.ports.Reader.SupportedExtensions()
	sort.Strings(extensions)

	payload, err := json.Marshal(map[string]any{
		"formats":    formats,
		"extensions": extensions,
	})
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}, nil
}
