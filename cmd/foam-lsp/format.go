package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/foam-tools/foamedit/encode"
)

// Formatting replaces the whole document with its canonical rendering.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.file == nil {
		return nil, nil
	}

	var buf strings.Builder
	if err := encode.Encode(doc.file.Get(""), &buf); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.text {
		return nil, nil
	}

	endLine := uint32(strings.Count(doc.text, "\n"))
	endChar := uint32(len(doc.text) - strings.LastIndexByte(doc.text, '\n') - 1)
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: endLine, Character: endChar},
		},
		NewText: formatted,
	}}, nil
}
