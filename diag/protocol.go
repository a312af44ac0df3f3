package diag

import (
	"go.lsp.dev/protocol"

	"github.com/nota-format/nota/textpos"
)

const protocolSource = "nota"

// ProtocolRange converts a byte span to a protocol range using UTF-16
// columns. The mapper must have been built with UTF-16 tracking.
func ProtocolRange(m *textpos.Mapper, s Span) (protocol.Range, error) {
	start, err := m.UTF16Position(s.Start)
	if err != nil {
		return protocol.Range{}, err
	}
	end, err := m.UTF16Position(s.End)
	if err != nil {
		return protocol.Range{}, err
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line), Character: uint32(start.Col)},
		End:   protocol.Position{Line: uint32(end.Line), Character: uint32(end.Col)},
	}, nil
}

// ToProtocol converts diagnostics to protocol form for editor-facing
// consumers. All front-end stages map to error severity.
func ToProtocol(m *textpos.Mapper, ds []Diag) ([]protocol.Diagnostic, error) {
	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		rng, err := ProtocolRange(m, d.Span)
		if err != nil {
			return nil, err
		}
		out = append(out, protocol.Diagnostic{
			Range:    rng,
			Severity: protocol.DiagnosticSeverityError,
			Source:   protocolSource,
			Message:  d.Stage.String() + ": " + d.Msg,
		})
	}
	return out, nil
}
