package nodeset

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeTable answers whether a node ID is known. *core.Graph satisfies it.
type NodeTable interface {
	HasNode(id uint64) bool
}

// String encodes the set as "[id1,id2,...]"; the empty set is "[]".
func (s NodeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, id := range s.ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(id, 10))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Parse decodes the String form. Whitespace around tokens is tolerated.
//
// Behavior highlights:
//   - IDs unknown to table are dropped silently.
//   - A nil table accepts every ID, which is what report-only resume needs.
//     Only an untyped nil counts: a nil *core.Graph stored in the interface
//     is a graph without nodes and drops every ID.
//
// Errors:
//   - ErrMalformed: missing brackets or a token that is not an unsigned integer.
func Parse(s string, table NodeTable) (NodeSet, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
		return NodeSet{}, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return NodeSet{}, nil
	}

	tokens := strings.Split(body, ",")
	ids := make([]uint64, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		id, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return NodeSet{}, fmt.Errorf("Parse(%q): token %q: %w", s, tok, ErrMalformed)
		}
		if table != nil && !table.HasNode(id) {
			continue
		}
		ids = append(ids, id)
	}

	return New(ids...), nil
}
