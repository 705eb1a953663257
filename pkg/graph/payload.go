package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// RawGraph mirrors the JSON payload emitted by the extraction backend.
// Every field is optional on the wire; Normalize repairs whatever is
// missing. Node and edge ids are typed as any because the backend has been
// observed to emit numeric ids for spreadsheet-derived entities.
type RawGraph struct {
	Nodes []RawNode `json:"nodes,omitempty"`
	Edges []RawEdge `json:"edges,omitempty"`
}

type RawNode struct {
	ID       any           `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Name     string        `json:"name,omitempty"`
	Label    string        `json:"label,omitempty"`
	Center   *bool         `json:"center,omitempty"`
	Evidence []RawEvidence `json:"evidence,omitempty"`
}

type RawEdge struct {
	Source     any           `json:"source,omitempty"`
	Target     any           `json:"target,omitempty"`
	Type       string        `json:"type,omitempty"`
	Label      string        `json:"label,omitempty"`
	Confidence *float64      `json:"confidence,omitempty"`
	Evidence   []RawEvidence `json:"evidence,omitempty"`
}

type RawEvidence struct {
	SourceType  string `json:"source_type,omitempty"`
	SourceID    string `json:"source_id,omitempty"`
	Path        string `json:"path,omitempty"`
	Quote       string `json:"quote,omitempty"`
	SnippetHash string `json:"snippet_hash,omitempty"`
}

// Decode parses a raw payload into a RawGraph. An empty or null body decodes
// to the zero value. If strict decoding fails, the payload is run through
// jsonrepair once and re-parsed; the extraction backend occasionally emits
// truncated or slightly malformed JSON and a degraded graph beats a blocked
// client.
func Decode(data []byte) (RawGraph, error) {
	var raw RawGraph

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return raw, nil
	}

	if err := json.Unmarshal(trimmed, &raw); err == nil {
		return raw, nil
	}

	repaired, err := jsonrepair.JSONRepair(string(trimmed))
	if err != nil {
		return RawGraph{}, fmt.Errorf("failed to repair graph payload: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return RawGraph{}, fmt.Errorf("failed to decode graph payload: %w", err)
	}

	return raw, nil
}

// coerceID turns a loosely-typed wire id into a string. Absent or
// unrecognized values become the empty string, which is an accepted id.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	case bool:
		return strconv.FormatBool(id)
	default:
		return ""
	}
}
