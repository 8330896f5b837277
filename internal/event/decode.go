package event

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind classifies a decoded document.
type Kind int

const (
	KindMalformed Kind = iota
	KindUnknown
	KindAssignment
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindUnknown:
		return "unknown"
	case KindAssignment:
		return "assignment"
	default:
		return "invalid"
	}
}

// Document is one JSON document taken from a frame.
type Document struct {
	Kind       Kind
	Raw        string
	Assignment *AssignmentEvent // set for KindAssignment
	Err        error            // set for KindMalformed
}

// Classify decodes a single document. Only the type is read until it is
// known to be sku_assigned; any other type, or a type that is not a
// string, makes the document unknown.
func Classify(doc []byte) Document {
	d := Document{Raw: string(doc)}

	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		d.Err = ErrEmptyFrame
		return d
	}
	if trimmed[0] != '{' {
		d.Err = ErrNotObject
		return d
	}

	var env Envelope
	if err := json.Unmarshal(doc, &env); err != nil {
		d.Err = fmt.Errorf("decode envelope: %w", err)
		return d
	}

	if env.Name() != TypeSKUAssigned {
		d.Kind = KindUnknown
		return d
	}

	var ev AssignmentEvent
	if err := json.Unmarshal(doc, &ev); err != nil {
		d.Err = fmt.Errorf("decode %s: %w", TypeSKUAssigned, err)
		return d
	}
	if ev.Data.SKUs == nil {
		d.Err = ErrMissingPayload
		return d
	}

	d.Kind = KindAssignment
	d.Assignment = &ev
	return d
}

// Decode reads every JSON document in a frame, in order, and classifies
// each. The backend's write pump appends queued messages to the current
// frame separated by '\n', so one frame may carry several documents; a
// document may itself span lines.
//
// Text that is not valid JSON ends the frame: it is returned, together
// with everything after it, as one malformed document. A frame that is
// invalid from the start is therefore reported whole.
func Decode(frame []byte) []Document {
	if len(bytes.TrimSpace(frame)) == 0 {
		return []Document{{Kind: KindMalformed, Raw: string(frame), Err: ErrEmptyFrame}}
	}

	dec := json.NewDecoder(bytes.NewReader(frame))
	var docs []Document
	var offset int64

	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			rest := bytes.TrimSpace(frame[offset:])
			docs = append(docs, Document{
				Kind: KindMalformed,
				Raw:  string(rest),
				Err:  fmt.Errorf("decode frame: %w", err),
			})
			return docs
		}
		offset = dec.InputOffset()
		docs = append(docs, Classify(raw))
	}

	// More stops at a stray ']' or '}'.
	if rest := bytes.TrimSpace(frame[offset:]); len(rest) > 0 {
		docs = append(docs, Document{Kind: KindMalformed, Raw: string(rest), Err: ErrTrailingData})
	}

	return docs
}
