package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Payload discriminant values used in the JSON encoding.
const (
	payloadText  = "text"
	payloadList  = "list"
	payloadStats = "stats"
	payloadImage = "image"
)

// blockJSON is the wire form of ContentBlock. The payload is encoded with an
// explicit discriminant so the tagged union survives round-trips.
type blockJSON struct {
	ID              string          `json:"id"`
	Kind            BlockKind       `json:"kind"`
	PayloadKind     string          `json:"payload_kind,omitempty"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	Priority        Priority        `json:"priority"`
	EstimatedLength int             `json:"estimated_length"`
	Weight          VisualWeight    `json:"visual_weight"`
	Intent          string          `json:"intent,omitempty"`
	Styling         Styling         `json:"styling"`
}

// MarshalJSON encodes the block with its payload discriminant.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	out := blockJSON{
		ID:              b.ID,
		Kind:            b.Kind,
		PayloadKind:     "",
		Priority:        b.Priority,
		EstimatedLength: b.EstimatedLength,
		Weight:          b.Weight,
		Intent:          b.Intent,
		Styling:         b.Styling,
	}
	if b.Payload != nil {
		out.PayloadKind = b.Payload.payloadKind()
		data, err := json.Marshal(b.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", out.PayloadKind, err)
		}
		out.Payload = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the block, reconstructing the concrete payload type
// from the discriminant. An unknown discriminant is treated as no payload
// rather than an error, matching the pipeline's degrade-never-abort posture.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var in blockJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	b.ID = in.ID
	b.Kind = in.Kind
	b.Priority = in.Priority
	b.EstimatedLength = in.EstimatedLength
	b.Weight = in.Weight
	b.Intent = in.Intent
	b.Styling = in.Styling
	b.Payload = nil

	if len(in.Payload) == 0 {
		return nil
	}
	switch in.PayloadKind {
	case payloadText:
		var p TextPayload
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return fmt.Errorf("decode text payload: %w", err)
		}
		b.Payload = p
	case payloadList:
		var p ListPayload
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return fmt.Errorf("decode list payload: %w", err)
		}
		b.Payload = p
	case payloadStats:
		var p StatsPayload
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return fmt.Errorf("decode stats payload: %w", err)
		}
		b.Payload = p
	case payloadImage:
		var p ImagePayload
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return fmt.Errorf("decode image payload: %w", err)
		}
		b.Payload = p
	}
	return nil
}

// MarshalDeck encodes a complete deck as pretty-printed JSON.
// The output is deterministic for identical input and round-trips losslessly
// through [UnmarshalDeck].
func MarshalDeck(d *CompletePitchDeck) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalDeck decodes a deck previously produced by [MarshalDeck].
func UnmarshalDeck(data []byte) (*CompletePitchDeck, error) {
	var d CompletePitchDeck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &d, nil
}

// ReadOutline decodes a JSON outline from r.
func ReadOutline(r io.Reader) (Outline, error) {
	var o Outline
	if err := json.NewDecoder(r).Decode(&o); err != nil {
		return Outline{}, fmt.Errorf("decode outline: %w", err)
	}
	return o, nil
}

// MarshalOutline encodes an outline as canonical JSON. Used for hashing and
// cache keys as well as persistence.
func MarshalOutline(o Outline) ([]byte, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	return data, nil
}
