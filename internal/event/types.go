package event

import (
	"encoding/json"
	"errors"
)

// TypeSKUAssigned is the only event type the monitor renders.
const TypeSKUAssigned = "sku_assigned"

// DefaultPreviewLimit is how many unassigned SKUs a summary lists.
const DefaultPreviewLimit = 5

// Errors
var (
	ErrEmptyFrame     = errors.New("empty frame")
	ErrMissingPayload = errors.New("sku_assigned without data.skus")
	ErrNotObject      = errors.New("message is not a JSON object")
	ErrTrailingData   = errors.New("unexpected data after JSON document")
)

// Envelope is the part of a room message read before its type is known.
// Other fields vary per message type and are left undecoded.
type Envelope struct {
	Type json.RawMessage `json:"type"`
}

// Name returns the message type, or "" when it is missing or not a string.
func (e Envelope) Name() string {
	var name string
	if err := json.Unmarshal(e.Type, &name); err != nil {
		return ""
	}
	return name
}

// SKU is one entry of an assignment snapshot.
type SKU struct {
	ID           int     `json:"id"`
	SKU          string  `json:"sku"`
	Percentage   float64 `json:"percentage"`
	IsAssigned   bool    `json:"is_assigned"`
	IsMasterCase bool    `json:"is_master_case"`
	SealerID     *int    `json:"sealer_id"` // output lane, nil when unassigned
}

// AssignmentData is the payload of a sku_assigned event.
type AssignmentData struct {
	SKUs []SKU `json:"skus"`
}

// AssignmentEvent is a decoded sku_assigned message.
type AssignmentEvent struct {
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"` // RFC 3339 from the backend, free text otherwise
	SorterID  int            `json:"sorter_id"`
	Data      AssignmentData `json:"data"`
}

// Summary is the display-ready split of an assignment event.
type Summary struct {
	Total           int
	Assigned        []SKU // all assigned SKUs, input order
	UnassignedCount int
	Unassigned      []SKU // first PreviewLimit unassigned SKUs, input order
	Remaining       int   // unassigned SKUs not listed
}
