package labeling

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultWorkstationColor is used when a side carries no usable colour
const DefaultWorkstationColor = "#FFFFFF"

// Side identifies which half of a label a LabelSide is printed on
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// String returns the string representation of Side
func (s Side) String() string {
	return string(s)
}

// LabelSide is one printable half of a label
type LabelSide struct {
	PartNumber       string `json:"part_number"`
	AltPartNumber    string `json:"alt_part_number"`
	Quantity         string `json:"quantity"`
	AFrameLocation   string `json:"a_frame_location"`
	WorkstationName  string `json:"workstation_name,omitempty"`
	WorkstationColor string `json:"workstation_color,omitempty"`
}

// UnmarshalJSON decodes a side leniently: null, numbers and booleans are
// accepted for any field and missing fields stay empty.
func (s *LabelSide) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = LabelSide{
		PartNumber:       looseString(raw["part_number"]),
		AltPartNumber:    looseString(raw["alt_part_number"]),
		Quantity:         looseString(raw["quantity"]),
		AFrameLocation:   looseString(raw["a_frame_location"]),
		WorkstationName:  looseString(raw["workstation_name"]),
		WorkstationColor: looseString(raw["workstation_color"]),
	}
	return nil
}

// HasPartNumber reports whether the side will be drawn at all
func (s LabelSide) HasPartNumber() bool {
	return strings.TrimSpace(s.PartNumber) != ""
}

// Color returns the workstation colour, falling back to white
func (s LabelSide) Color() string {
	if strings.TrimSpace(s.WorkstationColor) == "" {
		return DefaultWorkstationColor
	}
	return strings.TrimSpace(s.WorkstationColor)
}

// LabelRecord is one physical label with a left and a right side
type LabelRecord struct {
	Left  LabelSide `json:"left"`
	Right LabelSide `json:"right"`
}

// IsEligible reports whether the record occupies a cell on the sheet
func (r LabelRecord) IsEligible() bool {
	return r.Left.HasPartNumber() || r.Right.HasPartNumber()
}

// EligibleRecords drops records without a part number on either side,
// preserving the order of the rest. The input slice is not modified.
func EligibleRecords(records []LabelRecord) []LabelRecord {
	out := make([]LabelRecord, 0, len(records))
	for _, r := range records {
		if r.IsEligible() {
			out = append(out, r)
		}
	}
	return out
}

// looseString turns a JSON scalar into a string; anything else is empty
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return "true"
		}
		return "false"
	}
	return ""
}
