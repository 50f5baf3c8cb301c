package labeling

import (
	"strings"

	"github.com/erp/labeler/internal/domain/shared"
)

// ProductLine groups workstations on the shop floor
type ProductLine struct {
	Name string `json:"name"`
}

// NewProductLine trims and validates a product line name
func NewProductLine(name string) (ProductLine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProductLine{}, shared.NewDomainError("INVALID_INPUT", "Product line name cannot be empty")
	}
	return ProductLine{Name: name}, nil
}

// Workstation owns an ordered set of labels and the colour printed on them
type Workstation struct {
	Name        string        `json:"name"`
	ProductLine string        `json:"product_line"`
	Color       string        `json:"color"`
	Labels      []LabelRecord `json:"labels"`
}

// Validate checks the fields required to store a workstation
func (w Workstation) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Workstation name cannot be empty")
	}
	return nil
}

// UniqueLabels returns the workstation's labels with empty and duplicate left
// part numbers removed; the first occurrence of a part number wins.
func (w Workstation) UniqueLabels() []LabelRecord {
	seen := make(map[string]struct{}, len(w.Labels))
	out := make([]LabelRecord, 0, len(w.Labels))
	for _, l := range w.Labels {
		pn := strings.TrimSpace(l.Left.PartNumber)
		if pn == "" {
			continue
		}
		if _, dup := seen[pn]; dup {
			continue
		}
		seen[pn] = struct{}{}
		out = append(out, l)
	}
	return out
}

// PartLocation is where a part number appears across the workstations
type PartLocation struct {
	ProductLine     string `json:"product_line"`
	WorkstationName string `json:"workstation_name"`
	AFrameLocation  string `json:"a_frame_location"`
	Side            Side   `json:"side"`
}

// FindPart lists every label side carrying partNumber, in workstation order
func FindPart(workstations []Workstation, partNumber string) []PartLocation {
	pn := strings.TrimSpace(partNumber)
	if pn == "" {
		return nil
	}
	var hits []PartLocation
	for _, ws := range workstations {
		for _, l := range ws.Labels {
			for _, s := range []struct {
				side Side
				data LabelSide
			}{{SideLeft, l.Left}, {SideRight, l.Right}} {
				if strings.TrimSpace(s.data.PartNumber) != pn {
					continue
				}
				hits = append(hits, PartLocation{
					ProductLine:     ws.ProductLine,
					WorkstationName: ws.Name,
					AFrameLocation:  s.data.AFrameLocation,
					Side:            s.side,
				})
			}
		}
	}
	return hits
}
