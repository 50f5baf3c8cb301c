// Package labeling contains the Labeling bounded context.
// This context lays out part labels (part numbers, quantities, floor-stock
// locations and workstation colours) on fixed 3in x 1in cells of a landscape
// US-Letter sheet, and models the product lines and workstations those labels
// are grouped under.
package labeling
