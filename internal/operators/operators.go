// Package operators maps 511 operator IDs to display names.
package operators

import "sort"

// Operator describes a transit operator known to the 511 API
type Operator struct {
	ID   string // Operator/agency ID as used in API query parameters
	Abbr string // Short label for narrow display columns
	Name string // Full operator name
}

// registry of Bay Area operators by 511 operator ID
var registry = map[string]Operator{
	"AC": {ID: "AC", Abbr: "AC", Name: "AC Transit"},
	"BA": {ID: "BA", Abbr: "BART", Name: "Bay Area Rapid Transit"},
	"CC": {ID: "CC", Abbr: "CCCTA", Name: "County Connection"},
	"CE": {ID: "CE", Abbr: "ACE", Name: "Altamont Corridor Express"},
	"CT": {ID: "CT", Abbr: "CT", Name: "Caltrain"},
	"GF": {ID: "GF", Abbr: "GGF", Name: "Golden Gate Ferry"},
	"GG": {ID: "GG", Abbr: "GGT", Name: "Golden Gate Transit"},
	"SA": {ID: "SA", Abbr: "SMART", Name: "Sonoma-Marin Area Rail Transit"},
	"SB": {ID: "SB", Abbr: "SFBF", Name: "San Francisco Bay Ferry"},
	"SC": {ID: "SC", Abbr: "VTA", Name: "Santa Clara Valley Transportation Authority"},
	"SF": {ID: "SF", Abbr: "Muni", Name: "San Francisco Municipal Transportation Agency"},
	"SM": {ID: "SM", Abbr: "SamTrans", Name: "San Mateo County Transit District"},
	"UC": {ID: "UC", Abbr: "Union City", Name: "Union City Transit"},
	"VN": {ID: "VN", Abbr: "VINE", Name: "Napa Valley Transportation Authority"},
	"WC": {ID: "WC", Abbr: "WestCAT", Name: "Western Contra Costa Transit Authority"},
}

// GetOperator returns the operator for an ID, or nil if unknown
func GetOperator(id string) *Operator {
	op, ok := registry[id]
	if !ok {
		return nil
	}
	return &op
}

// GetOperatorName returns the full name for an ID, or the ID itself if
// unknown (unknown operators are still queryable)
func GetOperatorName(id string) string {
	if op := GetOperator(id); op != nil {
		return op.Name
	}
	return id
}

// All returns all known operators sorted by ID
func All() []Operator {
	ops := make([]Operator, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].ID < ops[j].ID
	})
	return ops
}
