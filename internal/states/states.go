// Package states holds the fixed set of supported states plus their DMV
// reference data (requirements, fees, office locations). This is read-only
// seed data, not database-backed.
package states

type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Fees struct {
	Written float64 `json:"written"`
	Road    float64 `json:"road"`
	Renewal float64 `json:"renewal"`
}

type Requirements struct {
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	MinAge            int      `json:"minAge"`
	RequiredDocuments []string `json:"requiredDocuments"`
	TestRequirements  []string `json:"testRequirements"`
	Fees              Fees     `json:"fees"`
}

type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// Codes is the supported-state universe, in display order.
var Codes = []string{"CA", "TX", "FL", "NY"}

func Valid(code string) bool {
	for _, c := range Codes {
		if c == code {
			return true
		}
	}
	return false
}

// List returns the supported states as {code, name} pairs.
func List() []State {
	out := make([]State, 0, len(Codes))
	for _, c := range Codes {
		out = append(out, State{Code: c, Name: requirements[c].Name})
	}
	return out
}

// ByCode returns the requirements for a state, false if unsupported.
func ByCode(code string) (Requirements, bool) {
	r, ok := requirements[code]
	return r, ok
}

// LocationsByCode returns the DMV offices for a state, false if unsupported.
func LocationsByCode(code string) ([]Location, bool) {
	l, ok := locations[code]
	return l, ok
}
