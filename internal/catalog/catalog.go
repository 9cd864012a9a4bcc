//
// Package catalog holds the CMMC 2.0 / NIST SP 800-171 domains and
// controls that every assessment is scored against.
//
// The catalog is fixed at build time. Accessors hand out copies so the
// package-level tables can never be changed by a caller.
//
package catalog

//
// Domain is one NIST SP 800-171 requirement family.
//
type Domain struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
	NIST string `json:"nist"`
}

//
// Control is a single assessable requirement.
// Weight is the SPRS deduction charged when the control is not
// fully met; it must never be sent to a client, hence the json tag.
//
type Control struct {
	ID     string `json:"id"`
	Level  int    `json:"level"`
	Domain string `json:"domain"`
	NIST   string `json:"nist"`
	Weight int    `json:"-"`
	Text   string `json:"text"`
}

//
// PublicControl is the client-facing view of a Control.
// It has no weight field at all.
//
type PublicControl struct {
	ID     string `json:"id"`
	Level  int    `json:"level"`
	Domain string `json:"domain"`
	NIST   string `json:"nist"`
	Text   string `json:"text"`
}

// LevelTag returns "L1" or "L2".
func (c Control) LevelTag() string {
	if c.Level == 1 {
		return "L1"
	}
	return "L2"
}

// Public strips the weight from the control.
func (c Control) Public() PublicControl {
	return PublicControl{
		ID:     c.ID,
		Level:  c.Level,
		Domain: c.Domain,
		NIST:   c.NIST,
		Text:   c.Text,
	}
}

var controlIndex map[string]int

func init() {
	controlIndex = make(map[string]int, len(controls))
	for i, c := range controls {
		controlIndex[c.ID] = i
	}
}

//
// Domains returns the 14 domains in canonical display order.
//
func Domains() []Domain {
	out := make([]Domain, len(domains))
	copy(out, domains)
	return out
}

//
// Controls returns every control, grouped by domain in domain order
// and in declaration order within a domain.
//
func Controls() []Control {
	out := make([]Control, len(controls))
	copy(out, controls)
	return out
}

//
// PublicControls returns the weight-free view of Controls, same order.
// This is the only control list that may leave the server.
//
func PublicControls() []PublicControl {
	out := make([]PublicControl, 0, len(controls))
	for _, c := range controls {
		out = append(out, c.Public())
	}
	return out
}

// HasControl reports whether id names a catalog control.
func HasControl(id string) bool {
	_, ok := controlIndex[id]
	return ok
}

//
// DomainControls returns the controls of one domain in catalog order.
// An unknown abbreviation yields an empty slice.
//
func DomainControls(abbr string) []Control {
	var out []Control
	for _, c := range controls {
		if c.Domain == abbr {
			out = append(out, c)
		}
	}
	return out
}

// Len is the number of controls in the catalog.
func Len() int {
	return len(controls)
}
