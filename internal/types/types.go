package types

// Machine describes the settings a translation was produced with.
type Machine struct {
	Rotors      []string `json:"rotors"`
	Rings       []int    `json:"rings"`
	Reflector   string   `json:"reflector"`
	Plugboard   []string `json:"plugboard,omitempty"`
	Fingerprint string   `json:"fingerprint"`
}

// Translation is one message passed through the machine.
type Translation struct {
	Source  string   `json:"source,omitempty"` // file path, empty for inline input
	Input   string   `json:"input"`            // normalized letters
	Output  string   `json:"output"`           // grouped cipher text
	Letters int      `json:"letters"`
	Machine Machine  `json:"machine"`
	State   []string `json:"state"`            // rotors after the last letter, e.g. "I ring 1 (+4 steps)"
	Issues  []string `json:"issues,omitempty"` // configuration fallbacks applied
}
