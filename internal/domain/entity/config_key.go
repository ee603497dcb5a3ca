package entity

// ConfigKeyInfo documents one configuration key, as listed by
// `dockyard config schema`. Values lists the accepted spellings of an enum
// key; Range is a readable bound such as "0-0.5" or ">=1".
type ConfigKeyInfo struct {
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	Range       string   `json:"range,omitempty"`
	Section     string   `json:"section"`
}
