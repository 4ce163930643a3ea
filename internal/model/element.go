package model

// Element represents one interactive HTML element found by the scanner.
type Element struct {
	Position    int    `yaml:"pos"              json:"pos"`              // 1-based, document order
	Type        string `yaml:"type"             json:"type"`             // Element category, e.g. "button"
	Text        string `yaml:"text,omitempty"   json:"text,omitempty"`   // Inner text, or placeholder/value for inputs
	Attrs       string `yaml:"attrs,omitempty"  json:"attrs,omitempty"`  // Raw attribute substring from the opening tag
	FullElement string `yaml:"element"          json:"element"`          // Complete matched markup span
	Offset      int    `yaml:"-"                json:"-"`                // Byte offset of the match in the source

	HasTestID    bool   `yaml:"has-testid,omitempty"     json:"has-testid,omitempty"`
	HasAriaLabel bool   `yaml:"has-aria-label,omitempty" json:"has-aria-label,omitempty"`
	HasAriaRole  bool   `yaml:"has-role,omitempty"       json:"has-role,omitempty"`
	AriaLabel    string `yaml:"aria-label,omitempty"     json:"aria-label,omitempty"`
	AriaRole     string `yaml:"role,omitempty"           json:"role,omitempty"`

	NeedsTestID        bool   `yaml:"needs-testid"                  json:"needs-testid"`
	Reason             string `yaml:"reason,omitempty"              json:"reason,omitempty"`
	SuggestedTestID    string `yaml:"testid,omitempty"              json:"testid,omitempty"`
	SuggestedAriaLabel string `yaml:"suggest-aria-label,omitempty"  json:"suggest-aria-label,omitempty"`
	SuggestedAriaRole  string `yaml:"suggest-role,omitempty"        json:"suggest-role,omitempty"`
}

// Element categories recognized by the scanner.
const (
	TypeButton        = "button"
	TypeTextInput     = "text input"
	TypePasswordInput = "password input"
	TypeEmailInput    = "email input"
	TypeCheckbox      = "checkbox"
	TypeRadio         = "radio button"
	TypeSubmit        = "submit button"
	TypeSelect        = "select"
	TypeTextarea      = "textarea"
	TypeLink          = "link"
)

// InputLike reports whether the category reads its text from the
// placeholder/value attributes rather than from tag content.
func InputLike(elementType string) bool {
	switch elementType {
	case TypeTextInput, TypePasswordInput, TypeEmailInput, TypeCheckbox, TypeRadio, TypeSubmit:
		return true
	}
	return false
}
