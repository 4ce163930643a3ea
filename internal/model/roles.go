package model

// AriaRoleMap maps element categories to the ARIA role suggested for them.
var AriaRoleMap = map[string]string{
	TypeButton:        "button",
	TypeSubmit:        "button",
	TypeTextInput:     "textbox",
	TypePasswordInput: "textbox",
	TypeEmailInput:    "textbox",
	TypeCheckbox:      "checkbox",
	TypeRadio:         "radio",
	TypeSelect:        "combobox",
	TypeTextarea:      "textbox",
	TypeLink:          "link",
}

// TestIDSuffix maps element categories to the suffix token appended to
// generated data-testid values.
var TestIDSuffix = map[string]string{
	TypeButton:        "button",
	TypeSubmit:        "button",
	TypeTextInput:     "input",
	TypePasswordInput: "input",
	TypeEmailInput:    "input",
	TypeCheckbox:      "checkbox",
	TypeRadio:         "radio",
	TypeSelect:        "select",
	TypeTextarea:      "textarea",
	TypeLink:          "link",
}

// MapAriaRole converts an element category to its suggested ARIA role.
// Unknown categories fall back to "button".
func MapAriaRole(elementType string) string {
	if role, ok := AriaRoleMap[elementType]; ok {
		return role
	}
	return "button"
}

// SuffixFor returns the data-testid suffix token for an element category.
func SuffixFor(elementType string) string {
	if s, ok := TestIDSuffix[elementType]; ok {
		return s
	}
	return "element"
}
