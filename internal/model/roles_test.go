package model

import "testing"

func TestMapAriaRole_KnownTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{TypeButton, "button"},
		{TypeSubmit, "button"},
		{TypeTextInput, "textbox"},
		{TypePasswordInput, "textbox"},
		{TypeEmailInput, "textbox"},
		{TypeCheckbox, "checkbox"},
		{TypeRadio, "radio"},
		{TypeSelect, "combobox"},
		{TypeTextarea, "textbox"},
		{TypeLink, "link"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapAriaRole(tt.input)
			if got != tt.want {
				t.Errorf("MapAriaRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapAriaRole_UnknownFallback(t *testing.T) {
	unknowns := []string{"slider", "progress", "SomethingElse", ""}
	for _, typ := range unknowns {
		got := MapAriaRole(typ)
		if got != "button" {
			t.Errorf("MapAriaRole(%q) = %q, want %q", typ, got, "button")
		}
	}
}

func TestSuffixFor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{TypeButton, "button"},
		{TypeSubmit, "button"},
		{TypeTextInput, "input"},
		{TypePasswordInput, "input"},
		{TypeEmailInput, "input"},
		{TypeCheckbox, "checkbox"},
		{TypeRadio, "radio"},
		{TypeSelect, "select"},
		{TypeTextarea, "textarea"},
		{TypeLink, "link"},
		{"bogus", "element"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SuffixFor(tt.input)
			if got != tt.want {
				t.Errorf("SuffixFor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputLike(t *testing.T) {
	inputLike := []string{TypeTextInput, TypePasswordInput, TypeEmailInput, TypeCheckbox, TypeRadio, TypeSubmit}
	for _, typ := range inputLike {
		if !InputLike(typ) {
			t.Errorf("InputLike(%q) = false, want true", typ)
		}
	}
	contentLike := []string{TypeButton, TypeSelect, TypeTextarea, TypeLink, "other"}
	for _, typ := range contentLike {
		if InputLike(typ) {
			t.Errorf("InputLike(%q) = true, want false", typ)
		}
	}
}
