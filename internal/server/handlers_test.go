package server

import (
	"strings"
	"testing"
)

type fakeTemplates struct {
	content string
	found   bool
}

func (f fakeTemplates) Load() (string, bool) { return f.content, f.found }

func TestWorkflowResult_MissingHTML(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"html_content": ""},
		{"html_content": "   \n"},
		{"html_content": 42},
	}
	for _, params := range cases {
		text, isErr := workflowResult(params, nil)
		if !isErr {
			t.Errorf("params %v: expected error result, got %q", params, text)
		}
		if !strings.Contains(text, "html_content") {
			t.Errorf("params %v: error should name the missing argument, got %q", params, text)
		}
	}
}

func TestWorkflowResult_NoStrategyPrompts(t *testing.T) {
	text, isErr := workflowResult(map[string]interface{}{
		"html_content": "<button>Save</button>",
	}, nil)
	if isErr {
		t.Fatalf("unexpected error result: %q", text)
	}
	if !strings.Contains(text, "choose a locator strategy") {
		t.Errorf("expected selection prompt, got:\n%s", text)
	}
}

func TestWorkflowResult_StrategyFromUserRequest(t *testing.T) {
	text, isErr := workflowResult(map[string]interface{}{
		"html_content": "<button>Save</button>",
		"user_request": "please annotate with the test-attribute-first strategy",
	}, nil)
	if isErr {
		t.Fatalf("unexpected error result: %q", text)
	}
	if !strings.Contains(text, `data-testid="save-button"`) {
		t.Errorf("user_request strategy should drive evaluation, got:\n%s", text)
	}
}

func TestWorkflowResult_ExplicitStrategyWins(t *testing.T) {
	text, _ := workflowResult(map[string]interface{}{
		"html_content": "<button>Save</button>",
		"strategy":     "aria-first",
		"user_request": "test-attribute-first",
	}, nil)
	if !strings.Contains(text, "Aria-first analysis") {
		t.Errorf("explicit strategy field should win over user_request, got:\n%s", text)
	}
}

func TestWorkflowResult_TemplateBypass(t *testing.T) {
	text, _ := workflowResult(map[string]interface{}{
		"html_content": "<button>Save</button>",
	}, fakeTemplates{content: "TEMPLATE", found: true})
	if !strings.HasPrefix(text, "TEMPLATE") {
		t.Errorf("template should bypass the built-in prompt, got:\n%s", text)
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"a": "x", "b": 7}
	if got := StringParam(params, "a", "d"); got != "x" {
		t.Errorf("got %q, want %q", got, "x")
	}
	if got := StringParam(params, "b", "d"); got != "d" {
		t.Errorf("non-string value should fall back to default, got %q", got)
	}
	if got := StringParam(params, "c", "d"); got != "d" {
		t.Errorf("missing key should fall back to default, got %q", got)
	}
}
