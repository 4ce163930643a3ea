package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/autotestid/autotestid-cli/internal/model"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func sampleResult() ScanResult {
	return ScanResult{
		Source: "form.html",
		Count:  1,
		Elements: []model.Element{
			{Position: 1, Type: model.TypeButton, Text: "Save", FullElement: "<button>Save</button>", SuggestedTestID: "save-button", NeedsTestID: true},
		},
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult(), false)
	})

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded ScanResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Source != "form.html" {
		t.Errorf("source: got %q, want %q", decoded.Source, "form.html")
	}
	if len(decoded.Elements) != 1 {
		t.Errorf("elements: got %d, want 1", len(decoded.Elements))
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult(), true)
	})

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}

	var decoded ScanResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestPrintJSON_NoHTMLEscaping(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult(), false)
	})
	if bytes.Contains([]byte(out), []byte(`\u003c`)) {
		t.Errorf("markup should not be HTML-escaped:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte(`<button>`)) {
		t.Errorf("markup should appear verbatim:\n%s", out)
	}
}

func TestScanResult_OmitEmpty(t *testing.T) {
	result := ScanResult{Elements: []model.Element{}}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["source"]; ok {
		t.Error("empty source should be omitted")
	}
	if _, ok := m["count"]; !ok {
		t.Error("count should always be present")
	}
}

func TestPrint_FormatSwitch(t *testing.T) {
	defer func() {
		OutputFormat = FormatYAML
		PrettyOutput = false
	}()

	OutputFormat = FormatJSON
	out := captureStdout(t, func() error {
		return Print(sampleResult())
	})
	var decoded ScanResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("FormatJSON did not produce JSON: %v", err)
	}

	OutputFormat = Format("bogus")
	if err := Print(sampleResult()); err == nil {
		t.Error("unsupported format should error")
	}
}
