package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
)

const selfEmployedApp = `{
	"program": "Conventional",
	"employment_type": "SelfEmployed",
	"self_employed": {
		"business_type": "LLC",
		"business_start_date": "2024-01-01",
		"ownership_percent": 100
	}
}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := rootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEvaluate_JSONFromFile(t *testing.T) {
	path := writeFile(t, "app.json", selfEmployedApp)

	out, err := execute(t, "", "evaluate", "-f", path, "--now", "2025-06-15")
	require.NoError(t, err)

	var result checklist.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Required)
	assert.Equal(t, catalog.GovtID, result.Required[0].ID)
	assert.Contains(t, checklist.IDs(result.Required), catalog.K1Last2Y)
	assert.Empty(t, result.Clarifications)
}

func TestEvaluate_OverlaysChangeTaxYears(t *testing.T) {
	app := writeFile(t, "app.json", `{
		"program": "Conventional",
		"employment_type": "SelfEmployed",
		"self_employed": {"business_type": "SoleProp", "business_start_date": "2015-01-01"}
	}`)
	overlays := writeFile(t, "overlays.yaml", "defaultBusinessReturnsYears: 1\n")

	out, err := execute(t, "", "evaluate", "-f", app, "--now", "2025-06-15")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.TaxReturnPersonal1040Year2)

	out, err = execute(t, "", "evaluate", "-f", app, "--now", "2025-06-15", "--overlays", overlays)
	require.NoError(t, err)
	assert.Contains(t, out, catalog.TaxReturnPersonal1040Year1)
	assert.NotContains(t, out, catalog.TaxReturnPersonal1040Year2)
}

func TestEvaluate_TextFromStdin(t *testing.T) {
	out, err := execute(t, `{"program":"VA","employment_type":"W2"}`, "evaluate", "-f", "-", "-o", "text")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Required ("))
	assert.Contains(t, out, "Nice to have (")
	assert.Contains(t, out, checklist.ClarifyVAService)
	assert.Contains(t, out, "rules: R-G-01")
}

func TestEvaluate_Errors(t *testing.T) {
	good := writeFile(t, "app.json", selfEmployedApp)

	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr string
	}{
		{"missing file flag", []string{"evaluate"}, "", `required flag(s) "file" not set`},
		{"unreadable file", []string{"evaluate", "-f", filepath.Join(t.TempDir(), "nope.json")}, "", "read application"},
		{"malformed json", []string{"evaluate", "-f", "-"}, "{", "decode application"},
		{"bad date", []string{"evaluate", "-f", good, "--now", "15/06/2025"}, "", "--now must be YYYY-MM-DD"},
		{"bad output", []string{"evaluate", "-f", good, "-o", "yaml"}, "", `unsupported output format "yaml"`},
		{"unknown enum", []string{"evaluate", "-f", "-"}, `{"program":"Jumbo"}`, "validation_error: program has unsupported value \"Jumbo\""},
		{"unknown employment in text mode", []string{"evaluate", "-f", "-", "-o", "text"}, `{"program":"FHA","employment_type":"Contractor"}`, "employment_type has unsupported value"},
		{"ownership out of range", []string{"evaluate", "-f", "-"}, `{"employment_type":"SelfEmployed","self_employed":{"ownership_percent":250}}`, "ownership_percent must be between 0 and 100"},
		{"explain rejects unknown program", []string{"explain", "-f", "-"}, `{"program":"Jumbo"}`, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NotContains(t, out, "Required (")
		})
	}
}

func TestExplain(t *testing.T) {
	path := writeFile(t, "app.json", selfEmployedApp)

	out, err := execute(t, "", "explain", "-f", path, "--now", "2025-06-15")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "R-G-01: Required for all borrowers")
	assert.Contains(t, lines, "R-SE-02: Ownership ≥25% requires K-1")
}

func TestExplain_JSON(t *testing.T) {
	path := writeFile(t, "app.json", selfEmployedApp)

	out, err := execute(t, "", "explain", "-f", path, "--now", "2025-06-15", "-o", "json")
	require.NoError(t, err)

	var body map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.NotEmpty(t, body["explanations"])
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.GovtID)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(catalog.Default().All()))

	out, err = execute(t, "", "catalog", "-o", "json")
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, catalog.Default().All(), entries)
}

func TestRules(t *testing.T) {
	out, err := execute(t, "", "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(checklist.Rules()))
	assert.True(t, strings.HasPrefix(lines[0], "R-G-01"))
	assert.Contains(t, out, "(conditional)")
}

func TestVersion(t *testing.T) {
	original := version
	version = "test-1.2.3"
	defer func() { version = original }()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "doccheck version test-1.2.3")
}
