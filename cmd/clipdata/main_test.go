package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExtractStrings_usageErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "emojis.json")
	writeFile(t, file, `[]`)

	tests := []struct {
		name string
		args []string
	}{
		{"no_args", []string{"extract-strings"}},
		{"one_arg", []string{"extract-strings", "out.pot"}},
		{"three_args", []string{"extract-strings", "a", "b", "c"}},
		{"missing_dir", []string{"extract-strings", filepath.Join(dir, "out.pot"), filepath.Join(dir, "nope")}},
		{"not_a_dir", []string{"extract-strings", filepath.Join(dir, "out.pot"), file}},
		{"bad_log_level", []string{"--log-level", "loud", "extract-strings", "out.pot", dir}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(t, tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, "clipdata: ") {
				t.Errorf("stderr = %q, want clipdata: prefix", stderr)
			}
		})
	}
}

func TestExtractStrings_nothingToDo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "countries.json"), `[{"name": "Germany"}]`)
	out := filepath.Join(dir, "po", "clip.pot")

	code, stdout, _ := run(t, "extract-strings", out, dir)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "No JSON files found to process.") {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("template should not be written: %v", err)
	}
}

func TestExtractStrings_writesTemplate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "emojis.json"), `{"data": [{"name": "Coffee", "keywords": ["hot", "drink"]}]}`)
	writeFile(t, filepath.Join(dir, "broken.json"), `{`)
	out := filepath.Join(dir, "po", "clip.pot")

	code, stdout, stderr := run(t, "extract-strings", out, dir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "3 unique strings") || !strings.Contains(stdout, "1 file(s) could not be processed") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "broken.json") {
		t.Errorf("failure should be logged with the file name, stderr = %q", stderr)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "#: broken.json, emojis.json\nmsgid \"Coffee\"\nmsgstr \"\"\n") {
		t.Errorf("template = %s", content)
	}
}

func TestExtractStrings_metricsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "emojis.json"), `[{"name": "Coffee", "keywords": ["hot"]}]`)
	writeFile(t, filepath.Join(dir, "countries.json"), `[]`)
	writeFile(t, filepath.Join(dir, "broken.json"), `{`)
	metricsFile := filepath.Join(t.TempDir(), "clipdata.prom")

	code, _, stderr := run(t, "extract-strings", "--metrics-file", metricsFile, filepath.Join(dir, "clip.pot"), dir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	prom, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`clipdata_data_files_total{outcome="extracted"} 1`,
		`clipdata_data_files_total{outcome="failed"} 1`,
		`clipdata_data_files_total{outcome="skipped"} 1`,
		`clipdata_strings_extracted_total 2`,
	} {
		if !strings.Contains(string(prom), want) {
			t.Errorf("metrics missing %q:\n%s", want, prom)
		}
	}
}

const cliManifest = `<gresources>
  <gresource prefix="/org/example/clip">
    <file>ui/window.ui</file>
  </gresource>
</gresources>
`

func countryServer(t *testing.T, apiStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/all", func(w http.ResponseWriter, r *http.Request) {
		if apiStatus != http.StatusOK {
			w.WriteHeader(apiStatus)
			return
		}
		fmt.Fprintf(w, `[
			{"name": {"common": "Germany"}, "cca2": "DE", "idd": {"root": "+4", "suffixes": ["9"]}, "flags": {"svg": "%[1]s/flags/de.svg"}},
			{"name": {"common": "Antarctica"}, "cca2": "AQ", "idd": {}, "flags": {"svg": "%[1]s/flags/aq.svg"}}
		]`, srv.URL)
	})
	mux.HandleFunc("/flags/de.svg", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<svg>de</svg>")
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCountries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "all-in-one-clipboard.gresource.xml"), cliManifest)
	metricsFile := filepath.Join(t.TempDir(), "clipdata.prom")
	srv := countryServer(t, http.StatusOK)

	code, stdout, stderr := run(t, "countries", "--root", root, "--api-url", srv.URL+"/all", "--metrics-file", metricsFile)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "Wrote 1 countries") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "run_id") {
		t.Errorf("logs should carry a run id: %q", stderr)
	}

	records, err := os.ReadFile(filepath.Join(root, "assets", "data", "json", "countries.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(records), `"flag_path": "resource:///org/example/clip/assets/data/svg/de.svg"`) {
		t.Errorf("countries.json = %s", records)
	}
	manifest, err := os.ReadFile(filepath.Join(root, "all-in-one-clipboard.gresource.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(manifest), "      <file>assets/data/svg/de.svg</file>\n  </gresource>") {
		t.Errorf("manifest = %s", manifest)
	}
	prom, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(prom), "clipdata_records_dropped_total 1") {
		t.Errorf("metrics = %s", prom)
	}
}

func TestCountries_apiFailureWritesNothing(t *testing.T) {
	root := t.TempDir()
	srv := countryServer(t, http.StatusNotFound)

	code, _, stderr := run(t, "countries", "--root", root, "--api-url", srv.URL+"/all")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr, "clipdata: fetch country data") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "assets")); !os.IsNotExist(err) {
		t.Errorf("nothing should be created on transport failure: %v", err)
	}
}
