package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

func TestApp_Quickstart(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"hashtag-tally", "quickstart"}); err != nil {
		t.Fatalf("quickstart failed: %v", err)
	}
	if !strings.Contains(out.String(), "hashtag-tally map --input_path") {
		t.Errorf("quickstart output missing map example:\n%s", out.String())
	}
}

func TestApp_RequiredFlags(t *testing.T) {
	tests := [][]string{
		{"hashtag-tally", "map"},
		{"hashtag-tally", "topn", "--input_path", "x.lang"},
		{"hashtag-tally", "reduce", "a.lang"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			app := newApp()
			app.Writer = &bytes.Buffer{}
			app.ErrWriter = &bytes.Buffer{}
			if err := app.Run(args); err == nil {
				t.Errorf("Run(%v) error = nil, want missing flag error", args)
			}
		})
	}
}

func TestApp_MapThenTopN(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "geoTwitter20-02-01.zip")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("part-0")
	if err != nil {
		t.Fatal(err)
	}
	lines := []string{
		`{"text":"#Flu again","lang":"en","place":{"country_code":"US"}}`,
		`{"text":"tengo #flu","lang":"es","place":{"country_code":"MX"}}`,
		`{"text":"so #sick of the #flu","lang":"en","place":null}`,
	}
	if _, err := w.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(input, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "outputs")
	app := newApp()
	var stdout bytes.Buffer
	app.Writer = &stdout
	if err := app.Run([]string{"hashtag-tally", "map", "--input_path", input, "--output_folder", out, "--quiet"}); err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `"records": 3`) {
		t.Errorf("map summary = %s", stdout.String())
	}

	stdout.Reset()
	app = newApp()
	app.Writer = &stdout
	langPath := filepath.Join(out, "geoTwitter20-02-01.zip.lang")
	if err := app.Run([]string{"hashtag-tally", "topn", "--input_path", langPath, "--key", "#flu", "--format", "yaml", "--quiet"}); err != nil {
		t.Fatalf("topn failed: %v", err)
	}
	got := stdout.String()
	if !strings.Contains(got, "dimension: Language") || !strings.Contains(got, "label: en") {
		t.Errorf("topn summary = %s", got)
	}
	if _, err := os.Stat(langPath + "_top10.png"); err != nil {
		t.Errorf("topn chart missing: %v", err)
	}
}

func TestApp_LinePlotRejectsStrayKeys(t *testing.T) {
	dir := t.TempDir()
	day := filepath.Join(dir, "geoTwitter20-01-01.zip.lang")
	if err := os.WriteFile(day, []byte(`{"#flu":{"en":1},"#cough":{"en":2}}`), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "line.png")

	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run([]string{"hashtag-tally", "lineplot", "--input_paths", day, "--keys", "#flu", "#cough", "--output", output, "--quiet"})
	if err == nil || !strings.Contains(err.Error(), `"#cough"`) {
		t.Fatalf("lineplot error = %v, want error naming #cough", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("chart written despite error: %v", statErr)
	}

	var stdout bytes.Buffer
	app = newApp()
	app.Writer = &stdout
	if err := app.Run([]string{"hashtag-tally", "lineplot", "--input_paths", day, "--keys", "#flu,#cough", "--output", output, "--quiet"}); err != nil {
		t.Fatalf("lineplot with comma keys failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `"#cough": 2`) || !strings.Contains(stdout.String(), `"#flu": 1`) {
		t.Errorf("lineplot summary = %s", stdout.String())
	}
}

func TestApp_UnknownFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "geoTwitter20-02-01.zip")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("part-0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(`{"text":"#flu","lang":"en","place":null}` + "\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(input, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "outputs")

	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	if err := app.Run([]string{"hashtag-tally", "map", "--input_path", input, "--output_folder", out, "--format", "xml", "--quiet"}); err == nil {
		t.Fatal("map with --format xml error = nil, want error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output folder created despite bad format: %v", err)
	}
}
