package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const peopleFile = "testdata/people.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderHTML(t *testing.T) {
	out, err := execute(t, "render", peopleFile)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{
		`<caption class="slot-table-caption">People</caption>`,
		`<tr class="slot-table-striped" data-key="2">`,
		`<td class="align-right">34</td>`,
		`<tfoot>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
	if strings.Contains(out, "<html") || strings.Contains(out, "hx-post") {
		t.Errorf("plain render should be a bare, inert table:\n%s", out)
	}
}

func TestRenderPage(t *testing.T) {
	out, err := execute(t, "render", peopleFile, "--page")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>People</title>", htmxScript, `id="toasts"`, "<table"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %s", want)
		}
	}
}

func TestRenderText(t *testing.T) {
	out, err := execute(t, "render", peopleFile, "--format", "text")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{"People", "Name", "Alice", "34", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<") {
		t.Errorf("text output contains markup:\n%s", out)
	}
}

func TestRenderOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.html")
	out, err := execute(t, "render", peopleFile, "-o", path)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Alice") {
		t.Errorf("file = %s", data)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no file", []string{"render"}, "accepts 1 arg"},
		{"missing file", []string{"render", "testdata/missing.yaml"}, "missing.yaml"},
		{"bad format", []string{"render", peopleFile, "--format", "csv"}, `unknown format "csv"`},
		{"page with text", []string{"render", peopleFile, "--format", "text", "--page"}, "--page requires"},
		{"bad log level", []string{"render", peopleFile, "--log-level", "loud"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("SLOTTABLE_RENDER_FORMAT", "text")

	out, err := execute(t, "render", peopleFile)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if strings.Contains(out, "<table") {
		t.Errorf("SLOTTABLE_RENDER_FORMAT ignored:\n%s", out)
	}

	out, err = execute(t, "render", peopleFile, "--format", "html")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "<table") {
		t.Error("command line flag should win over the environment")
	}
}

func TestEnvironmentVariablesInvalid(t *testing.T) {
	t.Setenv("SLOTTABLE_RENDER_PAGE", "maybe")

	_, err := execute(t, "render", peopleFile)
	if err == nil || !strings.Contains(err.Error(), envErrorPrefix) {
		t.Errorf("error = %v, want %q", err, envErrorPrefix)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Version: "+Version) || !strings.Contains(out, "Go Version: go") {
		t.Errorf("version output = %q", out)
	}
}

func TestGetLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "error"} {
		if _, err := getLevel(level); err != nil {
			t.Errorf("getLevel(%q) error = %v", level, err)
		}
	}
	if _, err := getLevel("trace-all"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRenderOutputFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "render", "testdata/missing.yaml", "-o", filepath.Join(dir, "out.html")); err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error = %v, want the render error", err)
	}
	if _, err := execute(t, "render", peopleFile, "-o", filepath.Join(dir, "no-such-dir", "out.html")); err == nil {
		t.Error("expected an error for an unwritable output path")
	}
}
