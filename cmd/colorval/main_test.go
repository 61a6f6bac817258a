package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-colorval/pkg/colorval"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-v) = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("version output %q does not contain %q", stdout.String(), Version)
	}
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"name rgba", []string{"red"}, "1 0 0 1\n"},
		{"hex rgb8", []string{"-format", "rgb8", "#00ff00"}, "0 255 0\n"},
		{"hex with alpha rgba8", []string{"-format", "rgba8", "#0000ff80"}, "0 0 255 128\n"},
		{"tuple", []string{"-format", "rgb8", "1,0,0"}, "255 0 0\n"},
		{"alpha override", []string{"-alpha", "0.5", "black"}, "0 0 0 0.5\n"},
		{"hex output", []string{"-format", "hex", "r"}, "#ff0000\n"},
		{"hex output with alpha", []string{"-format", "hex", "#ff000080"}, "#ff000080\n"},
		{"hsv", []string{"-format", "hsv", "b"}, "240 1 1\n"},
		{"collection", []string{"-format", "rgb8", "r", "g", "0,0,1"}, "255 0 0\n0 255 0\n0 0 255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("run(%v) = %d, stderr: %s", tt.args, code, stderr.String())
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("run(%v) output = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no colors", nil, "No colors specified"},
		{"unknown name", []string{"notacolor"}, "unknown color name"},
		{"bad hex", []string{"#12345"}, "malformed hex color"},
		{"bad tuple", []string{"1,x,0"}, "invalid channel"},
		{"two channels", []string{"1,0"}, "3 or 4 channels"},
		{"unknown format", []string{"-format", "cmyk", "red"}, "unknown format"},
		{"missing config", []string{"-c", "/nonexistent/colorval.toml", "red"}, "configuration"},
		{"missing palette", []string{"-palette", "/nonexistent/palette.toml", "red"}, "palette"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Fatalf("run(%v) = %d, want 1", tt.args, code)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-alpha", "half", "red"}, &stdout, &stderr); code != 2 {
		t.Errorf("run with bad -alpha = %d, want 2", code)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunPalette(t *testing.T) {
	path := writeFile(t, "palette.toml", `
[colors]
brand = "#336699"
accent = [1.0, 0.5, 0.0]
`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-palette", path, "-format", "hex", "brand", "accent", "red"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	want := "#336699\n#ff8000\n#ff0000\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunPaletteFromConfig(t *testing.T) {
	pal := writeFile(t, "palette.toml", "[colors]\nbrand = \"#336699\"\n")
	t.Setenv("COLORVAL_PALETTE", pal)
	cfg := writeFile(t, "colorval.toml", `
[log]
level = "error"

[palette]
path = "${COLORVAL_PALETTE}"
`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfg, "-format", "rgb8", "brand"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "51 102 153\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunNames(t *testing.T) {
	path := writeFile(t, "palette.toml", "[colors]\nbrand = \"#336699\"\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-palette", path, "-names"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-names) = %d, stderr: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if lines[0] != "brand" {
		t.Errorf("first name = %q, want palette name first", lines[0])
	}
	found := false
	for _, l := range lines {
		if l == "cornflowerblue" {
			found = true
		}
	}
	if !found {
		t.Error("built-in name cornflowerblue not listed")
	}
}

func TestRunLua(t *testing.T) {
	script := writeFile(t, "script.lua", `
local r, g, b, a = color.rgba8("red")
print(r, g, b, a)
print(color.hex("#336699"))
`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-lua", script}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-lua) = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "255") || !strings.Contains(out, "#336699") {
		t.Errorf("lua output = %q", out)
	}
}

func TestRunLuaError(t *testing.T) {
	script := writeFile(t, "bad.lua", `color.parse("notacolor")`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-lua", script}, &stdout, &stderr); code != 1 {
		t.Fatalf("run(-lua) = %d, want 1", code)
	}
}

func TestRunWatchWithoutPalette(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-watch", "red"}, &stdout, &stderr); code != 1 {
		t.Fatalf("run(-watch) = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "requires a palette") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestParseColorArg(t *testing.T) {
	in, err := parseColorArg("0.1, 0.2, 0.3, 0.4")
	if err != nil {
		t.Fatalf("parseColorArg: %v", err)
	}
	ch, ok := in.(colorval.Channels)
	if !ok || len(ch) != 4 || ch[3] != 0.4 {
		t.Errorf("parseColorArg = %#v", in)
	}

	if _, ok := mustParse(t, "#ffffff").(colorval.Hex); !ok {
		t.Error("#ffffff should be a Hex input")
	}
	if _, ok := mustParse(t, "navy").(colorval.Name); !ok {
		t.Error("navy should be a Name input")
	}

	if _, err := parseColorArg("1,,0"); !errors.Is(err, colorval.ErrValue) {
		t.Errorf("parseColorArg(1,,0) error = %v, want ErrValue", err)
	}
}

func mustParse(t *testing.T, s string) colorval.Input {
	t.Helper()
	in, err := parseColorArg(s)
	if err != nil {
		t.Fatalf("parseColorArg(%q): %v", s, err)
	}
	return in
}

func TestRunNamesShadowedOnce(t *testing.T) {
	path := writeFile(t, "palette.toml", "[colors]\nred = \"#110000\"\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-palette", path, "-names"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-names) = %d, stderr: %s", code, stderr.String())
	}
	count := 0
	for _, l := range strings.Split(stdout.String(), "\n") {
		if l == "red" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("red listed %d times, want 1", count)
	}
}

func TestRunPaletteClampWarningLogged(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "colorval.log")
	pal := writeFile(t, "palette.toml", "[colors]\nhot = [2, 0, 0]\n")
	cfg := writeFile(t, "colorval.toml", "[log]\nlevel = \"warn\"\nfile = \""+filepath.ToSlash(logFile)+"\"\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfg, "-palette", pal, "-format", "hex", "hot"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "#ff0000\n" {
		t.Errorf("output = %q, want clamped red", got)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if n := strings.Count(string(data), "outside range"); n != 1 {
		t.Errorf("log has %d clamp warnings, want 1:\n%s", n, data)
	}
}
