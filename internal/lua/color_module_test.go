package lua

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/go-colorval/pkg/colorval"
)

func newColorRuntime(t *testing.T, opts ...ColorModuleOption) *Runtime {
	t.Helper()
	runtime, err := New(RuntimeConfig{CPULimit: 1_000_000, MemoryLimit: 10 * 1024 * 1024})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	t.Cleanup(func() { runtime.Close() })

	opts = append([]ColorModuleOption{WithLogger(colorval.NopLogger())}, opts...)
	if _, err := NewColorModule(runtime, opts...); err != nil {
		t.Fatalf("failed to create color module: %v", err)
	}
	return runtime
}

func runString(t *testing.T, runtime *Runtime, code string) string {
	t.Helper()
	result, err := runtime.ExecuteString("test", code)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	s, ok := result.TryString()
	if !ok {
		t.Fatalf("expected string result, got %v", result)
	}
	return s
}

func TestNewColorModuleNilRuntime(t *testing.T) {
	if _, err := NewColorModule(nil); !errors.Is(err, ErrNilRuntime) {
		t.Errorf("expected ErrNilRuntime, got %v", err)
	}
}

func TestColorModuleFunctions(t *testing.T) {
	runtime := newColorRuntime(t)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"parse name", `return string.format("%.2f,%.2f,%.2f,%.2f", color.parse("red"))`, "1.00,0.00,0.00,1.00"},
		{"parse hex alpha", `return string.format("%.3f", select(4, color.parse("#ff000000")))`, "0.000"},
		{"parse alpha override", `return string.format("%.1f", select(4, color.parse("#ff000000", 0.5)))`, "0.5"},
		{"parse table", `return string.format("%.1f,%.1f,%.1f,%.1f", color.parse({0, 1, 0, 0.5}))`, "0.0,1.0,0.0,0.5"},
		{"rgba8", `return string.format("%d,%d,%d,%d", color.rgba8("#1a2b3c80"))`, "26,43,60,128"},
		{"hex", `return color.hex("orange")`, "#ffa500"},
		{"hex from table", `return color.hex({0, 0, 1})`, "#0000ff"},
		{"hsv", `return string.format("%.0f,%.0f,%.0f", color.hsv("g"))`, "120,1,1"},
		{"darker", `return string.format("%.2f", color.darker("red", 0.5))`, "0.50"},
		{"darker default", `return string.format("%.2f", color.darker("red"))`, "0.90"},
		{"lighter", `return string.format("%.2f", color.lighter({0.5, 0, 0}, 0.25))`, "0.75"},
		{"valid", `return tostring(color.valid("red")) .. "," .. tostring(color.valid("foo"))`, "true,false"},
		{"names", `local n = color.names(); return tostring(#n > 140) .. "," .. n[1]`, "true,aliceblue"},
		{"global table", `return type(color)`, "table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runString(t, runtime, tt.code); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorModuleErrors(t *testing.T) {
	runtime := newColorRuntime(t)

	tests := []struct {
		name    string
		code    string
		wantMsg string
	}{
		{"unknown name", `return color.parse("foo")`, "unknown color name"},
		{"bad hex", `return color.parse("#ffii00")`, "malformed hex color"},
		{"bad arg type", `return color.hex(true)`, "expected color string"},
		{"short table", `return color.parse({1, 0})`, "3 or 4 channels"},
		{"bad alpha", `return color.parse("red", "x")`, "alpha must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runtime.ExecuteString("test", tt.code)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

type staticNames map[string]colorval.Entry

func (s staticNames) ResolveName(name string) (colorval.Entry, bool) {
	e, ok := s[name]
	return e, ok
}

func TestColorModuleWithNamesAndLogger(t *testing.T) {
	rec := colorval.NewRecorder(slog.LevelWarn)
	runtime := newColorRuntime(t,
		WithNames(staticNames{"brand": {R: 0.2, G: 0.4, B: 1, A: 1}}),
		WithLogger(rec),
	)

	if got := runString(t, runtime, `return color.hex("Brand")`); got != "#3366ff" {
		t.Errorf("custom name hex = %q", got)
	}

	runString(t, runtime, `return tostring(color.parse({2, 0, 0}))`)
	if rec.Len() != 1 {
		t.Errorf("captured %d clamp warnings, want 1", rec.Len())
	}
}

func TestColorModuleRequireWithoutLimits(t *testing.T) {
	runtime, err := New(RuntimeConfig{})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	defer runtime.Close()
	if _, err := NewColorModule(runtime, WithLogger(colorval.NopLogger())); err != nil {
		t.Fatalf("failed to create color module: %v", err)
	}

	got := runString(t, runtime, `local c = require("color"); return tostring(c == color) .. " " .. c.hex("r")`)
	if got != "true #ff0000" {
		t.Errorf("require(\"color\") = %q", got)
	}
}
