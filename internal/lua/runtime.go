// Package lua embeds a sandboxed Golua runtime that exposes color parsing
// to Lua scripts through a global "color" table.
package lua

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// RuntimeConfig bounds a Runtime. Zero limits disable the bound.
type RuntimeConfig struct {
	// CPULimit caps the instructions a single Execute may run.
	CPULimit uint64
	// MemoryLimit caps the bytes a single Execute may allocate.
	MemoryLimit uint64
	// Stdout also receives print output; Output captures it regardless.
	Stdout io.Writer
}

// DefaultConfig allows ten million instructions and 50 MB per execution.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CPULimit:    10_000_000,
		MemoryLimit: 50 * 1024 * 1024,
		Stdout:      os.Stdout,
	}
}

// Runtime is a Lua state with the standard libraries loaded. Calls are
// serialized, so a Runtime may be shared between goroutines.
type Runtime struct {
	cfg      RuntimeConfig
	lua      *rt.Runtime
	captured *bytes.Buffer
	release  func()
	mu       sync.RWMutex
}

func New(config RuntimeConfig) (*Runtime, error) {
	captured := &bytes.Buffer{}
	var out io.Writer = captured
	if config.Stdout != nil {
		out = io.MultiWriter(config.Stdout, captured)
	}

	l := rt.New(out)
	return &Runtime{
		cfg:      config,
		lua:      l,
		captured: captured,
		release:  lib.LoadAll(l),
	}, nil
}

// LoadString compiles code as a chunk called name. Nothing runs until
// Execute.
func (r *Runtime) LoadString(name, code string) (*rt.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	env := rt.TableValue(r.lua.GlobalEnv())
	chunk, err := r.lua.CompileAndLoadLuaChunk(name, []byte(code), env)
	if err != nil {
		return nil, fmt.Errorf("failed to load Lua code: %w", err)
	}
	return chunk, nil
}

// LoadFile compiles the script at path.
func (r *Runtime) LoadFile(path string) (*rt.Closure, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Lua file %s: %w", path, err)
	}
	chunk, err := r.LoadString(path, string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return chunk, nil
}

func (r *Runtime) limits() rt.RuntimeContextDef {
	return rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    r.cfg.CPULimit,
			Memory: r.cfg.MemoryLimit,
		},
	}
}

// Execute calls chunk under the configured limits and returns its first
// result.
func (r *Runtime) Execute(chunk *rt.Closure) (rt.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lua.PushContext(r.limits())
	defer r.lua.PopContext()

	v, err := rt.Call1(r.lua.MainThread(), rt.FunctionValue(chunk))
	if err != nil {
		return rt.NilValue, fmt.Errorf("Lua execution error: %w", err)
	}
	return v, nil
}

// ExecuteString is LoadString followed by Execute.
func (r *Runtime) ExecuteString(name, code string) (rt.Value, error) {
	chunk, err := r.LoadString(name, code)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(chunk)
}

// ExecuteFile is LoadFile followed by Execute.
func (r *Runtime) ExecuteFile(path string) (rt.Value, error) {
	chunk, err := r.LoadFile(path)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(chunk)
}

func (r *Runtime) GetGlobal(name string) rt.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lua.GlobalEnv().Get(rt.StringValue(name))
}

func (r *Runtime) SetGlobal(name string, value rt.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lua.GlobalEnv().Set(rt.StringValue(name), value)
}

// Output returns everything printed so far.
func (r *Runtime) Output() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.captured.String()
}

// Close unloads the standard libraries. The Runtime must not be used
// afterwards.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.release != nil {
		r.release()
		r.release = nil
	}
	return nil
}
