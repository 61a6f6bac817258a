package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-colorval/pkg/colorval"
)

// ColorModule exposes colorval to Lua as the global "color" table:
//
//	local r, g, b, a = color.parse("#ff000080")
//	local R, G, B, A = color.rgba8({1, 0.5, 0})
//	print(color.hex("orange"), color.valid("nope"))
type ColorModule struct {
	runtime *Runtime
	opts    []colorval.Option
}

// ColorModuleOption configures a ColorModule.
type ColorModuleOption func(*ColorModule)

// WithNames makes the module resolve names through r before the built-in table.
func WithNames(r colorval.NameResolver) ColorModuleOption {
	return func(cm *ColorModule) {
		cm.opts = append(cm.opts, colorval.WithNames(r))
	}
}

// WithLogger routes clamping warnings raised by scripts to l.
func WithLogger(l colorval.Logger) ColorModuleOption {
	return func(cm *ColorModule) {
		cm.opts = append(cm.opts, colorval.WithLogger(l))
	}
}

// NewColorModule registers the color table in runtime.
func NewColorModule(runtime *Runtime, opts ...ColorModuleOption) (*ColorModule, error) {
	if runtime == nil {
		return nil, ErrNilRuntime
	}
	cm := &ColorModule{runtime: runtime}
	for _, opt := range opts {
		opt(cm)
	}
	cm.registerModule()
	return cm, nil
}

// registerModule sets the global color table and package.loaded.color.
// require("color") only works in a runtime without CPU or memory limits,
// since golua refuses require under hard limits; the global is always set.
func (cm *ColorModule) registerModule() {
	table := rt.NewTable()
	cm.setTableGoFunction(table, "parse", cm.parse, 2)
	cm.setTableGoFunction(table, "rgba8", cm.rgba8, 2)
	cm.setTableGoFunction(table, "hex", cm.hex, 1)
	cm.setTableGoFunction(table, "hsv", cm.hsv, 1)
	cm.setTableGoFunction(table, "darker", cm.darker, 2)
	cm.setTableGoFunction(table, "lighter", cm.lighter, 2)
	cm.setTableGoFunction(table, "valid", cm.valid, 1)
	cm.setTableGoFunction(table, "names", cm.names, 0)
	tableVal := rt.TableValue(table)

	cm.runtime.SetGlobal("color", tableVal)

	cm.runtime.mu.Lock()
	defer cm.runtime.mu.Unlock()
	pkgVal := cm.runtime.lua.Registry(rt.StringValue("package"))
	pkgTable, ok := pkgVal.TryTable()
	if !ok {
		return
	}
	if loaded, ok := pkgTable.Get(rt.StringValue("loaded")).TryTable(); ok {
		loaded.Set(rt.StringValue("color"), tableVal)
	}
}

func (cm *ColorModule) setTableGoFunction(table *rt.Table, name string, fn rt.GoFunctionFunc, nArgs int) {
	goFunc := rt.NewGoFunction(fn, name, nArgs, false)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, goFunc)
	table.Set(rt.StringValue(name), rt.FunctionValue(goFunc))
}

// colorArg resolves argument idx. An optional alpha override is read from
// argument alphaIdx when alphaIdx >= 0.
func (cm *ColorModule) colorArg(c *rt.GoCont, idx, alphaIdx int) (*colorval.Color, error) {
	args := c.Args()
	if idx >= len(args) {
		return nil, ErrColorArg
	}

	in, err := toInput(args[idx])
	if err != nil {
		return nil, err
	}

	opts := cm.opts
	if alphaIdx >= 0 && alphaIdx < len(args) && !args[alphaIdx].IsNil() {
		a, ok := toNumber(args[alphaIdx])
		if !ok {
			return nil, fmt.Errorf("alpha must be a number")
		}
		opts = append(opts[:len(opts):len(opts)], colorval.WithAlpha(a))
	}
	return colorval.New(in, opts...)
}

func toInput(v rt.Value) (colorval.Input, error) {
	if s, ok := v.TryString(); ok {
		return colorval.Str(s), nil
	}
	tbl, ok := v.TryTable()
	if !ok {
		return nil, ErrColorArg
	}
	var ch colorval.Channels
	for i := int64(1); ; i++ {
		item := tbl.Get(rt.IntValue(i))
		if item.IsNil() {
			break
		}
		f, ok := toNumber(item)
		if !ok {
			return nil, fmt.Errorf("%w: channel %d is not a number", colorval.ErrValue, i)
		}
		ch = append(ch, f)
	}
	return ch, nil
}

func toNumber(v rt.Value) (float64, bool) {
	if f, ok := v.TryFloat(); ok {
		return f, true
	}
	if i, ok := v.TryInt(); ok {
		return float64(i), true
	}
	return 0, false
}

// parse handles color.parse(value [, alpha]) -> r, g, b, a
func (cm *ColorModule) parse(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := cm.colorArg(c, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("color.parse: %w", err)
	}
	e := col.At(0)
	return c.PushingNext(t.Runtime,
		rt.FloatValue(e.R), rt.FloatValue(e.G), rt.FloatValue(e.B), rt.FloatValue(e.A)), nil
}

// rgba8 handles color.rgba8(value [, alpha]) -> R, G, B, A in 0-255
func (cm *ColorModule) rgba8(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := cm.colorArg(c, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("color.rgba8: %w", err)
	}
	v := col.At(0).RGBA8()
	return c.PushingNext(t.Runtime,
		rt.IntValue(int64(v[0])), rt.IntValue(int64(v[1])), rt.IntValue(int64(v[2])), rt.IntValue(int64(v[3]))), nil
}

// hex handles color.hex(value) -> "#rrggbb"
func (cm *ColorModule) hex(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := cm.colorArg(c, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("color.hex: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.StringValue(col.Hex()[0])), nil
}

// hsv handles color.hsv(value) -> h, s, v
func (cm *ColorModule) hsv(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := cm.colorArg(c, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("color.hsv: %w", err)
	}
	hsv := col.HSV()[0]
	return c.PushingNext(t.Runtime,
		rt.FloatValue(hsv[0]), rt.FloatValue(hsv[1]), rt.FloatValue(hsv[2])), nil
}

func (cm *ColorModule) shade(t *rt.Thread, c *rt.GoCont, name string, sign float64) (rt.Cont, error) {
	col, err := cm.colorArg(c, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("color.%s: %w", name, err)
	}
	dv := 0.1
	if c.NArgs() > 1 && !c.Arg(1).IsNil() {
		var ok bool
		if dv, ok = toNumber(c.Arg(1)); !ok {
			return nil, fmt.Errorf("color.%s: amount must be a number", name)
		}
	}
	e := col.Darker(sign * dv).At(0)
	return c.PushingNext(t.Runtime,
		rt.FloatValue(e.R), rt.FloatValue(e.G), rt.FloatValue(e.B), rt.FloatValue(e.A)), nil
}

// darker handles color.darker(value [, dv]) -> r, g, b, a
func (cm *ColorModule) darker(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return cm.shade(t, c, "darker", 1)
}

// lighter handles color.lighter(value [, dv]) -> r, g, b, a
func (cm *ColorModule) lighter(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return cm.shade(t, c, "lighter", -1)
}

// valid handles color.valid(value) -> boolean
func (cm *ColorModule) valid(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	_, err := cm.colorArg(c, 0, -1)
	return c.PushingNext1(t.Runtime, rt.BoolValue(err == nil)), nil
}

// names handles color.names() -> {"aliceblue", ...}
func (cm *ColorModule) names(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	table := rt.NewTable()
	var i int64
	for name := range colorval.Names() {
		i++
		table.Set(rt.IntValue(i), rt.StringValue(name))
	}
	return c.PushingNext1(t.Runtime, rt.TableValue(table)), nil
}
