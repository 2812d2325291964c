package eval

// FuncTable is the process-wide, shared mapping of top-level bindings.
// Every closure captures a pointer to the same table, so functions may
// reference each other (and themselves) without explicit tying of the
// knot: installing "f" after "g" already referred to it is fine, because
// lookups happen at call time against the shared table, not at capture
// time.
type FuncTable struct {
	funcs map[string]Value
}

// NewFuncTable returns an empty, ready-to-populate function table.
func NewFuncTable() *FuncTable {
	return &FuncTable{funcs: make(map[string]Value)}
}

// Install binds name to v in the table, overwriting any prior binding.
func (ft *FuncTable) Install(name string, v Value) {
	ft.funcs[name] = v
}

// Lookup returns the value bound to name and whether it was found.
func (ft *FuncTable) Lookup(name string) (Value, bool) {
	v, ok := ft.funcs[name]
	return v, ok
}

// Env is a lexical environment: a local frame of name to value, chained
// to a parent frame, with every frame in the chain sharing one
// process-wide FuncTable by reference. Lookups try the local chain
// first, then fall back to the function table (spec §3, "Environment").
type Env struct {
	parent *Env
	name   string
	value  Value
	table  *FuncTable
}

// NewEnv returns the root environment for one evaluation run, backed by
// table.
func NewEnv(table *FuncTable) *Env {
	return &Env{table: table}
}

// Extend returns a new environment with name bound to value, chained to e.
func (e *Env) Extend(name string, value Value) *Env {
	return &Env{parent: e, name: name, value: value, table: e.table}
}

// Lookup resolves name against the local chain first, then the shared
// function table.
func (e *Env) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.value, true
		}
	}
	return e.table.Lookup(name)
}

// Table returns the environment's shared function table.
func (e *Env) Table() *FuncTable { return e.table }
