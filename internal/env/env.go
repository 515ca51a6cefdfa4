// Package env implements the evaluator's lexical environment: a mapping
// from name to the declaration that bound it. Environments are
// value-typed — Insert never mutates an existing *Env, it returns a new
// one — so the evaluator can thread (value, env) pairs without any
// scope leaking mutations back into an outer frame it has already
// returned from.
package env

import "github.com/akashmaji946/gomix/internal/ast"

// Env is one lexical scope: its own bindings, plus a parent scope
// consulted on a lookup miss. The representation is a linked chain of
// flat maps rather than one global map, which is what lets Extend create
// a call frame that sees its formals plus the scope passed as parent,
// with no visibility into bindings introduced by sibling calls. The
// evaluator passes the environment of the call site as that parent; a
// function does not keep the environment it was declared in.
type Env struct {
	own    map[string]*ast.Variable
	parent *Env
}

// Fresh returns a new, empty, parentless environment — the starting
// point for a top-level run.
func Fresh() *Env {
	return &Env{own: make(map[string]*ast.Variable)}
}

// Extend creates a child scope whose own bindings are the given map and
// whose lookups fall back to parent. Used both for a block's inner scope
// (bindings starts empty) and for a call frame (bindings holds the
// formal-to-argument map).
func Extend(parent *Env, bindings map[string]*ast.Variable) *Env {
	if bindings == nil {
		bindings = make(map[string]*ast.Variable)
	}
	return &Env{own: bindings, parent: parent}
}

// Get looks up name, walking outward through parent scopes on a miss.
func (e *Env) Get(name string) (*ast.Variable, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.own[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Insert binds name to decl in e's own scope, failing if name is already
// bound in that same scope (invariant: no rebinding). It does not search
// parent scopes — shadowing an outer name from a fresh child scope (a
// block, a call frame) is allowed; only rebinding within the same flat
// scope is an error. Insert never mutates e: it returns a new Env whose
// own map has the extra binding, leaving every existing *Env (including
// e) exactly as it was.
func (e *Env) Insert(name string, decl *ast.Variable) (*Env, bool) {
	if _, exists := e.own[name]; exists {
		return e, false
	}
	next := make(map[string]*ast.Variable, len(e.own)+1)
	for k, v := range e.own {
		next[k] = v
	}
	next[name] = decl
	return &Env{own: next, parent: e.parent}, true
}
