// Package ir provides operator-kind tags for the lazy backend's
// intermediate representation.
//
// Every IR node is tagged with an OpKind identifying which computation it
// performs. Kinds are interned in a process-global registry, so equality is
// cheap and two lookups of the same qualified name always yield equal
// values. Backend-internal operators are exposed as lazily-resolved handles
// (LazyOpKind) declared in ops.go.
package ir

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrMalformedName reports an operator name the registry refuses to intern.
var ErrMalformedName = errors.New("malformed operator name")

// symbol is an interned registry entry. Exactly one exists per distinct
// name, so OpKind equality reduces to pointer equality.
type symbol struct {
	id   uint32
	name string
}

// OpKind identifies which computation an IR node performs.
//
// OpKind values are comparable: two kinds compare equal if and only if they
// were resolved from the same qualified name. The zero value is invalid and
// matches no registered operator.
type OpKind struct {
	sym *symbol
}

var registry = struct {
	mu   sync.RWMutex
	syms map[string]*symbol
}{syms: make(map[string]*symbol)}

// GetOpKind returns the kind registered under name, interning it on first
// use. Repeated calls with the same name return equal values. Safe for
// concurrent use.
func GetOpKind(name string) (OpKind, error) {
	if err := validateName(name); err != nil {
		return OpKind{}, err
	}

	registry.mu.RLock()
	sym := registry.syms[name]
	registry.mu.RUnlock()
	if sym != nil {
		return OpKind{sym: sym}, nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if sym = registry.syms[name]; sym == nil {
		sym = &symbol{id: uint32(len(registry.syms) + 1), name: name}
		registry.syms[name] = sym
	}
	return OpKind{sym: sym}, nil
}

// MustGetOpKind is like GetOpKind but panics on a malformed name.
// Use it only for compile-time-known operator names.
func MustGetOpKind(name string) OpKind {
	kind, err := GetOpKind(name)
	if err != nil {
		panic(fmt.Sprintf("ir: %v", err))
	}
	return kind
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrMalformedName)
	}
	if strings.ContainsAny(name, " \t\r\n\x00") {
		return fmt.Errorf("%w: %q", ErrMalformedName, name)
	}
	return nil
}

// Valid reports whether k refers to a registered operator.
func (k OpKind) Valid() bool {
	return k.sym != nil
}

// String returns the fully qualified operator name, e.g. "ltc::select".
func (k OpKind) String() string {
	if k.sym == nil {
		return "<invalid>"
	}
	return k.sym.name
}

// Namespace returns the "ns" part of a "ns::op" name, or "" for an
// unqualified name.
func (k OpKind) Namespace() string {
	if k.sym == nil {
		return ""
	}
	if ns, _, ok := strings.Cut(k.sym.name, "::"); ok {
		return ns
	}
	return ""
}

// Op returns the operator part of the name, without its namespace.
func (k OpKind) Op() string {
	if k.sym == nil {
		return ""
	}
	if _, op, ok := strings.Cut(k.sym.name, "::"); ok {
		return op
	}
	return k.sym.name
}
