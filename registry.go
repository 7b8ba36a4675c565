package pui

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// TypeCode identifies a kind of control or dialog. Zero is never a valid code.
type TypeCode uint32

// Codes of the builtin kinds, valid once Init has returned.
const (
	CodeSimpleMenu TypeCode = iota + 1
	CodeSimpleInfo
	CodeImage
	CodeLabel
	CodeMenuButton
	CodePushButton
)

var builtinCodes = []struct {
	name string
	code TypeCode
}{
	{"pui.SimpleMenu", CodeSimpleMenu},
	{"pui.SimpleInfo", CodeSimpleInfo},
	{"pui.Image", CodeImage},
	{"pui.Label", CodeLabel},
	{"pui.MenuButton", CodeMenuButton},
	{"pui.PushButton", CodePushButton},
}

var (
	ErrRegistryClosed = errors.New("pui: registry closed")
	ErrRegistryInit   = errors.New("pui: registry already initialized")
	ErrCodesExhausted = errors.New("pui: type codes exhausted")
)

type registryEntry struct {
	name string
	code TypeCode
}

// Registry hands out type codes by name. Registering a name again returns
// the code it got the first time. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries []registryEntry // Sorted by name.
	serial  TypeCode
	closed  bool
}

var (
	registryMu sync.Mutex
	registry   *Registry
)

// Init creates the process-wide registry and registers the builtin kinds.
// It fails if a registry is live; call Close on it first.
func Init() (*Registry, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry != nil {
		return nil, ErrRegistryInit
	}
	r := &Registry{}
	for _, b := range builtinCodes {
		code, err := r.Register(b.name)
		if err != nil {
			return nil, err
		}
		if code != b.code {
			panic("pui: builtin type code mismatch")
		}
	}
	registry = r
	return r, nil
}

// Register returns the code for name, allocating the next one if name is new.
func (r *Registry) Register(name string) (TypeCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrRegistryClosed
	}
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].name >= name
	})
	if i < len(r.entries) && r.entries[i].name == name {
		return r.entries[i].code, nil
	}
	if r.serial == math.MaxUint32 {
		return 0, ErrCodesExhausted
	}
	r.serial++
	r.entries = append(r.entries, registryEntry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = registryEntry{name, r.serial}
	return r.serial, nil
}

// Lookup returns the code for name without registering it.
func (r *Registry) Lookup(name string) (TypeCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, false
	}
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].name >= name
	})
	if i < len(r.entries) && r.entries[i].name == name {
		return r.entries[i].code, true
	}
	return 0, false
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close drops all registrations. Further use of r returns ErrRegistryClosed,
// and Init may be called again.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRegistryClosed
	}
	r.closed = true
	r.entries = nil
	r.serial = 0
	r.mu.Unlock()

	registryMu.Lock()
	if registry == r {
		registry = nil
	}
	registryMu.Unlock()
	return nil
}
