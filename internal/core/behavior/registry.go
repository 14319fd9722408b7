package behavior

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBehavior is returned when a name has no registered factory.
var ErrUnknownBehavior = errors.New("unknown behavior")

type (
	QuackFactory func(out Sink) QuackBehavior
	FlyFactory   func(out Sink) FlyBehavior
)

// Registry maps behavior names to factories, so compositions can be described as data.
type Registry interface {
	RegisterQuack(name string, factory QuackFactory)
	RegisterFly(name string, factory FlyFactory)

	NewQuack(name string, out Sink) (QuackBehavior, error)
	NewFly(name string, out Sink) (FlyBehavior, error)

	QuackNames() []string
	FlyNames() []string
}

type reg struct {
	mu     sync.RWMutex
	quacks map[string]QuackFactory
	flies  map[string]FlyFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &reg{
		quacks: make(map[string]QuackFactory),
		flies:  make(map[string]FlyFactory),
	}
}

// NewDefaultRegistry returns a registry with the built-in behaviors.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

func (r *reg) RegisterQuack(name string, factory QuackFactory) {
	r.mu.Lock()
	r.quacks[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterFly(name string, factory FlyFactory) {
	r.mu.Lock()
	r.flies[name] = factory
	r.mu.Unlock()
}

func (r *reg) NewQuack(name string, out Sink) (QuackBehavior, error) {
	r.mu.RLock()
	f := r.quacks[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: quack %q", ErrUnknownBehavior, name)
	}
	return f(out), nil
}

func (r *reg) NewFly(name string, out Sink) (FlyBehavior, error) {
	r.mu.RLock()
	f := r.flies[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: fly %q", ErrUnknownBehavior, name)
	}
	return f(out), nil
}

func (r *reg) QuackNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.quacks)
}

func (r *reg) FlyNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.flies)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RegisterBuiltins registers the built-in sound and flight behaviors.
func RegisterBuiltins(r Registry) {
	r.RegisterQuack(QuackName, func(out Sink) QuackBehavior { return NewQuack(out) })
	r.RegisterQuack(SqueakName, func(out Sink) QuackBehavior { return NewSqueak(out) })
	r.RegisterQuack(MuteName, func(out Sink) QuackBehavior { return NewMuteQuack(out) })

	r.RegisterFly(WithWingsName, func(out Sink) FlyBehavior { return NewFlyWithWings(out) })
	r.RegisterFly(NoWayName, func(out Sink) FlyBehavior { return NewFlyNoWay(out) })
}
