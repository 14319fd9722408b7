package duck

import (
	"fmt"
	"sync"

	"github.com/zeusync/duckpond/internal/core/behavior"
)

// Record is the function-valued form of a duck: each axis is a stored
// callable instead of an interface value.
type Record struct {
	Name string

	mu     sync.RWMutex
	quack  func()
	fly    func()
	screen behavior.Sink
}

// Create stores the callables. Display output goes to screen, or stdout when nil.
func Create(name string, quack, fly func(), screen behavior.Sink) (*Record, error) {
	if quack == nil {
		return nil, fmt.Errorf("duck %q: quack: %w", name, ErrMissingBehavior)
	}
	if fly == nil {
		return nil, fmt.Errorf("duck %q: fly: %w", name, ErrMissingBehavior)
	}
	if screen == nil {
		screen = behavior.NewWriterSink(nil)
	}
	return &Record{Name: name, quack: quack, fly: fly, screen: screen}, nil
}

func (r *Record) Quack() {
	r.mu.RLock()
	fn := r.quack
	r.mu.RUnlock()
	fn()
}

func (r *Record) Fly() {
	r.mu.RLock()
	fn := r.fly
	r.mu.RUnlock()
	fn()
}

// Display emits "<name> 오리 모양".
func (r *Record) Display() {
	r.screen.Emit(r.Name + " " + DefaultDisplay)
}

func (r *Record) SetQuack(fn func()) error {
	if fn == nil {
		return fmt.Errorf("duck %q: quack: %w", r.Name, ErrMissingBehavior)
	}
	r.mu.Lock()
	r.quack = fn
	r.mu.Unlock()
	return nil
}

func (r *Record) SetFly(fn func()) error {
	if fn == nil {
		return fmt.Errorf("duck %q: fly: %w", r.Name, ErrMissingBehavior)
	}
	r.mu.Lock()
	r.fly = fn
	r.mu.Unlock()
	return nil
}

// QuackFuncs is the table of sound callables keyed by registry name.
func QuackFuncs(out behavior.Sink) map[string]func() {
	return map[string]func(){
		behavior.QuackName:  behavior.NewQuack(out).Quack,
		behavior.SqueakName: behavior.NewSqueak(out).Quack,
		behavior.MuteName:   behavior.NewMuteQuack(out).Quack,
	}
}

// FlyFuncs is the table of flight callables keyed by registry name.
func FlyFuncs(out behavior.Sink) map[string]func() {
	return map[string]func(){
		behavior.WithWingsName: behavior.NewFlyWithWings(out).Fly,
		behavior.NoWayName:     behavior.NewFlyNoWay(out).Fly,
	}
}

// QuackFunc adapts a callable to behavior.QuackBehavior.
type QuackFunc func()

func (f QuackFunc) Quack() { f() }

// FlyFunc adapts a callable to behavior.FlyBehavior.
type FlyFunc func()

func (f FlyFunc) Fly() { f() }
