package duck

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/duckpond/internal/core/behavior"
	"github.com/zeusync/duckpond/internal/core/observability/log"
)

// ErrMissingBehavior is returned when an axis would be left without a behavior.
var ErrMissingBehavior = errors.New("missing behavior")

// DefaultDisplay is the presentation text of a plain duck.
const DefaultDisplay = "오리 모양"

// Duck holds one behavior per axis and delegates to whichever is bound.
type Duck struct {
	mu      sync.RWMutex
	quack   behavior.QuackBehavior
	fly     behavior.FlyBehavior
	id      string
	name    string
	display string
	screen  behavior.Sink
	logger  log.Log
}

type Option func(*Duck)

// WithDisplaySink sets where Display writes. Defaults to stdout.
func WithDisplaySink(s behavior.Sink) Option {
	return func(d *Duck) { d.screen = s }
}

func WithID(id string) Option {
	return func(d *Duck) { d.id = id }
}

// WithLogger logs rebinds at debug level.
func WithLogger(l log.Log) Option {
	return func(d *Duck) { d.logger = l }
}

// New binds both axes. A nil behavior on either axis is rejected here rather
// than on first use.
func New(name, display string, quack behavior.QuackBehavior, fly behavior.FlyBehavior, opts ...Option) (*Duck, error) {
	if isNil(quack) {
		return nil, fmt.Errorf("duck %q: quack: %w", name, ErrMissingBehavior)
	}
	if isNil(fly) {
		return nil, fmt.Errorf("duck %q: fly: %w", name, ErrMissingBehavior)
	}
	if display == "" {
		display = DefaultDisplay
	}

	d := &Duck{
		quack:   quack,
		fly:     fly,
		name:    name,
		display: display,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = uuid.NewString()
	}
	if d.screen == nil {
		d.screen = behavior.NewWriterSink(nil)
	}
	if d.logger == nil {
		d.logger = log.NewNop()
	}
	return d, nil
}

func (d *Duck) ID() string          { return d.id }
func (d *Duck) Name() string        { return d.name }
func (d *Duck) DisplayText() string { return d.display }

func (d *Duck) PerformQuack() {
	d.mu.RLock()
	q := d.quack
	d.mu.RUnlock()
	q.Quack()
}

func (d *Duck) PerformFly() {
	d.mu.RLock()
	f := d.fly
	d.mu.RUnlock()
	f.Fly()
}

// Display is independent of both behavior axes.
func (d *Duck) Display() {
	d.screen.Emit(d.display)
}

func (d *Duck) QuackBehavior() behavior.QuackBehavior {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.quack
}

func (d *Duck) FlyBehavior() behavior.FlyBehavior {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fly
}

// SetQuackBehavior rebinds the sound axis for all later PerformQuack calls.
// On error the previous binding is kept.
func (d *Duck) SetQuackBehavior(q behavior.QuackBehavior) error {
	if isNil(q) {
		return fmt.Errorf("duck %q: quack: %w", d.name, ErrMissingBehavior)
	}
	d.mu.Lock()
	prev := d.quack
	d.quack = q
	d.mu.Unlock()

	d.logger.Debug("quack behavior rebound",
		log.String("duck", d.name),
		log.String("from", behavior.NameOf(prev)),
		log.String("to", behavior.NameOf(q)),
	)
	return nil
}

// SetFlyBehavior rebinds the motion axis for all later PerformFly calls.
func (d *Duck) SetFlyBehavior(f behavior.FlyBehavior) error {
	if isNil(f) {
		return fmt.Errorf("duck %q: fly: %w", d.name, ErrMissingBehavior)
	}
	d.mu.Lock()
	prev := d.fly
	d.fly = f
	d.mu.Unlock()

	d.logger.Debug("fly behavior rebound",
		log.String("duck", d.name),
		log.String("from", behavior.NameOf(prev)),
		log.String("to", behavior.NameOf(f)),
	)
	return nil
}

// Composition returns the registry names of the bound behaviors.
func (d *Duck) Composition() (quack, fly string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return behavior.NameOf(d.quack), behavior.NameOf(d.fly)
}

// isNil also catches typed nils such as QuackFunc(nil) or a nil pointer
// implementation, which would otherwise fail on first use.
func isNil(b any) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
