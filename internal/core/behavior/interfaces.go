// Package behavior holds the two axes a duck delegates to (sound and flight),
// their built-in implementations, and the sinks those implementations emit into.
package behavior

// QuackBehavior is the sound axis. Quack never fails: an implementation that
// cannot make a sound says so through its effect.
type QuackBehavior interface {
	Quack()
}

// FlyBehavior is the motion axis.
type FlyBehavior interface {
	Fly()
}

// Named is implemented by behaviors that have a registry name.
type Named interface {
	Name() string
}

// Sink receives the observable effect of a behavior.
type Sink interface {
	Emit(msg string)
}

// NameOf returns the registry name of b, or "custom" for behaviors without one.
func NameOf(b any) string {
	if n, ok := b.(Named); ok {
		return n.Name()
	}
	return "custom"
}
