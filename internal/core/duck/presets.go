package duck

import "github.com/zeusync/duckpond/internal/core/behavior"

// Presets are plain compositions: a duck kind is a display text plus a choice
// of behaviors, never a subtype.
const (
	MallardDisplay = DefaultDisplay
	RedheadDisplay = "붉은머리 오리 모양"
	RubberDisplay  = "고무 오리 모양"
	DecoyDisplay   = "모형 오리 모양"
)

// NewMallard quacks and flies. Behaviors and Display all emit into out.
func NewMallard(out behavior.Sink, opts ...Option) *Duck {
	return mustPreset("mallard", MallardDisplay, behavior.NewQuack(out), behavior.NewFlyWithWings(out), out, opts)
}

func NewRedhead(out behavior.Sink, opts ...Option) *Duck {
	return mustPreset("redhead", RedheadDisplay, behavior.NewQuack(out), behavior.NewFlyWithWings(out), out, opts)
}

// NewRubber squeaks and cannot fly.
func NewRubber(out behavior.Sink, opts ...Option) *Duck {
	return mustPreset("rubber", RubberDisplay, behavior.NewSqueak(out), behavior.NewFlyNoWay(out), out, opts)
}

// NewDecoy is silent and cannot fly.
func NewDecoy(out behavior.Sink, opts ...Option) *Duck {
	return mustPreset("decoy", DecoyDisplay, behavior.NewMuteQuack(out), behavior.NewFlyNoWay(out), out, opts)
}

func mustPreset(name, display string, q behavior.QuackBehavior, f behavior.FlyBehavior, out behavior.Sink, opts []Option) *Duck {
	if out != nil {
		opts = append([]Option{WithDisplaySink(out)}, opts...)
	}
	d, err := New(name, display, q, f, opts...)
	if err != nil {
		// both behaviors are concrete values above
		panic(err)
	}
	return d
}
