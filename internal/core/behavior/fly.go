package behavior

const (
	WithWingsName = "with_wings"
	NoWayName     = "no_way"

	WithWingsMessage = "오리 날아요~"
	NoWayMessage     = "날 수 없어요"
)

var (
	_ FlyBehavior = FlyWithWings{}
	_ FlyBehavior = FlyNoWay{}
)

// FlyWithWings is the flying implementation.
type FlyWithWings struct{ out Sink }

func NewFlyWithWings(out Sink) FlyWithWings { return FlyWithWings{out: orStdout(out)} }

func (f FlyWithWings) Fly()       { orStdout(f.out).Emit(WithWingsMessage) }
func (FlyWithWings) Name() string { return WithWingsName }

// FlyNoWay is for ducks that cannot fly.
type FlyNoWay struct{ out Sink }

func NewFlyNoWay(out Sink) FlyNoWay { return FlyNoWay{out: orStdout(out)} }

func (f FlyNoWay) Fly()       { orStdout(f.out).Emit(NoWayMessage) }
func (FlyNoWay) Name() string { return NoWayName }
