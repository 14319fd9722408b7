package behavior

const (
	QuackName  = "quack"
	SqueakName = "squeak"
	MuteName   = "mute"

	QuackMessage  = "꽥꽥!"
	SqueakMessage = "삑삑!"
	MuteMessage   = "무음"
)

var (
	_ QuackBehavior = Quack{}
	_ QuackBehavior = Squeak{}
	_ QuackBehavior = MuteQuack{}
)

// Quack is the normal duck call. Zero values of the behaviors in this package
// emit to stdout.
type Quack struct{ out Sink }

func NewQuack(out Sink) Quack { return Quack{out: orStdout(out)} }

func (q Quack) Quack()     { orStdout(q.out).Emit(QuackMessage) }
func (Quack) Name() string { return QuackName }

// Squeak is the rubber-duck call.
type Squeak struct{ out Sink }

func NewSqueak(out Sink) Squeak { return Squeak{out: orStdout(out)} }

func (s Squeak) Quack()     { orStdout(s.out).Emit(SqueakMessage) }
func (Squeak) Name() string { return SqueakName }

// MuteQuack makes no sound; its effect reports the silence.
type MuteQuack struct{ out Sink }

func NewMuteQuack(out Sink) MuteQuack { return MuteQuack{out: orStdout(out)} }

func (m MuteQuack) Quack()     { orStdout(m.out).Emit(MuteMessage) }
func (MuteQuack) Name() string { return MuteName }
