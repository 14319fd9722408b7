package behavior

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/duckpond/internal/core/events/bus"
)

func TestQuackImplementations(t *testing.T) {
	cases := []struct {
		name string
		b    func(Sink) QuackBehavior
		want string
	}{
		{QuackName, func(s Sink) QuackBehavior { return NewQuack(s) }, QuackMessage},
		{SqueakName, func(s Sink) QuackBehavior { return NewSqueak(s) }, SqueakMessage},
		{MuteName, func(s Sink) QuackBehavior { return NewMuteQuack(s) }, MuteMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecorder()
			b := tc.b(rec)
			b.Quack()
			b.Quack()
			assert.Equal(t, []string{tc.want, tc.want}, rec.Lines())
			assert.Equal(t, tc.name, NameOf(b))
		})
	}
}

func TestFlyImplementations(t *testing.T) {
	rec := NewRecorder()
	NewFlyWithWings(rec).Fly()
	NewFlyNoWay(rec).Fly()
	assert.Equal(t, []string{WithWingsMessage, NoWayMessage}, rec.Lines())
	assert.Equal(t, WithWingsName, NameOf(NewFlyWithWings(rec)))
	assert.Equal(t, NoWayName, NameOf(NewFlyNoWay(rec)))
}

func TestZeroValueBehaviorsEmitToStdout(t *testing.T) {
	var buf bytes.Buffer
	prev := stdout
	stdout = NewWriterSink(&buf)
	t.Cleanup(func() { stdout = prev })

	require.NotPanics(t, func() {
		Quack{}.Quack()
		Squeak{}.Quack()
		MuteQuack{}.Quack()
		FlyWithWings{}.Fly()
		FlyNoWay{}.Fly()
	})
	assert.Equal(t, "꽥꽥!\n삑삑!\n무음\n오리 날아요~\n날 수 없어요\n", buf.String())
}

func TestNameOfCustomBehavior(t *testing.T) {
	assert.Equal(t, "custom", NameOf(struct{}{}))
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	NewSqueak(s).Quack()
	NewFlyNoWay(s).Fly()
	assert.Equal(t, "삑삑!\n날 수 없어요\n", buf.String())
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.Emit("a")
	lines := rec.Lines()
	rec.Reset()
	assert.Empty(t, rec.Lines())
	assert.Equal(t, []string{"a"}, lines)
}

func TestBusSinkPublishesEffects(t *testing.T) {
	b := bus.New()
	var got []string
	_, err := b.Subscribe(bus.EffectEvent, func(e bus.Event) error {
		assert.Equal(t, "pond", e.Source())
		got = append(got, e.Data().(string))
		return nil
	})
	require.NoError(t, err)

	s := NewBusSink(b, "pond", nil)
	NewQuack(s).Quack()
	NewFlyWithWings(s).Fly()
	assert.Equal(t, []string{QuackMessage, WithWingsMessage}, got)
}

func TestSinkFunc(t *testing.T) {
	var got string
	NewMuteQuack(SinkFunc(func(msg string) { got = msg })).Quack()
	assert.Equal(t, MuteMessage, got)
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []string{MuteName, QuackName, SqueakName}, r.QuackNames())
	assert.Equal(t, []string{NoWayName, WithWingsName}, r.FlyNames())

	rec := NewRecorder()
	q, err := r.NewQuack(SqueakName, rec)
	require.NoError(t, err)
	f, err := r.NewFly(NoWayName, rec)
	require.NoError(t, err)
	q.Quack()
	f.Fly()
	assert.Equal(t, []string{SqueakMessage, NoWayMessage}, rec.Lines())

	_, err = r.NewQuack("honk", rec)
	assert.ErrorIs(t, err, ErrUnknownBehavior)
	_, err = r.NewFly("rocket", rec)
	assert.ErrorIs(t, err, ErrUnknownBehavior)
}

type rocket struct{ out Sink }

func (r rocket) Fly() { r.out.Emit("rocket") }

func TestRegistryAcceptsNewImplementations(t *testing.T) {
	r := NewDefaultRegistry()
	r.RegisterFly("rocket", func(out Sink) FlyBehavior { return rocket{out: out} })

	rec := NewRecorder()
	f, err := r.NewFly("rocket", rec)
	require.NoError(t, err)
	f.Fly()
	assert.Equal(t, []string{"rocket"}, rec.Lines())
	assert.Contains(t, r.FlyNames(), "rocket")
}
