package duck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/duckpond/internal/core/behavior"
)

func TestCreatePrettyDuck(t *testing.T) {
	rec := behavior.NewRecorder()
	quacks := QuackFuncs(rec)
	flies := FlyFuncs(rec)

	d, err := Create("예쁜", quacks[behavior.QuackName], flies[behavior.WithWingsName], rec)
	require.NoError(t, err)

	d.Display()
	d.Quack()
	d.Fly()
	assert.Equal(t, []string{"예쁜 오리 모양", "꽥꽥!", "오리 날아요~"}, rec.Lines())
}

func TestRecordRebind(t *testing.T) {
	rec := behavior.NewRecorder()
	quacks := QuackFuncs(rec)
	flies := FlyFuncs(rec)

	d, err := Create("고무", quacks[behavior.SqueakName], flies[behavior.NoWayName], rec)
	require.NoError(t, err)
	d.Quack()
	d.Fly()

	require.NoError(t, d.SetQuack(quacks[behavior.QuackName]))
	require.NoError(t, d.SetFly(flies[behavior.WithWingsName]))
	d.Quack()
	d.Fly()

	assert.Equal(t, []string{"삑삑!", "날 수 없어요", "꽥꽥!", "오리 날아요~"}, rec.Lines())
}

func TestCreateRejectsMissingCallable(t *testing.T) {
	_, err := Create("x", nil, func() {}, nil)
	assert.ErrorIs(t, err, ErrMissingBehavior)
	_, err = Create("x", func() {}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingBehavior)

	d, err := Create("x", func() {}, func() {}, behavior.NewRecorder())
	require.NoError(t, err)
	assert.ErrorIs(t, d.SetQuack(nil), ErrMissingBehavior)
	assert.ErrorIs(t, d.SetFly(nil), ErrMissingBehavior)
}

func TestFuncAdaptersBindToDuck(t *testing.T) {
	rec := behavior.NewRecorder()
	d, err := New("hybrid", "", QuackFunc(QuackFuncs(rec)[behavior.MuteName]), FlyFunc(FlyFuncs(rec)[behavior.WithWingsName]))
	require.NoError(t, err)

	d.PerformQuack()
	d.PerformFly()
	assert.Equal(t, []string{"무음", "오리 날아요~"}, rec.Lines())
}
