package tokenomics

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// block time - uninitialized
	_, ok := BlockTime(ctx)
	assert.False(t, ok)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx = WithBlockTime(ctx, now)
	got, ok := BlockTime(ctx)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	// changing the info, should modify the logger, but not the time
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	got, _ = BlockTime(ctx2)
	assert.Equal(t, now, got)
}

type noteEvent struct {
	Note string `protobuf:"bytes,1,opt,name=note,proto3" json:"note"`
}

func (m *noteEvent) Reset()         { *m = noteEvent{} }
func (m *noteEvent) String() string { return m.Note }
func (*noteEvent) ProtoMessage()    {}
func (*noteEvent) EventKind() string {
	return "test/note"
}

func TestEmit(t *testing.T) {
	// without a sink events are dropped
	Emit(context.Background(), &noteEvent{Note: "dropped"})

	var buf EventBuffer
	ctx := WithEventSink(context.Background(), &buf)
	Emit(ctx, &noteEvent{Note: "first"})
	Emit(WithLogInfo(ctx, "k", "v"), &noteEvent{Note: "second"})

	events := buf.Events()
	if assert.Len(t, events, 2) {
		assert.Equal(t, "first", events[0].(*noteEvent).Note)
		assert.Equal(t, "second", events[1].(*noteEvent).Note)
	}

	// an inner sink shadows the outer one
	var inner EventBuffer
	Emit(WithEventSink(ctx, &inner), &noteEvent{Note: "inner"})
	assert.Len(t, inner.Events(), 1)
	assert.Len(t, buf.Events(), 2)
}
