package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFrameLoopDeliversFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := NewMockTimeProvider(epoch)
	loop := NewFrameLoop(clock, 200)
	assert.Equal(t, 5*time.Millisecond, loop.Interval())

	loop.Start()
	loop.Start()
	require.True(t, loop.Running())

	deadline := time.After(2 * time.Second)
	for received := 0; received < 5; {
		select {
		case stamp := <-loop.Frames():
			assert.Equal(t, epoch, stamp)
			received++
		case <-deadline:
			t.Fatal("Timed out waiting for frames")
		}
	}

	loop.Stop()
	assert.False(t, loop.Running())
	assert.GreaterOrEqual(t, loop.FrameCount(), uint64(5))
}

func TestFrameLoopStopIsFinal(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop := NewFrameLoop(nil, 500)
	loop.Start()
	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	// drain whatever was buffered before Stop returned
	select {
	case <-loop.Frames():
	default:
	}
	count := loop.FrameCount()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, count, loop.FrameCount(), "No frame may be published after Stop")
	select {
	case <-loop.Frames():
		t.Fatal("Frame published after Stop")
	default:
	}

	loop.Start()
	assert.False(t, loop.Running(), "Start after Stop must be a no-op")
}

func TestFrameLoopStopBeforeStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop := NewFrameLoop(nil, 60)
	loop.Stop()
	loop.Start()
	assert.False(t, loop.Running())
}

func TestFrameLoopClampsRate(t *testing.T) {
	assert.Equal(t, time.Second, NewFrameLoop(nil, 0).Interval())
	assert.Equal(t, time.Second/240, NewFrameLoop(nil, 10000).Interval())
}

func TestFrameLoopCoalescesWhenConsumerIsSlow(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop := NewFrameLoop(nil, 500)
	loop.Start()
	time.Sleep(50 * time.Millisecond)
	loop.Stop()

	assert.Equal(t, uint64(1), loop.FrameCount(), "Unread frames should coalesce into one buffered slot")
}
