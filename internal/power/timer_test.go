package power

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresOnce(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(func() { fired.Add(1) })

	timer.Reset(20 * time.Millisecond)
	assert.True(t, timer.Armed())

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, timer.Armed())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestTimerResetBurstFiresOnceFromLastReset(t *testing.T) {
	var (
		mu      sync.Mutex
		firedAt []time.Time
	)
	timer := NewTimer(func() {
		mu.Lock()
		firedAt = append(firedAt, time.Now())
		mu.Unlock()
	})

	const d = 40 * time.Millisecond
	var last time.Time
	for i := 0; i < 10; i++ {
		last = time.Now()
		timer.Reset(d)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(4 * d)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, firedAt, 1)
	assert.GreaterOrEqual(t, firedAt[0].Sub(last), d)
}

func TestTimerCancel(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(func() { fired.Add(1) })

	timer.Reset(20 * time.Millisecond)
	timer.Cancel()
	assert.False(t, timer.Armed())

	timer.Reset(20 * time.Millisecond)
	timer.Reset(0)
	assert.False(t, timer.Armed())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestSessionScenario(t *testing.T) {
	c, dev, _ := newTestController("/dev/hidraw0")
	const timeout = 60 * time.Millisecond
	s := NewSession(c, timeout)

	// Input at t=0
	start := time.Now()
	s.Touch()
	assert.True(t, s.State())
	assert.Equal(t, [][]byte{{0x00, 0x01}}, dev.Writes())

	// Off-write lands at t=timeout, not before
	time.Sleep(timeout / 2)
	assert.True(t, s.State())
	require.Eventually(t, func() bool { return len(dev.Writes()) == 2 }, time.Second, 2*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), timeout)
	assert.Equal(t, []byte{0x00, 0x00}, dev.Writes()[1])

	time.Sleep(timeout / 60)
	assert.False(t, s.State())
}

func TestSessionBeginHoldsPowerUntilArm(t *testing.T) {
	c, dev, _ := newTestController("/dev/hidraw0")
	s := NewSession(c, 20*time.Millisecond)

	s.Touch()
	s.Begin()
	time.Sleep(60 * time.Millisecond)
	assert.True(t, s.State())
	assert.Len(t, dev.Writes(), 1)

	s.Arm()
	require.Eventually(t, func() bool { return !s.State() }, time.Second, 2*time.Millisecond)

	// Touch after expiry powers back on
	s.Touch()
	assert.True(t, s.State())
	s.Stop()
	assert.Len(t, dev.Writes(), 3)
}
