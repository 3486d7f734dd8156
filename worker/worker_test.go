package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock_Start(t *testing.T) {
	c := NewClock()
	require.Nil(t, c.C())

	c.Start(time.Millisecond)
	defer c.Stop()
	require.NotNil(t, c.C())

	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("clock did not tick")
	}
}

func TestClock_StopDiscardsPendingTick(t *testing.T) {
	c := NewClock()
	c.Start(time.Millisecond)
	ch := c.C()
	time.Sleep(20 * time.Millisecond)

	c.Stop()
	require.Nil(t, c.C())

	select {
	case <-ch:
		t.Fatal("stopped clock delivered a tick")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestClock_Reschedule(t *testing.T) {
	c := NewClock()
	c.Start(time.Hour)
	first := c.C()

	c.Start(time.Millisecond)
	defer c.Stop()
	require.NotEqual(t, first, c.C())

	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("rescheduled clock did not tick")
	}
}

func TestClock_StopIdempotent(t *testing.T) {
	c := NewClock()
	c.Stop()
	c.Start(time.Millisecond)
	c.Stop()
	c.Stop()
	require.Nil(t, c.C())
}
