package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

func TestBroadcasterFansOutToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	row := router.Row{Iteration: 1, Conflicts: 3}
	b.Log(row)

	require.Equal(t, row, <-ch1)
	require.Equal(t, row, <-ch2)
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch, unsub := b.Subscribe()
	unsub()

	_, ok := <-ch
	require.False(t, ok)
}

func TestBroadcasterDropsWhenSubscriberBufferFull(t *testing.T) {
	b := NewBroadcaster()
	ch, unsub := b.Subscribe()
	defer unsub()

	for i := 0; i < 64; i++ {
		b.Log(router.Row{Iteration: i})
	}

	// Must not block or panic even though the subscriber never reads.
	b.Log(router.Row{Iteration: 999})
	require.NotEmpty(t, ch)
}
