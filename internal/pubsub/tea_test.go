package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_DeliversEvent(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx := context.Background()
	ch := b.Subscribe(ctx)
	cmd := ListenCmd(ctx, ch)

	b.Publish(ChangedEvent, "HEAD")

	msg := cmd()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "HEAD", ev.Payload)
}

func TestListenCmd_NilOnCancelledContext(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	cmd := ListenCmd(ctx, ch)
	require.Nil(t, cmd())
}

func TestContinuousListener_ReceivesAcrossCalls(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	l := NewContinuousListener(context.Background(), b)

	b.Publish(CreatedEvent, 1)
	b.Publish(CreatedEvent, 2)

	// Each Listen call yields the next buffered event in order.
	for want := 1; want <= 2; want++ {
		msg := l.Listen()()
		ev, ok := msg.(Event[int])
		require.True(t, ok)
		require.Equal(t, want, ev.Payload)
	}

	// No pending event: Listen blocks until one arrives.
	got := make(chan int, 1)
	go func() {
		msg := l.Listen()()
		got <- msg.(Event[int]).Payload
	}()
	b.Publish(CreatedEvent, 3)

	select {
	case v := <-got:
		require.Equal(t, 3, v)
	case <-time.After(time.Second):
		t.Fatal("listener never received third event")
	}
}
