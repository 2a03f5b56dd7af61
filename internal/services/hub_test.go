package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := GetHub()

	ch, cancel := h.Subscribe("test:pubsub")
	defer cancel()

	h.Publish("test:pubsub")

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}
}

func TestHubCoalescesBursts(t *testing.T) {
	h := GetHub()

	ch, cancel := h.Subscribe("test:burst")
	defer cancel()

	for i := 0; i < 10; i++ {
		h.Publish("test:burst")
	}

	// One pending signal at most
	<-ch
	select {
	case <-ch:
		t.Fatal("burst was not coalesced")
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := GetHub()

	ch, cancel := h.Subscribe("test:cancel")
	cancel()
	cancel() // idempotent

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic or deliver
	h.Publish("test:cancel")
}

func TestHubTopicsAreIndependent(t *testing.T) {
	h := GetHub()

	chA, cancelA := h.Subscribe("test:a")
	chB, cancelB := h.Subscribe("test:b")
	defer cancelA()
	defer cancelB()

	h.Publish("test:a")

	select {
	case <-chA:
	case <-time.After(time.Second):
		t.Fatal("expected a signal on test:a")
	}
	select {
	case <-chB:
		t.Fatal("test:b should not have been signalled")
	default:
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	h := GetHub()

	ch1, cancel1 := h.Subscribe("test:multi")
	ch2, cancel2 := h.Subscribe("test:multi")
	defer cancel1()
	defer cancel2()

	h.Publish("test:multi")

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("every subscriber gets the signal")
		}
	}
}
