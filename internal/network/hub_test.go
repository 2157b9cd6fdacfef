package network

import (
	"testing"

	"hexcrawl-server/pkg/api"
)

func TestBroadcasterRegisterAndSendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("viewer-1")

	b.SendTo("viewer-1", api.ServerResponse{Type: "UPDATE", Turn: 7})

	select {
	case msg := <-ch:
		if msg.Turn != 7 {
			t.Errorf("unexpected message: %+v", msg)
		}
	default:
		t.Fatal("Subscriber must receive a unicast message")
	}

	// Отправка незнакомому имени не паникует и никуда не уходит.
	b.SendTo("nobody", api.ServerResponse{Type: "UPDATE"})
}

func TestBroadcasterBroadcast(t *testing.T) {
	b := NewBroadcaster()
	first := b.Register("viewer-1")
	second := b.Register("viewer-2")

	b.Broadcast(api.ServerResponse{Type: "UPDATE", Turn: 1})

	for name, ch := range map[string]chan api.ServerResponse{"viewer-1": first, "viewer-2": second} {
		select {
		case <-ch:
		default:
			t.Errorf("Subscriber %s must receive the broadcast", name)
		}
	}
}

func TestBroadcasterUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("viewer-1")
	b.Unregister("viewer-1")

	if _, open := <-ch; open {
		t.Error("Unregister must close the subscriber channel")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("Subscriber count must drop to zero, got %d", b.SubscriberCount())
	}
}

func TestBroadcasterDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	// Переполняем личный канал: лишние сообщения тихо отбрасываются.
	for i := 0; i < cap(ch)+10; i++ {
		b.SendTo("slow", api.ServerResponse{Turn: uint64(i)})
	}
	if len(ch) != cap(ch) {
		t.Errorf("Channel must be full but not blocked, got %d", len(ch))
	}
}
