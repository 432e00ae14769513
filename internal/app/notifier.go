package app

import (
	"time"

	"schnapsen/internal/domain"
)

// eventNotifier collects engine notifications as events. Pacing requests
// are added to the delay of the most recent event.
type eventNotifier struct {
	domain.NopNotifier
	fast     bool
	events   []Event
	changeAt int
}

func (n *eventNotifier) emit(kind EventKind, payload any) {
	n.events = append(n.events, Event{Kind: kind, Payload: payload})
}

func (n *eventNotifier) Message(kind domain.MessageKind, bell bool) {
	n.emit(EventNotice, NoticePayload{Message: kind, Bell: bell})
}

func (n *eventNotifier) Wait(seconds float64) {
	if n.fast && seconds >= 1.0 {
		seconds /= 2
	}
	if len(n.events) == 0 {
		return
	}
	n.events[len(n.events)-1].Delay += time.Duration(seconds * float64(time.Second))
}

// AnimateChange marks where a jack exchange completed.
func (n *eventNotifier) AnimateChange(fromHand bool) {
	if !fromHand {
		n.changeAt = len(n.events)
	}
}

// emitChange places the exchange event right after the notice that
// announced it and moves that notice's pacing onto the event.
func (n *eventNotifier) emitChange(payload JackChangedPayload) {
	at := n.changeAt
	if at <= 0 || at > len(n.events) {
		n.emit(EventJackChanged, payload)
		return
	}
	ev := Event{Kind: EventJackChanged, Payload: payload, Delay: n.events[at-1].Delay}
	n.events[at-1].Delay = 0
	n.events = append(n.events, Event{})
	copy(n.events[at+1:], n.events[at:])
	n.events[at] = ev
}
