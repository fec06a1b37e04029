package core

import "time"

// Notification is a transient alert with a fixed expiry. Overlapping
// notifications are allowed; expired ones are pruned lazily.
type Notification struct {
	Text      string
	ExpiresAt time.Time
}

// Notifier surfaces transient alerts for messages that arrive outside the
// active conversation.
type Notifier struct {
	ttl    time.Duration
	sink   func(Notification)
	active []Notification
	now    func() time.Time
}

// NewNotifier builds a notifier with the given display duration. sink is
// invoked once per notification and may be nil.
func NewNotifier(ttl time.Duration, sink func(Notification)) *Notifier {
	return &Notifier{
		ttl:  ttl,
		sink: sink,
		now:  time.Now,
	}
}

// Notify emits a notification that stays visible for the configured
// duration.
func (n *Notifier) Notify(text string) {
	notif := Notification{
		Text:      text,
		ExpiresAt: n.now().Add(n.ttl),
	}
	n.active = append(n.active, notif)
	if n.sink != nil {
		n.sink(notif)
	}
}

// Active prunes expired notifications and returns the ones still visible.
func (n *Notifier) Active() []Notification {
	now := n.now()
	kept := n.active[:0]
	for _, notif := range n.active {
		if notif.ExpiresAt.After(now) {
			kept = append(kept, notif)
		}
	}
	n.active = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}
