package core

// pairKey addresses a conversation by the literal (sender, receiver) order
// the message arrived with. Direction matters: a logical conversation
// between A and B spans the keys (A,B) and (B,A).
type pairKey struct {
	sender   string
	receiver string
}

// ConversationStore holds ordered message history per (sender, receiver)
// pair. It never canonicalizes keys and never deduplicates; growth is
// unbounded for the lifetime of a session.
type ConversationStore struct {
	byPair map[pairKey][]Message
}

// NewConversationStore constructs an empty store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		byPair: make(map[pairKey][]Message),
	}
}

// Record appends the message under its literal (sender, receiver) key.
func (s *ConversationStore) Record(msg Message) {
	key := pairKey{sender: msg.Sender, receiver: msg.Receiver}
	s.byPair[key] = append(s.byPair[key], msg)
}

// History returns the ordered messages recorded under the exact
// (sender, receiver) key. The returned slice is a copy.
func (s *ConversationStore) History(sender, receiver string) []Message {
	msgs := s.byPair[pairKey{sender: sender, receiver: receiver}]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Conversation reconstructs the full logical history between a and b by
// merging both key orderings, preserving per-direction arrival order and
// interleaving by arrival time.
func (s *ConversationStore) Conversation(a, b string) []Message {
	fromA := s.byPair[pairKey{sender: a, receiver: b}]
	fromB := s.byPair[pairKey{sender: b, receiver: a}]

	out := make([]Message, 0, len(fromA)+len(fromB))
	i, j := 0, 0
	for i < len(fromA) && j < len(fromB) {
		if !fromB[j].SentAt.Before(fromA[i].SentAt) {
			out = append(out, fromA[i])
			i++
		} else {
			out = append(out, fromB[j])
			j++
		}
	}
	out = append(out, fromA[i:]...)
	out = append(out, fromB[j:]...)
	return out
}

// Len reports the total number of recorded messages across all pairs.
func (s *ConversationStore) Len() int {
	total := 0
	for _, msgs := range s.byPair {
		total += len(msgs)
	}
	return total
}

// Reset drops all recorded history.
func (s *ConversationStore) Reset() {
	s.byPair = make(map[pairKey][]Message)
}
