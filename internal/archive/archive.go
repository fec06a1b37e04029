package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vovakirdan/wirechat-client/internal/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	message_id TEXT,
	sender     TEXT NOT NULL,
	receiver   TEXT NOT NULL,
	content    TEXT NOT NULL,
	kind       TEXT NOT NULL,
	sent_at    DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages (sender, receiver);
`

// Archive is a write-through log of every message the client records, kept
// in a local sqlite file. It survives logout on purpose: it is a
// diagnostics and export artifact, not view state. The in-memory
// conversation store still resets fully on logout.
type Archive struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the archive at path. ":memory:"
// yields an ephemeral archive, which tests rely on.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Record appends a message to the archive.
func (a *Archive) Record(msg core.Message) error {
	_, err := a.db.Exec(
		`INSERT INTO messages (message_id, sender, receiver, content, kind, sent_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Sender, msg.Receiver, msg.Content, string(msg.Kind),
		msg.SentAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// Conversation returns the full logical history between two users, both
// literal orderings merged, in insertion order.
func (a *Archive) Conversation(user1, user2 string) ([]core.Message, error) {
	rows, err := a.db.Query(
		`SELECT message_id, sender, receiver, content, kind, sent_at
		 FROM messages
		 WHERE (sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)
		 ORDER BY id`,
		user1, user2, user2, user1,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversation: %w", err)
	}
	defer rows.Close()

	var msgs []core.Message
	for rows.Next() {
		var msg core.Message
		var kind, sentAt string
		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Receiver, &msg.Content, &kind, &sentAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg.Kind = core.MessageKind(kind)
		if ts, err := time.Parse(time.RFC3339Nano, sentAt); err == nil {
			msg.SentAt = ts
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return msgs, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
