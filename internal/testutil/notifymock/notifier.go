package notifymock

import (
	"context"
	"sync"

	"microloan-backend/internal/domain/approval"
	"microloan-backend/internal/domain/notify"
)

// Sent captures one outbound notification for assertions.
type Sent struct {
	UserID  string
	Role    approval.Role
	Title   string
	Message string
	Type    notify.Type
}

// Notifier records every call; safe for concurrent use.
type Notifier struct {
	mu   sync.Mutex
	sent []Sent
}

var _ notify.Notifier = (*Notifier)(nil)

func (n *Notifier) Notify(_ context.Context, userID, title, message string, typ notify.Type) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Sent{UserID: userID, Title: title, Message: message, Type: typ})
}

func (n *Notifier) NotifyRole(_ context.Context, role approval.Role, title, message string, typ notify.Type) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Sent{Role: role, Title: title, Message: message, Type: typ})
}

func (n *Notifier) Sent() []Sent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Sent, len(n.sent))
	copy(out, n.sent)
	return out
}
