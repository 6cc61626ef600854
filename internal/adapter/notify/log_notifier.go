// Package notify holds the outbound notification adapter. The real sender
// lives in a separate service; this adapter is the fire-and-forget boundary
// the engine talks to. Failures are logged and swallowed so a notification
// problem can never roll back a financial mutation.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"microloan-backend/internal/domain/approval"
	domainNotify "microloan-backend/internal/domain/notify"
)

type LogNotifier struct{ log *logrus.Logger }

var _ domainNotify.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log *logrus.Logger) *LogNotifier { return &LogNotifier{log: log} }

func (n *LogNotifier) Notify(_ context.Context, userID, title, message string, typ domainNotify.Type) {
	n.log.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
		"type":    string(typ),
	}).Info(message)
}

func (n *LogNotifier) NotifyRole(_ context.Context, role approval.Role, title, message string, typ domainNotify.Type) {
	n.log.WithFields(logrus.Fields{
		"role":  string(role),
		"title": title,
		"type":  string(typ),
	}).Info(message)
}
