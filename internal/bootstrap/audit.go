package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records lifecycle events that should survive in the logs
// even when nothing else does (startup, seed outcome, shutdown).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
