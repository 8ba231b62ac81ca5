package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger mencatat kejadian level aplikasi (startup, shutdown, dsb).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
