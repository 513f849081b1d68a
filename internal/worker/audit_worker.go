package worker

import (
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/audit"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
)

// StartAuditWorker registers the audit recorder on the dispatcher.
func StartAuditWorker(dispatcher events.Dispatcher, recorder *audit.Recorder, logger *zap.Logger) {
	if dispatcher == nil || recorder == nil {
		return
	}
	recorder.Register(dispatcher)
	if logger != nil {
		logger.Info("audit worker registered")
	}
}
