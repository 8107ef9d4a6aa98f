package cli

import (
	"sync"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
)

var (
	auditLogger     audit.Logger
	auditLoggerOnce sync.Once
)

// getAuditLogger returns the global audit logger (file or nop). Uses effective path: CLI > env > config (set in PersistentPreRun).
func getAuditLogger() audit.Logger {
	auditLoggerOnce.Do(func() {
		path := effectiveAuditLogPath
		if path == "" {
			auditLogger = &audit.NopLogger{}
			return
		}
		l, err := audit.NewFileLogger(path)
		if err != nil {
			auditLogger = &audit.NopLogger{}
			return
		}
		auditLogger = l
	})
	return auditLogger
}

// auditLog writes one audit entry. Entries carry file names and container
// hashes only; secret material never reaches the log.
func auditLog(operation, inputFile, outputFile, containerHash, format string, success bool, errMsg string) {
	getAuditLogger().Log(&audit.Entry{
		Operation:     operation,
		InputFile:     inputFile,
		OutputFile:    outputFile,
		ContainerHash: containerHash,
		Format:        format,
		Success:       success,
		Error:         errMsg,
	})
}
