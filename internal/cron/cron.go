package cron

import (
	"log"
	"time"

	"github.com/cortylix/site-go/internal/application"
)

// StartAuditCleanupTask prunes audit logs older than the retention window,
// once at startup and then every 24 hours.
func StartAuditCleanupTask(auditService *application.AuditService, retentionDays int) {
	go func() {
		log.Printf("Starting audit log cleanup task (retention: %d days)", retentionDays)

		if err := auditService.CleanupOldLogs(retentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(retentionDays); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
