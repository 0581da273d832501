package services

import (
	"strings"
	"testing"
)

// The queue lock must be the transaction-scoped variant. A session-scoped
// pg_advisory_lock would outlive the transaction and deadlock the pool
// once a locking request errors out before unlocking.
func TestQueueLockIsTransactionScoped(t *testing.T) {
	if !strings.Contains(queueLockSQL, "pg_advisory_xact_lock") {
		t.Errorf("queue lock SQL %q is not transaction scoped", queueLockSQL)
	}
	if queueLockID == 0 {
		t.Error("queue lock key must be a fixed nonzero value shared by all writers")
	}
}
