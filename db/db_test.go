package db

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
)

// countingBackoff records how often the retry schedule is consulted.
type countingBackoff struct {
	attempts int
	inner    retry.Backoff
}

func (b *countingBackoff) Next() (time.Duration, bool) {
	b.attempts++
	return b.inner.Next()
}

// An unroutable local port, fast to fail on.
const unreachableDSN = "host=127.0.0.1 port=1 user=postgres dbname=karaoke sslmode=disable connect_timeout=1"

func withTestBackoff(t *testing.T) *countingBackoff {
	t.Helper()
	counter := &countingBackoff{inner: retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))}
	orig := newBackoff
	newBackoff = func() retry.Backoff { return counter }
	t.Cleanup(func() { newBackoff = orig })
	return counter
}

func TestMigrate_RetriesWhileDatabaseUnreachable(t *testing.T) {
	counter := withTestBackoff(t)

	if err := Migrate(context.Background(), unreachableDSN); err == nil {
		t.Fatal("Migrate() = nil error against an unreachable database")
	}
	if counter.attempts < 2 {
		t.Errorf("backoff consulted %d times, expected the migration to be retried", counter.attempts)
	}
}

func TestConnect_RetriesWhileDatabaseUnreachable(t *testing.T) {
	counter := withTestBackoff(t)

	if _, err := Connect(context.Background(), unreachableDSN); err == nil {
		t.Fatal("Connect() = nil error against an unreachable database")
	}
	if counter.attempts < 2 {
		t.Errorf("backoff consulted %d times, expected the connect to be retried", counter.attempts)
	}
}
