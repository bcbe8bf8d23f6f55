package testutil

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is the subset of testing.TB used by the helpers here. Keeping
// it as an interface avoids importing testing into non-test code paths.
type TestingTB interface {
	Helper()
	Skip(args ...any)
	Skipf(format string, args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// GetTestRedisAddr returns the address of a test Redis instance and
// whether one is reachable. Defaults to localhost:6379; override with
// TEST_REDIS_ADDR.
func GetTestRedisAddr(t TestingTB) (string, bool) {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		return addr, false
	}
	if cerr := conn.Close(); cerr != nil {
		t.Logf("warning: closing redis probe connection: %v", cerr)
	}
	return addr, true
}

// SetupTestRedis creates a Redis client for testing with automatic
// address detection. Tests are skipped if Redis is not available.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr, ok := GetTestRedisAddr(t)
	if !ok {
		t.Skip("Redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   15, // keep test data out of the default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	return client
}
