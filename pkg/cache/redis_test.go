package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Requires a reachable Redis; set MENULAYOUT_TEST_REDIS=host:port.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("MENULAYOUT_TEST_REDIS")
	if addr == "" {
		t.Skip("MENULAYOUT_TEST_REDIS not set")
	}
	ctx := context.Background()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "menulayout-test:"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := "artifact:" + time.Now().Format(time.RFC3339Nano)
	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("fresh key: hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("svg"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "svg" {
		t.Fatalf("Get() = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("deleted key still hit")
	}
}
