package cache

import (
	"testing"
	"time"
)

// TestQuoteCacheRoundTrip checks basic set/get and invalidation.
func TestQuoteCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)

	if _, ok := c.GetQuote("TCS"); ok {
		t.Error("expected miss on empty cache")
	}

	c.SetQuote("TCS", 3800)
	price, ok := c.GetQuote("TCS")
	if !ok || price != 3800 {
		t.Errorf("expected cached price 3800, got %g (hit=%v)", price, ok)
	}

	c.InvalidateQuote("TCS")
	if _, ok := c.GetQuote("TCS"); ok {
		t.Error("expected miss after invalidation")
	}
}

// TestQuoteCacheTTLExpiry checks stale entries stop being served.
func TestQuoteCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	c.SetQuote("INFY", 1500)

	if _, ok := c.GetQuote("INFY"); !ok {
		t.Fatal("expected fresh entry to hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.GetQuote("INFY"); ok {
		t.Error("expected stale entry to miss")
	}
}

// TestQuoteCacheClear checks Clear drops everything.
func TestQuoteCacheClear(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	c.SetQuote("TCS", 3800)
	c.SetQuote("INFY", 1500)
	c.Clear()
	if _, ok := c.GetQuote("TCS"); ok {
		t.Error("expected miss after clear")
	}
	if _, ok := c.GetQuote("INFY"); ok {
		t.Error("expected miss after clear")
	}
}
