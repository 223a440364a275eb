package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil || config.Limit != 0 {
		t.Fatalf("expected unlimited health endpoint, got %+v", config)
	}
}

func TestMatchEndpointExactBeatsPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/applications/", Method: "POST", Limit: 30, Window: time.Hour},
		{Path: "/applications", Method: "POST", Limit: 100, Window: time.Minute},
	}

	config := MatchEndpoint("/applications", "POST", configs)
	if config == nil || config.Limit != 100 {
		t.Fatalf("expected exact match, got %+v", config)
	}
}

func TestMatchEndpointPrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/applications/3f0c/email", "POST", configs)
	if config == nil || config.Window != time.Hour {
		t.Fatalf("expected strict tier for assist route, got %+v", config)
	}

	if MatchEndpoint("/applications", "GET", configs) != nil {
		t.Error("expected reads to fall through to the default limit")
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/scan", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/scan", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}

	allowed, info := limiter.Allow("1.2.3.4", "/scan", "POST")
	if allowed {
		t.Fatal("request beyond burst should be rejected")
	}
	if info.RetryAfter <= 0 {
		t.Error("expected a retry-after hint")
	}
	if info.Limit != 20 {
		t.Errorf("expected limit 20, got %d", info.Limit)
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/scan", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("1.1.1.1", "/scan", "POST"); !allowed {
		t.Fatal("first client should pass")
	}
	if allowed, _ := limiter.Allow("1.1.1.1", "/scan", "POST"); allowed {
		t.Fatal("first client should be limited")
	}
	if allowed, _ := limiter.Allow("2.2.2.2", "/scan", "POST"); !allowed {
		t.Fatal("second client has its own bucket")
	}
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4", "/scan", "POST"); !allowed {
			t.Fatal("disabled limiter must allow everything")
		}
	}
}
