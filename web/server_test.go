package web

import (
	"testing"

	"github.com/yucath/fpl-minileague-dashboard/fpl"
)

func TestRouteTimeoutCoversUpstreamRetries(t *testing.T) {
	// An initial attempt plus two retries per upstream call; the route
	// timeout must leave room for several such calls on a cold cache.
	perCall := 3 * fpl.RequestTimeout
	if routeTimeout < 3*perCall {
		t.Errorf("route timeout %v too tight for a cold-cache fan-out (per-call budget %v)", routeTimeout, perCall)
	}
}

func TestCommaFormatter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0"},
		{n: 7, want: "7"},
		{n: 999, want: "999"},
		{n: 1000, want: "1,000"},
		{n: 123456, want: "123,456"},
		{n: 1234567, want: "1,234,567"},
		{n: -54321, want: "-54,321"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := commaFormatter(tc.n)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestChipFormatter(t *testing.T) {
	tests := []struct {
		chip string
		want string
	}{
		{chip: "", want: "-"},
		{chip: "bboost", want: "Bench Boost"},
		{chip: "freehit", want: "Free Hit"},
		{chip: "3xc", want: "Triple Captain"},
		{chip: "wildcard", want: "Wildcard"},
		{chip: "manager", want: "manager"},
	}

	for _, tc := range tests {
		t.Run(tc.chip, func(t *testing.T) {
			got := chipFormatter(tc.chip)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestPlayedFormatter(t *testing.T) {
	if got := playedFormatter(9); got != "9/11" {
		t.Errorf("expected '9/11', got '%s'", got)
	}
}

func TestFixed1Formatter(t *testing.T) {
	if got := fixed1Formatter(55.5); got != "55.5" {
		t.Errorf("expected '55.5', got '%s'", got)
	}
	if got := fixed1Formatter(14.24); got != "14.2" {
		t.Errorf("expected '14.2', got '%s'", got)
	}
}
