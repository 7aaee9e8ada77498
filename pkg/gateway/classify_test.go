package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: CategoryTimeout,
		},
		{
			name: "wrapped deadline exceeded",
			err:  fmt.Errorf("request: %w", context.DeadlineExceeded),
			want: CategoryTimeout,
		},
		{
			name: "cancelled",
			err:  context.Canceled,
			want: CategoryCancelled,
		},
		{
			name: "wrapped cancelled",
			err:  &url.Error{Op: "Get", URL: "https://api.example.com", Err: context.Canceled},
			want: CategoryCancelled,
		},
		{
			name: "network timeout",
			err:  &url.Error{Op: "Get", URL: "https://api.example.com", Err: timeoutErr{}},
			want: CategoryTimeout,
		},
		{
			name: "dns failure",
			err:  &url.Error{Op: "Get", URL: "https://api.example.com", Err: &net.DNSError{Err: "no such host", Name: "api.example.com"}},
			want: CategoryNoConnectivity,
		},
		{
			name: "connection refused",
			err:  &url.Error{Op: "Get", URL: "https://api.example.com", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
			want: CategoryNoConnectivity,
		},
		{
			name: "anything else",
			err:  errors.New("malformed response"),
			want: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError(tt.err)
			if got.Category != tt.want {
				t.Errorf("expected category %s, got %s", tt.want, got.Category)
			}
			if got.StatusCode != 0 {
				t.Errorf("expected no status code, got %d", got.StatusCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("expected original error to be wrapped")
			}

			// Classification is pure: same input, same category.
			again := classifyTransportError(tt.err)
			if again.Category != got.Category {
				t.Errorf("classification not stable: %s then %s", got.Category, again.Category)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status      int
		want        Category
		wantMessage string
	}{
		{400, CategoryBadRequest, msgBadRequest},
		{401, CategoryUnauthorized, msgUnauthorized},
		{500, CategoryServerError, msgServerError},
		{403, CategoryBadResponse, msgBadResponse},
		{404, CategoryBadResponse, msgBadResponse},
		{502, CategoryBadResponse, msgBadResponse},
	}

	for _, tt := range tests {
		got := classifyStatus(tt.status)
		if got.Category != tt.want {
			t.Errorf("status %d: expected category %s, got %s", tt.status, tt.want, got.Category)
		}
		if got.StatusCode != tt.status {
			t.Errorf("status %d: expected status carried, got %d", tt.status, got.StatusCode)
		}
		if got.Message != tt.wantMessage {
			t.Errorf("status %d: expected message %q, got %q", tt.status, tt.wantMessage, got.Message)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	err := fmt.Errorf("call failed: %w", classifyStatus(401))

	if !IsUnauthorized(err) {
		t.Error("expected IsUnauthorized through wrapping")
	}
	if IsTimeout(err) {
		t.Error("did not expect IsTimeout")
	}

	gwErr, ok := AsError(err)
	if !ok {
		t.Fatal("expected AsError to find the gateway error")
	}
	if gwErr.StatusCode != 401 {
		t.Errorf("expected status 401, got %d", gwErr.StatusCode)
	}
}
