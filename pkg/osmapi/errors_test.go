package osmapi

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalidArgument, "invalid-argument"},
		{KindUnauthorized, "unauthorized"},
		{KindBadRequest, "bad-request"},
		{KindNotFound, "not-found"},
		{KindGone, "gone"},
		{KindServer, "server"},
		{KindAPI, "api"},
		{KindTooManyObjects, "too-many-objects"},
		{KindDecode, "decode"},
		{KindTransport, "transport"},
		{Kind(99), "kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "status and message",
			err:  &Error{Kind: KindNotFound, StatusCode: 404, Op: "GetNode", Message: "Not Found"},
			want: "osmapi: GetNode: not-found (status 404): Not Found",
		},
		{
			name: "validation failure",
			err:  &Error{Kind: KindInvalidArgument, Op: "GetWay", Message: "id must be a positive integer, got -1"},
			want: "osmapi: GetWay: invalid-argument: id must be a positive integer, got -1",
		},
		{
			name: "wrapped cause",
			err:  &Error{Kind: KindTransport, Op: "GetHistory", Message: "request failed", Err: errors.New("connection refused")},
			want: "osmapi: GetHistory: transport: request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Kind: KindTransport, Op: "GetNode", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestIsKind_WrappedError(t *testing.T) {
	inner := &Error{Kind: KindGone, StatusCode: 410, Op: "GetWay"}
	wrapped := fmt.Errorf("fetching way: %w", inner)

	if !IsKind(wrapped, KindGone) {
		t.Error("IsKind failed to match through a wrapping layer")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(nil, KindGone) {
		t.Error("IsKind matched nil")
	}
	if IsKind(errors.New("plain"), KindGone) {
		t.Error("IsKind matched a plain error")
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(&Error{Kind: KindNotFound}) {
		t.Error("IsNotFound failed")
	}
	if IsNotFound(&Error{Kind: KindServer}) {
		t.Error("IsNotFound matched a server error")
	}
	if !IsInvalidArgument(&Error{Kind: KindInvalidArgument}) {
		t.Error("IsInvalidArgument failed")
	}
}
