package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	tests := []struct {
		name          string
		op            string
		underlyingErr error
		retryable     bool
		wantContains  []string
	}{
		{
			name:          "search failure wraps op and cause",
			op:            "search",
			underlyingErr: errors.New("connection refused"),
			retryable:     false,
			wantContains:  []string{"search", "connection refused"},
		},
		{
			name:          "retryable timeout",
			op:            "search",
			underlyingErr: errors.New("request timed out"),
			retryable:     true,
			wantContains:  []string{"search", "timed out"},
		},
		{
			name:          "reserve failure",
			op:            "reserve",
			underlyingErr: errors.New("status 500"),
			retryable:     false,
			wantContains:  []string{"reserve", "500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err *UpstreamError
			if tt.retryable {
				err = NewRetryableUpstreamError(tt.op, tt.underlyingErr)
			} else {
				err = NewUpstreamError(tt.op, tt.underlyingErr)
			}

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.retryable, err.Retryable)
		})
	}
}

func TestUpstreamErrorUnwrapsSentinels(t *testing.T) {
	err := NewRetryableUpstreamError("search", ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, error(err), &upstreamErr)
}
