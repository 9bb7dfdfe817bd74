package fiber

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jmallari/gatehouse"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: http.StatusOK,
		},
		{
			name: "not found",
			err:  gatehouse.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "duplicate account",
			err:  gatehouse.ErrDuplicateAccount,
			want: http.StatusConflict,
		},
		{
			name: "invalid input",
			err:  gatehouse.ErrInvalidInput,
			want: http.StatusBadRequest,
		},
		{
			name: "email required wraps invalid input",
			err:  gatehouse.ErrEmailRequired,
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("find account: %w", gatehouse.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "invalid filter is internal",
			err:  gatehouse.ErrInvalidFilter,
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error is internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := mapErrorToStatus(test.err)
			if got != test.want {
				t.Errorf("mapErrorToStatus(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}

func TestNewShouldDefaultLogger(t *testing.T) {
	adapter := New(nil, nil)
	if adapter.logger == nil {
		t.Fatal("expected a fallback logger")
	}
}
