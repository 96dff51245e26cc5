package tgdfile

import (
	"errors"
	"testing"
)

func TestOSError_Message(t *testing.T) {
	underlying := errors.New("permission denied")

	tests := []struct {
		name string
		err  *OSError
		want string
	}{
		{
			name: "with path",
			err:  &OSError{Op: "open", Path: "/data/tiles.tgd", Err: underlying},
			want: "open /data/tiles.tgd: permission denied",
		},
		{
			name: "without path",
			err:  &OSError{Op: "close", Err: underlying},
			want: "close: permission denied",
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

func TestOSError_Unwrap(t *testing.T) {
	underlying := errors.New("bad file descriptor")
	err := &OSError{Op: "size", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is(err, underlying) = false, want true")
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}
