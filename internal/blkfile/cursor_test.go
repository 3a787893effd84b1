package blkfile

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursor_Take(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		reads   []int
		want    [][]byte
		wantErr bool
	}{
		{
			name:  "sequential reads preserve stream order",
			buf:   []byte{1, 2, 3, 4, 5},
			reads: []int{2, 3},
			want:  [][]byte{{1, 2}, {3, 4, 5}},
		},
		{
			name:  "zero-width read succeeds",
			buf:   []byte{1},
			reads: []int{0, 1},
			want:  [][]byte{{}, {1}},
		},
		{
			name:    "short buffer fails without partial read",
			buf:     []byte{1, 2},
			reads:   []int{3},
			wantErr: true,
		},
		{
			name:    "exhausted cursor fails",
			buf:     []byte{1, 2},
			reads:   []int{2, 1},
			want:    [][]byte{{1, 2}},
			wantErr: true,
		},
		{
			name:    "negative width rejected",
			buf:     []byte{1, 2},
			reads:   []int{-1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.buf)
			for i, n := range tt.reads {
				got, err := c.Take(n)
				if err != nil {
					if !tt.wantErr {
						t.Fatalf("Take(%d) unexpected error: %v", n, err)
					}
					if n >= 0 && !errors.Is(err, ErrInsufficientData) {
						t.Fatalf("Take(%d) error = %v, want ErrInsufficientData", n, err)
					}
					return
				}
				if i >= len(tt.want) {
					t.Fatalf("Take(%d) succeeded past expected reads", n)
				}
				if !bytes.Equal(got, tt.want[i]) {
					t.Fatalf("Take(%d) got = %v, want %v", n, got, tt.want[i])
				}
			}
			if tt.wantErr {
				t.Fatal("expected an error, got none")
			}
		})
	}
}

func TestCursor_Remaining(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	if c.Remaining() != 4 || c.Empty() {
		t.Fatalf("fresh cursor: remaining %d, empty %v", c.Remaining(), c.Empty())
	}
	if _, err := c.Take(3); err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if c.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", c.Remaining())
	}
	if _, err := c.Take(1); err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if !c.Empty() {
		t.Fatal("cursor should be empty")
	}
	// A failed read must not move the offset back over consumed bytes.
	if _, err := c.Take(1); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("error = %v, want ErrInsufficientData", err)
	}
	if !c.Empty() {
		t.Fatal("failed read changed cursor state")
	}
}
