package random

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestIndexWithinBounds(t *testing.T) {
	source := NewIndexSource(nil)
	for n := 1; n <= 9; n += 2 {
		for range 50 {
			got, err := source(n)
			if err != nil {
				t.Fatalf("index: %v", err)
			}
			if got < 0 || got >= n {
				t.Fatalf("index %d outside [0,%d)", got, n)
			}
		}
	}
}

func TestIndexCoversEveryValue(t *testing.T) {
	seen := map[int]bool{}
	for range 500 {
		got, err := Index(nil, 3)
		if err != nil {
			t.Fatalf("index: %v", err)
		}
		seen[got] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all 3 indexes over 500 draws, saw %v", seen)
	}
}

func TestIndexRejectsInvalidBound(t *testing.T) {
	if _, err := Index(nil, 0); !errors.Is(err, ErrInvalidBound) {
		t.Fatalf("Index(0) error = %v, want %v", err, ErrInvalidBound)
	}
}

func TestIndexReaderError(t *testing.T) {
	if _, err := Index(errReader{}, 3); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Index error = %v, want %v", err, ErrUnavailable)
	}
}

func TestBytes(t *testing.T) {
	got, err := Bytes(bytes.NewReader([]byte{1, 2, 3, 4}), 4)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("unexpected bytes %v", got)
	}

	first, err := Bytes(nil, 32)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	second, err := Bytes(nil, 32)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("expected distinct random buffers")
	}
}

func TestBytesErrors(t *testing.T) {
	if _, err := Bytes(nil, 0); err == nil {
		t.Fatal("expected error for non-positive size")
	}
	if _, err := Bytes(errReader{}, 4); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Bytes error = %v, want %v", err, ErrUnavailable)
	}
	if _, err := Bytes(bytes.NewReader([]byte{1}), 4); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("short read error = %v, want %v", err, ErrUnavailable)
	}
}

func TestIndexDeterministicWithReader(t *testing.T) {
	// 8 bytes encoding 7 map to 7 % 5 = 2.
	reader := bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 7})
	got, err := Index(reader, 5)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if got != 2 {
		t.Fatalf("Index = %d, want 2", got)
	}
}
