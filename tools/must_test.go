package tools

import (
	"errors"
	"testing"
)

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Must("", errors.New("boom"))
}
