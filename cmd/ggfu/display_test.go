//go:build !display

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggfu/internal/display"
)

func TestRunSphereDisplayHeadless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.png")
	err := run([]string{"sphere", "-radius", "8", "-display", "-o", path}, &bytes.Buffer{})
	if !errors.Is(err, display.ErrUnavailable) {
		t.Fatalf("err = %v, want display.ErrUnavailable", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("PNG should still be written before display: %v", err)
	}
}
