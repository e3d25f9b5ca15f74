//go:build !ebiten

package main

import (
	"errors"
	"testing"
)

func TestViewWithoutEbiten(t *testing.T) {
	_, err := execute(t, "view")
	if !errors.Is(err, errViewerUnavailable) {
		t.Fatalf("err = %v, want errViewerUnavailable", err)
	}
}
