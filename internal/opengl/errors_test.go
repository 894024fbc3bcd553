package opengl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestResourceCreationError(t *testing.T) {
	err := &ResourceCreationError{Kind: "shader compile", Log: "0:3: 'vec9' : undeclared identifier"}
	msg := err.Error()
	if !strings.Contains(msg, "shader compile") {
		t.Errorf("message misses kind: %q", msg)
	}
	if !strings.Contains(msg, "undeclared identifier") {
		t.Errorf("message misses driver log: %q", msg)
	}
}

func TestUnknownUniformError(t *testing.T) {
	err := &UnknownUniformError{Name: "fogDensity"}
	if !strings.Contains(err.Error(), `"fogDensity"`) {
		t.Errorf("message misses uniform name: %q", err.Error())
	}
}

func TestUnknownStorageBlockError(t *testing.T) {
	err := &UnknownStorageBlockError{Block: "Spheres"}
	if !strings.Contains(err.Error(), `"Spheres"`) {
		t.Errorf("message misses block name: %q", err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("init renderer: %w", &UnknownStorageBlockError{Block: "Lights"})
	var target *UnknownStorageBlockError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As failed through fmt.Errorf wrapping")
	}
	if target.Block != "Lights" {
		t.Errorf("block: expected Lights, got %q", target.Block)
	}
}
