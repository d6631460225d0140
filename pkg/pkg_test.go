package pkg

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "vetvar"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Validated variable import from untrusted config files"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file alongside this package.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); strings.TrimSpace(Version) != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}
}

func TestMakeError_NilForEmpty(t *testing.T) {
	if err := MakeError(); err != nil {
		t.Errorf("Expected nil Error for no arguments, got %v", err)
	}
}

func TestError_ChainFormatting(t *testing.T) {
	inner := errors.New("open failed")
	err := ErrReadInput.Wrap(inner)

	msg := err.Error()
	if !strings.Contains(msg, "failed to read input") {
		t.Errorf("Expected chain to contain sentinel message, got %q", msg)
	}
	if !strings.Contains(msg, "open failed") {
		t.Errorf("Expected chain to contain wrapped message, got %q", msg)
	}
	if !errors.Is(err, inner) {
		t.Error("Expected errors.Is to find wrapped error in chain")
	}
}

func TestUnwrapErrors_FlattensNestedChains(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	chain := UnwrapErrors(MakeError(a, b))

	if len(chain) < 2 {
		t.Fatalf("Expected at least 2 errors in chain, got %d", len(chain))
	}
	if !errors.Is(chain, a) || !errors.Is(chain, b) {
		t.Error("Expected flattened chain to contain both errors")
	}
}
