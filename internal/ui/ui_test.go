package ui

import (
	"context"
	"testing"
)

func TestNew_ColorModeNever(t *testing.T) {
	u := New("never")
	if u == nil {
		t.Fatal("expected UI, got nil")
	}
	if u.color {
		t.Error("expected color=false for mode 'never', got true")
	}
}

func TestNew_ColorModeAlways(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	u := New("always")
	if u == nil {
		t.Fatal("expected UI, got nil")
	}
	if !u.color {
		t.Error("expected color=true for mode 'always', got false")
	}
}

func TestNew_ColorModeAuto(t *testing.T) {
	u := New("auto")
	if u == nil {
		t.Fatal("expected UI, got nil")
	}
	// color depends on terminal capabilities; creation is what matters
}

func TestNew_NOCOLOROverride(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	u := New("always")
	if u == nil {
		t.Fatal("expected UI, got nil")
	}
	if u.color {
		t.Error("expected NO_COLOR to disable color even for mode 'always'")
	}
}

func TestWithUI_FromContext_RoundTrip(t *testing.T) {
	u := New("never")
	ctx := WithUI(context.Background(), u)

	if got := FromContext(ctx); got != u {
		t.Error("FromContext did not return the UI stored with WithUI")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Fatal("FromContext returned nil for empty context")
	}
}
