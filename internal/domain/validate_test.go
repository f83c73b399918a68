package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateNameBoundary(t *testing.T) {
	if err := ValidateName(strings.Repeat("a", MaxNameLength)); err != nil {
		t.Fatalf("name at the limit must pass: %v", err)
	}
	err := ValidateName(strings.Repeat("a", MaxNameLength+1))
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("expected FieldTooLong, got %v", err)
	}
}

func TestValidateLinks(t *testing.T) {
	links := make([]string, MaxLinkCount)
	for i := range links {
		links[i] = strings.Repeat("u", MaxLinkLength)
	}
	if err := ValidateLinks(links); err != nil {
		t.Fatalf("full link list at limits must pass: %v", err)
	}

	if err := ValidateLinks(append(links, "x")); !errors.Is(err, ErrTooManyLinks) {
		t.Fatalf("expected TooManyLinks, got %v", err)
	}

	long := []string{strings.Repeat("u", MaxLinkLength+1)}
	if err := ValidateLinks(long); !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("expected FieldTooLong for oversized link, got %v", err)
	}
}

func TestValidateInteraction(t *testing.T) {
	text := "hello"
	if err := ValidateInteraction(InteractionLike, nil); err != nil {
		t.Fatalf("plain like must pass: %v", err)
	}
	if err := ValidateInteraction(InteractionComment, &text); err != nil {
		t.Fatalf("comment with text must pass: %v", err)
	}
	if err := ValidateInteraction(InteractionLike, &text); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("like with text must fail, got %v", err)
	}
	if err := ValidateInteraction(InteractionComment, nil); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("comment without text must fail, got %v", err)
	}
}

func TestParseCollabStatus(t *testing.T) {
	for _, s := range []string{"pending", "accepted", "rejected"} {
		if _, err := ParseCollabStatus(s); err != nil {
			t.Fatalf("parse %q failed: %v", s, err)
		}
	}
	if _, err := ParseCollabStatus("cancelled"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected InvalidStateTransition, got %v", err)
	}
	if CollabPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !CollabAccepted.Terminal() || !CollabRejected.Terminal() {
		t.Fatalf("accepted/rejected must be terminal")
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if v, err := CheckedAdd(1, 2, "c"); err != nil || v != 3 {
		t.Fatalf("expected 3, got %d %v", v, err)
	}
	if _, err := CheckedAdd(math.MaxUint64, 1, "c"); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected Overflow, got %v", err)
	}
	if v, err := CheckedSub(3, 3, "c"); err != nil || v != 0 {
		t.Fatalf("expected 0, got %d %v", v, err)
	}
	if _, err := CheckedSub(2, 3, "c"); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected Underflow, got %v", err)
	}
}
