package collector

import "testing"

func TestHit_Encode_SpaceAsPercent20(t *testing.T) {
	h := NewHit().Set("a", "b").Set("foo", "b ar")
	if got := h.Encode(); got != "a=b&foo=b%20ar" {
		t.Errorf("expected a=b&foo=b%%20ar, got %q", got)
	}
}

func TestHit_Encode_InsertionOrder(t *testing.T) {
	h := NewHit().
		Set("v", "1").
		Set("an", "ext1").
		Set("av", "2.0").
		Set("tid", "UA-1").
		Set("uid", "u2").
		Set("t", "event").
		Set("ec", "mainmenu").
		Set("ea", "view").
		Set("cd1", "cohort-A")
	want := "v=1&an=ext1&av=2.0&tid=UA-1&uid=u2&t=event&ec=mainmenu&ea=view&cd1=cohort-A"
	if got := h.Encode(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHit_Encode_EscapesKeysAndValues(t *testing.T) {
	h := NewHit().Set("k&1", "v=1").Set("id", "@testpilot-addon")
	if got := h.Encode(); got != "k%261=v%3D1&id=%40testpilot-addon" {
		t.Errorf("unexpected encoding: %q", got)
	}
}

func TestHit_Encode_Empty(t *testing.T) {
	if got := NewHit().Encode(); got != "" {
		t.Errorf("expected empty body, got %q", got)
	}
}

func TestHit_Set_ReplacesInPlace(t *testing.T) {
	h := NewHit().Set("a", "1").Set("b", "2").Set("a", "3")
	if h.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", h.Len())
	}
	if got := h.Encode(); got != "a=3&b=2" {
		t.Errorf("expected replaced value at original position, got %q", got)
	}
}

func TestHit_Get(t *testing.T) {
	h := NewHit().Set("ec", "interactions")
	if v, ok := h.Get("ec"); !ok || v != "interactions" {
		t.Errorf("expected interactions, got %q (%v)", v, ok)
	}
	if _, ok := h.Get("el"); ok {
		t.Error("expected absent key to report missing")
	}
}

func TestHit_Fields_CopyIsolated(t *testing.T) {
	h := NewHit().Set("a", "1")
	fields := h.Fields()
	fields[0].Value = "mutated"
	if v, _ := h.Get("a"); v != "1" {
		t.Error("mutating the returned slice must not touch the hit")
	}
}
