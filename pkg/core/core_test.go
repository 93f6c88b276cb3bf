package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestTranslate_Smoke(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("ValidateCatalog: %v", err)
	}
	tr, err := Translate(Resolve(Raw{}), "AAAA")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if tr.Output != "BVNW" {
		t.Fatalf("expected BVNW, got %q", tr.Output)
	}
}

func TestResolve_IssueKinds(t *testing.T) {
	res := Resolve(Raw{Rotors: "1,1,2", Rings: "99,1,1", Reflector: "q", Plugboard: "AA"})
	if len(res.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(res.Issues), res.Issues)
	}
	err := res.Err()
	for _, kind := range []error{ErrInvalidRotorSelection, ErrInvalidRingPosition, ErrInvalidReflectorCode, ErrInvalidPlugboardSpec} {
		if !errors.Is(err, kind) {
			t.Errorf("expected %v in %v", kind, err)
		}
	}
	if res.Settings.Canonical() != DefaultSettings().Canonical() {
		t.Errorf("expected defaults after fallback, got %+v", res.Settings)
	}
}

func TestNew_DecryptsWithSameSettings(t *testing.T) {
	s := Resolve(Raw{Rotors: "5,3,1", Rings: "7,8,9", Reflector: "c", Plugboard: "QW,ER"}).Settings
	enc, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dec, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cipher := enc.Translate("Meet me by the old mill")
	plain := dec.Translate(cipher)
	if plain != "MEET MEBY THEO LDMI LL" {
		t.Fatalf("unexpected round trip %q", plain)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	tr, err := Translate(Resolve(Raw{}), "Hello")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := MarshalTranslations(&buf, []Translation{tr}); err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalTranslations(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Output != tr.Output || got[0].Machine.Fingerprint != tr.Machine.Fingerprint {
		t.Fatalf("unexpected decode %+v", got)
	}
}
