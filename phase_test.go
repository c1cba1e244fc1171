package phoenix

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPhase_String(t *testing.T) {
	want := map[Phase]string{
		PhaseNormal:  "Normal",
		PhaseNigredo: "Nigredo",
		PhaseRubedo:  "Rubedo",
	}
	for p, name := range want {
		if p.String() != name {
			t.Errorf("Expected %q, got %q", name, p.String())
		}
	}

	if s := Phase(7).String(); !strings.Contains(s, "7") {
		t.Errorf("Expected undefined phase to include its value, got %q", s)
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range Phases() {
		for _, name := range []string{p.String(), strings.ToLower(p.String()), strings.ToUpper(p.String())} {
			got, err := ParsePhase(name)
			if err != nil {
				t.Fatalf("ParsePhase(%q) failed: %v", name, err)
			}
			if got != p {
				t.Errorf("ParsePhase(%q) = %s, want %s", name, got, p)
			}
		}
	}
}

func TestParsePhase_Unknown(t *testing.T) {
	for _, name := range []string{"", "albedo", "Normal ", "0"} {
		_, err := ParsePhase(name)
		if !errors.Is(err, ErrUnknownPhase) {
			t.Errorf("ParsePhase(%q): expected ErrUnknownPhase, got %v", name, err)
		}
	}
}

func TestPhase_Valid(t *testing.T) {
	for _, p := range Phases() {
		if !p.Valid() {
			t.Errorf("Expected %s to be valid", p)
		}
	}
	for _, p := range []Phase{-1, 3, 100} {
		if p.Valid() {
			t.Errorf("Expected Phase(%d) to be invalid", int(p))
		}
	}
}

func TestPhase_JSON(t *testing.T) {
	type record struct {
		NextPhase Phase `json:"next_phase"`
	}

	data, err := json.Marshal(record{NextPhase: PhaseRubedo})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"next_phase":"Rubedo"}` {
		t.Errorf("Unexpected encoding: %s", data)
	}

	var r record
	if err := json.Unmarshal([]byte(`{"next_phase":"nigredo"}`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if r.NextPhase != PhaseNigredo {
		t.Errorf("Expected Nigredo, got %s", r.NextPhase)
	}

	if err := json.Unmarshal([]byte(`{"next_phase":"citrinitas"}`), &r); err == nil {
		t.Error("Expected error for unknown phase name")
	}

	if _, err := json.Marshal(record{NextPhase: Phase(9)}); err == nil {
		t.Error("Expected error marshaling undefined phase")
	}
}
