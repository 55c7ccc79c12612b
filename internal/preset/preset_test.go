package preset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/verte-zerg/passgen/internal/model"
)

func TestLookupPIN(t *testing.T) {
	got, err := Lookup("pin")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := model.GenerationConfig{Length: 6, Numbers: true}
	if got != want {
		t.Fatalf("unexpected pin preset: %+v", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("unknown"); !errors.Is(err, model.ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	cfg, err := Lookup(Strong)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	cfg.Length = 99
	cfg.Symbols = false
	again, _ := Lookup(Strong)
	if again.Length != 16 || !again.Symbols {
		t.Fatalf("preset was mutated through a copy: %+v", again)
	}
}

func TestNamesOrder(t *testing.T) {
	want := []string{"basic", "strong", "pin", "phrase"}
	names := Names()
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected names %v", names)
	}
	names[0] = "x"
	if Names()[0] != "basic" {
		t.Fatalf("Names must return a fresh slice")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range Names() {
		cfg, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset %s is invalid: %v", name, err)
		}
	}
	phrase, _ := Lookup(Phrase)
	if phrase.Mode != model.ModePassphrase {
		t.Fatalf("phrase preset must use passphrase mode")
	}
	if Default() != catalog[0].config {
		t.Fatalf("default preset should be basic")
	}
}
