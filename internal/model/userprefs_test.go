package model

import (
	"encoding/json"
	"errors"
	"testing"

	"cakecollate/pkg/domain"
)

func TestUserPrefsDefaults(t *testing.T) {
	p := NewUserPrefs()
	if !p.GuiSettings().Equal(DefaultGuiSettings()) {
		t.Fatalf("unexpected default gui settings %+v", p.GuiSettings())
	}
	if p.CakeCollateFilePath() != DefaultCakeCollateFilePath {
		t.Fatalf("unexpected default path %q", p.CakeCollateFilePath())
	}
}

func TestUserPrefsSettersRejectMissingValues(t *testing.T) {
	p := NewUserPrefs()
	if err := p.SetCakeCollateFilePath(""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
	if err := p.Reset(nil); !errors.Is(err, domain.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if _, err := UserPrefsFrom(nil); !errors.Is(err, domain.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
}

func TestGuiSettingsCopiesCoordinates(t *testing.T) {
	p := NewUserPrefs()
	pt := &Point{X: 10, Y: 20}
	p.SetGuiSettings(GuiSettings{WindowWidth: 800, WindowHeight: 640, WindowCoordinates: pt})
	pt.X = 99
	if got := p.GuiSettings().WindowCoordinates; got == nil || got.X != 10 {
		t.Fatalf("expected stored coordinates to be independent, got %+v", got)
	}
	if p.GuiSettings().Equal(DefaultGuiSettings()) {
		t.Fatalf("positioned settings must differ from defaults")
	}
}

func TestUserPrefsJSON(t *testing.T) {
	p := NewUserPrefs()
	p.SetGuiSettings(GuiSettings{WindowWidth: 1024, WindowHeight: 768, WindowCoordinates: &Point{X: 5, Y: 6}})
	if err := p.SetCakeCollateFilePath("orders/cakes.db"); err != nil {
		t.Fatalf("set path: %v", err)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := NewUserPrefs()
	if err := json.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(p) {
		t.Fatalf("expected %+v, got %+v", p, decoded)
	}

	partial := NewUserPrefs()
	if err := json.Unmarshal([]byte(`{"guiSettings":{"windowWidth":900,"windowHeight":700}}`), partial); err != nil {
		t.Fatalf("unmarshal partial: %v", err)
	}
	if partial.CakeCollateFilePath() != DefaultCakeCollateFilePath {
		t.Fatalf("absent path should keep default, got %q", partial.CakeCollateFilePath())
	}
	if err := json.Unmarshal([]byte(`{"cakeCollateFilePath":""}`), partial); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath for blank stored path, got %v", err)
	}
}
