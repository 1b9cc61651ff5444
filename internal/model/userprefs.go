package model

import (
	"encoding/json"
	"errors"

	"cakecollate/pkg/domain"
)

// Default window geometry and data location used when no preferences exist.
const (
	DefaultWindowWidth         = 740
	DefaultWindowHeight        = 600
	DefaultCakeCollateFilePath = "data/cakecollate.db"
)

// ErrEmptyPath is returned when a data file path is blank.
var ErrEmptyPath = errors.New("cakecollate file path must not be empty")

// Point is a screen position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GuiSettings is the window geometry a front end restores on start. A nil
// WindowCoordinates lets the front end choose the position.
type GuiSettings struct {
	WindowWidth       float64 `json:"windowWidth"`
	WindowHeight      float64 `json:"windowHeight"`
	WindowCoordinates *Point  `json:"windowCoordinates,omitempty"`
}

// DefaultGuiSettings returns the default window geometry.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{WindowWidth: DefaultWindowWidth, WindowHeight: DefaultWindowHeight}
}

// Equal compares geometry and position by value.
func (g GuiSettings) Equal(other GuiSettings) bool {
	if g.WindowWidth != other.WindowWidth || g.WindowHeight != other.WindowHeight {
		return false
	}
	switch {
	case g.WindowCoordinates == nil || other.WindowCoordinates == nil:
		return g.WindowCoordinates == nil && other.WindowCoordinates == nil
	default:
		return *g.WindowCoordinates == *other.WindowCoordinates
	}
}

func (g GuiSettings) clone() GuiSettings {
	if g.WindowCoordinates != nil {
		p := *g.WindowCoordinates
		g.WindowCoordinates = &p
	}
	return g
}

// ReadOnlyUserPrefs exposes preferences without setters.
type ReadOnlyUserPrefs interface {
	GuiSettings() GuiSettings
	CakeCollateFilePath() string
}

// UserPrefs holds the window geometry and the data file location.
type UserPrefs struct {
	gui      GuiSettings
	filePath string
}

// NewUserPrefs returns preferences with default values.
func NewUserPrefs() *UserPrefs {
	return &UserPrefs{gui: DefaultGuiSettings(), filePath: DefaultCakeCollateFilePath}
}

// UserPrefsFrom copies src.
func UserPrefsFrom(src ReadOnlyUserPrefs) (*UserPrefs, error) {
	if src == nil {
		return nil, domain.ErrNilArgument
	}
	p := NewUserPrefs()
	if err := p.Reset(src); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset overwrites every preference with the values in src.
func (p *UserPrefs) Reset(src ReadOnlyUserPrefs) error {
	if src == nil {
		return domain.ErrNilArgument
	}
	if err := p.SetCakeCollateFilePath(src.CakeCollateFilePath()); err != nil {
		return err
	}
	p.SetGuiSettings(src.GuiSettings())
	return nil
}

func (p *UserPrefs) GuiSettings() GuiSettings { return p.gui.clone() }

func (p *UserPrefs) SetGuiSettings(g GuiSettings) { p.gui = g.clone() }

func (p *UserPrefs) CakeCollateFilePath() string { return p.filePath }

// SetCakeCollateFilePath rejects blank paths.
func (p *UserPrefs) SetCakeCollateFilePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	p.filePath = path
	return nil
}

// Equal compares every preference.
func (p *UserPrefs) Equal(other *UserPrefs) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.filePath == other.filePath && p.gui.Equal(other.gui)
}

type userPrefsRecord struct {
	GuiSettings         GuiSettings `json:"guiSettings"`
	CakeCollateFilePath string      `json:"cakeCollateFilePath"`
}

// MarshalJSON encodes preferences for the preferences file.
func (p *UserPrefs) MarshalJSON() ([]byte, error) {
	return json.Marshal(userPrefsRecord{GuiSettings: p.gui, CakeCollateFilePath: p.filePath})
}

// UnmarshalJSON decodes preferences, keeping defaults for absent fields.
func (p *UserPrefs) UnmarshalJSON(data []byte) error {
	rec := userPrefsRecord{GuiSettings: DefaultGuiSettings(), CakeCollateFilePath: DefaultCakeCollateFilePath}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.CakeCollateFilePath == "" {
		return ErrEmptyPath
	}
	p.gui = rec.GuiSettings
	p.filePath = rec.CakeCollateFilePath
	return nil
}
