package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/color-game/palettes/colorspace"
)

// ColorShade is one stop of a shade scale.
type ColorShade struct {
	Name     string                `json:"name"`
	Value    int                   `json:"value"`
	Color    colorspace.ColorValue `json:"color"`
	Contrast float64               `json:"contrast"`
	IsActive bool                  `json:"isActive"`
}

// Palette is the value handed to exporters and the UI.
type Palette struct {
	Name      string                `json:"name"`
	BaseColor colorspace.ColorValue `json:"baseColor"`
	Shades    []ColorShade          `json:"shades"`
	Algorithm string                `json:"algorithm"`
}

// Validate checks the shade invariants: at least one shade, strictly
// increasing values, unique names, valid hex on every color.
func (p Palette) Validate() error {
	if len(p.Shades) == 0 {
		return fmt.Errorf("palette %q has no shades", p.Name)
	}

	names := make(map[string]bool, len(p.Shades))
	for i, shade := range p.Shades {
		if names[shade.Name] {
			return fmt.Errorf("duplicate shade name %q", shade.Name)
		}
		names[shade.Name] = true

		if i > 0 && shade.Value <= p.Shades[i-1].Value {
			return fmt.Errorf("shade %q value %d does not increase", shade.Name, shade.Value)
		}

		if _, err := colorspace.HexToColor(shade.Color.Hex); err != nil {
			return fmt.Errorf("shade %q: %v", shade.Name, err)
		}
	}

	return nil
}

// Active returns the shade marked active, if any.
func (p Palette) Active() (ColorShade, bool) {
	for _, shade := range p.Shades {
		if shade.IsActive {
			return shade, true
		}
	}
	return ColorShade{}, false
}

// Hexes lists the shade hex values in scale order.
func (p Palette) Hexes() []string {
	hexes := make([]string, len(p.Shades))
	for i, shade := range p.Shades {
		hexes[i] = shade.Color.Hex
	}
	return hexes
}

// SavedPalette is a palette persisted by a user.
type SavedPalette struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Palette   Palette   `json:"palette" db:"-"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func NewSavedPalette(userID string, palette Palette) SavedPalette {
	now := time.Now()
	return SavedPalette{
		ID:        uuid.New().String(),
		UserID:    userID,
		Palette:   palette,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EncodeShades serializes the shade list for storage.
func (p Palette) EncodeShades() (string, error) {
	data, err := json.Marshal(p.Shades)
	if err != nil {
		return "", fmt.Errorf("error encoding shades for palette %q: %v", p.Name, err)
	}
	return string(data), nil
}

// DecodeShades restores a shade list written by EncodeShades.
func DecodeShades(data string) ([]ColorShade, error) {
	var shades []ColorShade
	if err := json.Unmarshal([]byte(data), &shades); err != nil {
		return nil, fmt.Errorf("error decoding shades: %v", err)
	}
	return shades, nil
}

// GenerateRequest is the body of POST /v1/palettes/generate.
type GenerateRequest struct {
	Seed          string `json:"seed"`
	Algorithm     string `json:"algorithm"`
	ShadeCount    int    `json:"shadeCount"`
	ContrastShift int    `json:"contrastShift"`
	NamingPattern string `json:"namingPattern"`
	Label         string `json:"label"`
	Naming        string `json:"naming"`
}

// SavePaletteRequest is the body of POST /v1/palettes.
type SavePaletteRequest struct {
	Palette Palette `json:"palette"`
}

// DeletePaletteRequest is the body of POST /v1/palettes/delete.
type DeletePaletteRequest struct {
	ID string `json:"id"`
}
