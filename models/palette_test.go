package models

import (
	"strings"
	"testing"

	"github.com/color-game/palettes/colorspace"
)

func shade(name string, value int, hex string) ColorShade {
	return ColorShade{Name: name, Value: value, Color: colorspace.MustHex(hex)}
}

func TestPaletteValidate(t *testing.T) {
	tests := []struct {
		name    string
		shades  []ColorShade
		wantErr string
	}{
		{
			name:   "valid",
			shades: []ColorShade{shade("100", 100, "#EEEEEE"), shade("500", 500, "#888888"), shade("900", 900, "#111111")},
		},
		{
			name:    "empty",
			wantErr: "no shades",
		},
		{
			name:    "duplicate name",
			shades:  []ColorShade{shade("100", 100, "#EEEEEE"), shade("100", 200, "#888888")},
			wantErr: "duplicate shade name",
		},
		{
			name:    "values not increasing",
			shades:  []ColorShade{shade("a", 500, "#EEEEEE"), shade("b", 500, "#888888")},
			wantErr: "does not increase",
		},
		{
			name:    "bad hex",
			shades:  []ColorShade{shade("100", 100, "#EEEEEE"), {Name: "200", Value: 200, Color: colorspace.ColorValue{Hex: "#XYZ"}}},
			wantErr: "invalid hex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Palette{Name: "Test", Shades: tt.shades}.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteActiveAndHexes(t *testing.T) {
	p := Palette{Shades: []ColorShade{shade("100", 100, "#EEEEEE"), shade("500", 500, "#888888")}}
	if _, ok := p.Active(); ok {
		t.Error("palette without an active shade reported one")
	}

	p.Shades[1].IsActive = true
	active, ok := p.Active()
	if !ok || active.Name != "500" {
		t.Errorf("active = %+v, %v", active, ok)
	}

	hexes := p.Hexes()
	if len(hexes) != 2 || hexes[0] != "#EEEEEE" || hexes[1] != "#888888" {
		t.Errorf("hexes = %v", hexes)
	}
}

func TestShadesSurviveStorageEncoding(t *testing.T) {
	p := Palette{Name: "Stored", Shades: []ColorShade{shade("50", 50, "#F0F9FF"), shade("500", 500, "#1E96BE")}}
	p.Shades[1].IsActive = true
	p.Shades[1].Contrast = 6.16

	encoded, err := p.EncodeShades()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeShades(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[1] != p.Shades[1] {
		t.Errorf("decoded %+v, want %+v", decoded, p.Shades)
	}

	if _, err := DecodeShades("not json"); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestNewSavedPalette(t *testing.T) {
	saved := NewSavedPalette("user-1", Palette{Name: "Mine"})
	if saved.ID == "" || saved.UserID != "user-1" || saved.Palette.Name != "Mine" {
		t.Errorf("saved = %+v", saved)
	}
	if saved.CreatedAt.IsZero() || !saved.CreatedAt.Equal(saved.UpdatedAt) {
		t.Errorf("timestamps = %v / %v", saved.CreatedAt, saved.UpdatedAt)
	}
}
