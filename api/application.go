package api

import (
	"math/rand"
	"time"

	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
)

// DailyPaletteGenerator creates the palette of the day on demand.
type DailyPaletteGenerator interface {
	GenerateDailyPalette(now time.Time) (models.DailyPalette, bool, error)
}

type Application struct {
	Config           config.Config
	UserRepo         datastore.UserRepository
	PaletteRepo      datastore.PaletteRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
	DailyGenerator   DailyPaletteGenerator

	// NewRand overrides the per-request random source.
	NewRand func() *rand.Rand
}

func (app *Application) rng() *rand.Rand {
	if app.NewRand != nil {
		return app.NewRand()
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
