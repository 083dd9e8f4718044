package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/naming"
	"github.com/color-game/palettes/shades"
)

const (
	namingConsistent = "consistent"
	namingRandom     = "random"
)

type dailyPaletteResponse struct {
	Message string              `json:"message"`
	Palette models.DailyPalette `json:"palette"`
}

// options resolves a generate request against the configured defaults.
func (app *Application) options(req models.GenerateRequest) (shades.Options, error) {
	algorithmName := req.Algorithm
	if algorithmName == "" {
		algorithmName = app.Config.DefaultAlgorithm
	}
	algorithm, err := shades.ParseAlgorithm(algorithmName)
	if err != nil {
		return shades.Options{}, err
	}

	patternName := req.NamingPattern
	if patternName == "" {
		patternName = app.Config.DefaultNamingPattern
	}
	pattern, err := shades.ParsePattern(patternName)
	if err != nil {
		return shades.Options{}, err
	}

	count := req.ShadeCount
	if count == 0 {
		count = app.Config.DefaultShadeCount
	}

	return shades.Options{
		Algorithm:     algorithm,
		ShadeCount:    count,
		ContrastShift: req.ContrastShift,
		NamingPattern: pattern,
		Label:         strings.TrimSpace(req.Label),
	}, nil
}

// POST /v1/palettes/generate
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := models.GenerateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	seedHex := req.Seed
	if seedHex == "" {
		seedHex = app.Config.FallbackSeed
	}
	seed, err := colorspace.HexToColor(seedHex)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	opts, err := app.options(req)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	palette, err := shades.Generate(seed, opts)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if palette.Name == "" {
		switch req.Naming {
		case "", namingConsistent:
			palette.Name = naming.ConsistentName(palette.Shades)
		case namingRandom:
			palette.Name = naming.RandomName(app.rng(), palette.Shades)
		default:
			app.badRequest(w, r, errors.New("naming must be consistent or random"))
			return
		}
	}

	writeJSON(w, http.StatusOK, palette)
}

// POST /v1/palettes - Save a palette for the current user
func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	req := models.SavePaletteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	palette := req.Palette
	if palette.BaseColor, err = colorspace.HexToColor(palette.BaseColor.Hex); err != nil {
		app.invalidColor(w, r, err)
		return
	}
	algorithm, err := shades.ParseAlgorithm(palette.Algorithm)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	palette.Algorithm = string(algorithm)

	if err := palette.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}
	for i := range palette.Shades {
		if palette.Shades[i], err = shades.Rebuild(palette.Shades[i]); err != nil {
			app.invalidColor(w, r, err)
			return
		}
	}

	palette.Name = strings.TrimSpace(palette.Name)
	if palette.Name == "" {
		palette.Name = naming.ConsistentName(palette.Shades)
	}

	saved, err := app.PaletteRepo.Create(models.NewSavedPalette(user.UserID, palette))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// GET /v1/palettes/mine
func (app *Application) getMyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user, err := app.getUserFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	palettes, err := app.PaletteRepo.ListByUser(user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, palettes)
}

// POST /v1/palettes/delete
func (app *Application) deletePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	req := models.DeletePaletteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if req.ID == "" {
		app.badRequest(w, r, errors.New("id is required"))
		return
	}

	if err := app.PaletteRepo.Delete(req.ID, user.UserID); err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, r, errors.New("palette not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /v1/palettes/search?q=&limit=
func (app *Application) searchPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		app.badRequest(w, r, errors.New("q is required"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			app.badRequest(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = n
	}

	palettes, err := app.PaletteRepo.Search(term, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, palettes)
}

// GET /v1/palettes/daily - Get today's palette
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	daily, err := app.DailyPaletteRepo.GetToday()
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, r, errors.New("no palette has been generated for today"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, daily)
}

// GET /v1/palettes/daily/all
func (app *Application) getAllDailyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	dailies, err := app.DailyPaletteRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailies)
}

// POST /v1/admin/palettes/daily - Generate today's palette (Admin only)
func (app *Application) generateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	if app.DailyGenerator == nil {
		app.internalServerError(w, r, errors.New("daily palette generation is disabled"))
		return
	}

	daily, created, err := app.DailyGenerator.GenerateDailyPalette(time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, dailyPaletteResponse{
			Message: "Daily palette already exists for today",
			Palette: daily,
		})
		return
	}

	writeJSON(w, http.StatusCreated, dailyPaletteResponse{
		Message: "Successfully generated daily palette",
		Palette: daily,
	})
}
