package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/color-game/palettes/accessibility"
	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/harmony"
)

const (
	maxRandomColors  = harmony.MaxFanSize
	defaultFanRadius = 120.0
)

type convertResponse struct {
	Color     colorspace.ColorValue `json:"color"`
	TextColor string                `json:"textColor"`
	Contrast  accessibility.Result  `json:"contrast"`
}

type contrastResponse struct {
	Foreground colorspace.ColorValue `json:"foreground"`
	Background colorspace.ColorValue `json:"background"`
	Similarity int                   `json:"similarity"`
	accessibility.Result
}

type harmonyRequest struct {
	Seed    string `json:"seed"`
	Harmony string `json:"harmony"`
}

type harmonyResponse struct {
	Harmony harmony.Harmony         `json:"harmony"`
	Colors  []colorspace.ColorValue `json:"colors"`
}

type fanResponse struct {
	Colors    []colorspace.ColorValue `json:"colors"`
	Positions []harmony.Position      `json:"positions"`
}

// GET /v1/colors/convert?hex=
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	color, err := colorspace.HexToColor(r.URL.Query().Get("hex"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	text := accessibility.IdealTextColor(color)
	writeJSON(w, http.StatusOK, convertResponse{
		Color:     color,
		TextColor: text.Hex,
		Contrast:  accessibility.Check(text, color),
	})
}

// GET /v1/colors/contrast?fg=&bg=
func (app *Application) checkContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	fg, err := colorspace.HexToColor(r.URL.Query().Get("fg"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	bg, err := colorspace.HexToColor(r.URL.Query().Get("bg"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contrastResponse{
		Foreground: fg,
		Background: bg,
		Similarity: colorspace.Similarity(fg, bg),
		Result:     accessibility.Check(fg, bg),
	})
}

// GET /v1/harmony/types
func (app *Application) harmonyTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, harmony.Profiles())
}

// POST /v1/harmony
func (app *Application) harmonySet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := harmonyRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	seed, err := colorspace.HexToColor(req.Seed)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	h, err := harmony.ParseHarmony(req.Harmony)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	set, err := harmony.Set(seed, h)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, harmonyResponse{Harmony: h, Colors: set})
}

// GET /v1/harmony/random?count=&harmony=
func (app *Application) randomHarmony(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			app.badRequest(w, r, errors.New("count must be a positive integer"))
			return
		}
		count = min(n, maxRandomColors)
	}

	rng := app.rng()
	name := r.URL.Query().Get("harmony")
	if name == "" {
		writeJSON(w, http.StatusOK, harmony.Random(rng, count))
		return
	}

	h, err := harmony.ParseHarmony(name)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	result, err := harmony.RandomOf(rng, h, count)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GET /v1/harmony/fan?seed=&radius=
func (app *Application) harmonyFan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	seed, err := colorspace.HexToColor(r.URL.Query().Get("seed"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	radius := defaultFanRadius
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			app.badRequest(w, r, errors.New("radius must be a positive number"))
			return
		}
	}

	colors := harmony.Fan(seed)
	writeJSON(w, http.StatusOK, fanResponse{
		Colors:    colors,
		Positions: harmony.FanPositions(len(colors), radius),
	})
}
