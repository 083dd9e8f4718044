package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/auth/signup", app.signup)
	mux.HandleFunc("/v1/auth/login", app.login)
	mux.HandleFunc("/v1/auth/logout", app.logout)
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/contrast", app.checkContrast)
	mux.HandleFunc("/v1/harmony", app.harmonySet)
	mux.HandleFunc("/v1/harmony/types", app.harmonyTypes)
	mux.HandleFunc("/v1/harmony/random", app.randomHarmony)
	mux.HandleFunc("/v1/harmony/fan", app.harmonyFan)
	mux.HandleFunc("/v1/palettes/generate", app.generatePalette)
	mux.HandleFunc("/v1/palettes/daily", app.getDailyPalette)
	mux.HandleFunc("/v1/palettes/daily/all", app.getAllDailyPalettes)
	mux.HandleFunc("/v1/palettes/search", app.searchPalettes)

	// Authenticated endpoints
	mux.HandleFunc("/v1/users/me", app.authenticate(app.getCurrentUser))
	mux.HandleFunc("/v1/users/me/update", app.authenticate(app.updateCurrentUser))
	mux.HandleFunc("/v1/palettes", app.authenticate(app.savePalette))
	mux.HandleFunc("/v1/palettes/mine", app.authenticate(app.getMyPalettes))
	mux.HandleFunc("/v1/palettes/delete", app.authenticate(app.deletePalette))

	// Admin endpoints
	mux.HandleFunc("/v1/users", app.verifyPermissions(app.getAllUsers))
	mux.HandleFunc("/v1/admin/palettes/daily", app.verifyPermissions(app.generateDailyPalette))

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return finalMux
}
