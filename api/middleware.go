package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/color-game/palettes/models"
)

var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}, ", ")
	corsHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization"
)

var (
	errNoAccessCookie = errors.New("no JWT cookie found")
	errWrongScope     = errors.New("invalid token claims")
	errUnknownDevice  = errors.New("device not found")
	errDeviceExpired  = errors.New("device expired")
	errNotApproved    = errors.New("user not approved")
)

// handleCors echoes the request origin. Preflight requests stop here.
func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			header.Set("Access-Control-Allow-Origin", origin)
			header.Add("Vary", "Origin")
		}
		header.Set("Access-Control-Allow-Methods", corsMethods)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Headers", corsHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	}
}

// getUserFromJWT resolves the user behind the access token cookie. The
// token must carry the authentication scope and its device must still be
// registered and unexpired.
func (app *Application) getUserFromJWT(r *http.Request) (models.User, error) {
	cookie, err := r.Cookie(models.JWT.ACCESS_COOKIE_NAME)
	if err != nil {
		return models.User{}, errNoAccessCookie
	}

	claims, err := models.ValidateJWTToken(cookie.Value, app.Config.JwtSecret)
	if err != nil {
		return models.User{}, err
	}
	if claims.Scope != models.ScopeAuthentication {
		return models.User{}, errWrongScope
	}

	device, err := app.UserRepo.GetDeviceByFingerprint(claims.UserID, claims.DeviceFingerprint)
	if err != nil {
		return models.User{}, errUnknownDevice
	}
	if time.Now().After(device.Expiry) {
		return models.User{}, errDeviceExpired
	}

	return app.UserRepo.Get(claims.UserID)
}

// requireUser runs h only for an approved user that passes allow. A nil
// allow admits every approved user.
func (app *Application) requireUser(allow func(models.User) bool, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := app.getUserFromJWT(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}
		if !user.Approved {
			app.invalidAuthorization(w, r, errNotApproved)
			return
		}
		if allow != nil && !allow(user) {
			app.forbidden(w, r, ErrInvalidPrivelege)
			return
		}

		h.ServeHTTP(w, r)
	}
}

// authenticate admits any approved, signed-in user
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return app.requireUser(nil, h)
}

// verifyPermissions admits admins only
func (app *Application) verifyPermissions(h http.HandlerFunc) http.HandlerFunc {
	return app.requireUser(func(user models.User) bool {
		return user.Kind == models.Admin
	}, h)
}
