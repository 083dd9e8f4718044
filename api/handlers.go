package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/color-game/palettes/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Palettes API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(userSignup); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := userSignup.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	newUser, newUserErr := models.NewUser(*userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(newUser.Email); err == nil {
		app.userAlreadyExists(w, r, err)
		return
	}

	if _, err := app.UserRepo.GetUserByUsername(newUser.Username); err == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	storedUser, errStoringNewUser := app.UserRepo.Create(newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	writeJSON(w, http.StatusCreated, storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if creds.DeviceFingerprint == "" {
		app.badRequest(w, r, errors.New("deviceFingerprint is required"))
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, errors.New("invalid email or password"))
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	deviceExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	device := models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: creds.DeviceFingerprint,
		DeviceData:  r.Header.Get("User-Agent"),
		Expiry:      deviceExpiry,
	}

	if err := app.UserRepo.CreateDevice(device); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessToken, err := models.NewClaims(user, creds.DeviceFingerprint, models.ScopeAuthentication, accessExpiry).Sign(app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	refreshToken, err := models.NewClaims(user, creds.DeviceFingerprint, models.ScopeRefresh, deviceExpiry).Sign(app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, accessToken, accessExpiry)
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, refreshToken, deviceExpiry)

	writeJSON(w, http.StatusOK, user)
}

// POST /v1/auth/logout
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	if cookie, err := r.Cookie(models.JWT.ACCESS_COOKIE_NAME); err == nil {
		if claims, err := models.ValidateJWTToken(cookie.Value, app.Config.JwtSecret); err == nil {
			device, err := app.UserRepo.GetDeviceByFingerprint(claims.UserID, claims.DeviceFingerprint)
			if err == nil {
				if err := app.UserRepo.DeleteDevice(device.ID); err != nil {
					log.Printf("failed to delete device %s for user %s: %v", device.ID, claims.UserID, err)
				}
			}
		}
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, "", time.Unix(0, 0))
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, "", time.Unix(0, 0))

	w.WriteHeader(http.StatusOK)
}

func (app *Application) setTokenCookie(w http.ResponseWriter, name, value string, expires time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user, err := app.getUserFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// PUT /v1/users/me/update - Update current authenticated user
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	currentUser, err := app.getUserFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	updateReq := &models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if username := strings.TrimSpace(updateReq.Username); username != "" {
		if strings.ContainsAny(username, " \t\n") {
			app.badRequest(w, r, errors.New("username cannot contain spaces"))
			return
		}
		if other, err := app.UserRepo.GetUserByUsername(username); err == nil && other.UserID != currentUser.UserID {
			app.badRequest(w, r, errors.New("username already taken"))
			return
		}
		currentUser.Username = username
	}

	if email := strings.ToLower(strings.TrimSpace(updateReq.Email)); email != "" {
		if !strings.Contains(email, "@") {
			app.badRequest(w, r, errors.New("a valid email is required"))
			return
		}
		if other, err := app.UserRepo.GetUserByEmail(email); err == nil && other.UserID != currentUser.UserID {
			app.userAlreadyExists(w, r, err)
			return
		}
		currentUser.Email = email
	}

	updatedUser, updateErr := app.UserRepo.Update(currentUser)
	if updateErr != nil {
		app.internalServerError(w, r, updateErr)
		return
	}

	writeJSON(w, http.StatusOK, updatedUser)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	users, retrieveErr := app.UserRepo.GetAllUsers()
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
