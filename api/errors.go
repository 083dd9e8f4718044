package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrPUT = fmt.Errorf("PUT method required for this endpoint")
var ErrInvalidPrivelege = fmt.Errorf("invalid authentication privileges")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (app *Application) invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authorizing User",
		Description:      err.Error(),
		PossibleSolution: "Retry with proper credentials",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid token",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) forbidden(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusForbidden, HandlerError{
		ErrorName:        "Insufficient Privileges",
		Description:      err.Error(),
		PossibleSolution: "Sign in with an administrator account",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodGet)
	writeJSON(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "GET Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requirePostMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodPost)
	writeJSON(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Post Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use POST method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requirePutMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodPut)
	writeJSON(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "PUT Method Required",
		Description:      err.Error(),
		PossibleSolution: "Use PUT method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) userAlreadyExists(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusConflict, HandlerError{
		ErrorName:        "User Exists",
		Description:      "There is already a user with this email address",
		PossibleSolution: "Advise user to login with their credentials",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidColor(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Invalid Color",
		Description:      err.Error(),
		PossibleSolution: "Send a 3 or 6 digit hex color, for example " + app.Config.FallbackSeed,
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      err.Error(),
		PossibleSolution: "Check the identifier or date you requested",
		CallerInfo:       getCallerInfo(),
	})
}
