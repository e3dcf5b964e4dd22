package util

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/session"
)

func RespondInternalServerError(writer http.ResponseWriter, err error) {
	writer.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(writer, "Internal Server Error\n")
	log.Error().Err(err).Msg("internal error")
}

func RespondValidationError(writer http.ResponseWriter, message string) {
	writer.WriteHeader(http.StatusBadRequest)
	fmt.Fprintf(writer, "Validation Error: %s\n", message)
}

func RespondNotFound(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(writer, "404: Not Found\n")
}

func RespondForbidden(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(writer, "403: Forbidden\n")
}

// RequireUser loads the logged in user for a page, redirecting to the login
// form when nobody is logged in.
func RequireUser(conn *database.Conn, writer http.ResponseWriter, request *http.Request, user *model.User) bool {
	found, err := session.LoadUserFromSession(conn, request, user)

	if err != nil {
		RespondInternalServerError(writer, err)

		return false
	}

	if !found {
		http.Redirect(writer, request, "/login", http.StatusFound)

		return false
	}

	return true
}

// RequireFormUser loads the logged in user for a form submission, responding
// with a 403 when nobody is logged in.
func RequireFormUser(conn *database.Conn, writer http.ResponseWriter, request *http.Request, user *model.User) bool {
	found, err := session.LoadUserFromSession(conn, request, user)

	if err != nil {
		RespondInternalServerError(writer, err)

		return false
	}

	if !found {
		RespondForbidden(writer)

		return false
	}

	return true
}
