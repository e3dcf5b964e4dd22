// Package auth defines routes for logging in and out
package auth

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
	"github.com/ShadowWhisperer/MyStack/internal/session"
	"github.com/ShadowWhisperer/MyStack/internal/template"
)

type LoginPageData struct {
	User  model.User
	Error bool
}

func HandleViewLoginForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	found, err := session.LoadUserFromSession(conn, request, &user)

	if err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	if found {
		http.Redirect(writer, request, "/", http.StatusFound)

		return
	}

	template.Render(template.Login, writer, LoginPageData{})
}

func HandleLogin(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	request.ParseForm()
	username := request.Form.Get("username")
	password := request.Form.Get("password")

	var userID int
	loginValid := false

	if len(username) > 0 && len(password) > 0 {
		row := conn.QueryRow(
			"select id, password from stack_user where username = $1",
			username,
		)

		var passwordHash string

		if err := row.Scan(&userID, &passwordHash); err == nil {
			if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil {
				loginValid = true
			}
		}
	}

	if loginValid {
		session.SaveUserInSession(writer, request, &model.User{ID: userID, Username: username})
		http.Redirect(writer, request, "/", http.StatusFound)
	} else {
		template.Render(template.Login, writer, LoginPageData{Error: true})
	}
}

func HandleLogout(writer http.ResponseWriter, request *http.Request) {
	session.ClearSession(writer, request)
	http.Redirect(writer, request, "/login", http.StatusFound)
}
