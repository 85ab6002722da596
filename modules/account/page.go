package account

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/dashboard/pkg/logger"
)

var loginPage = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Log in | Acme Dashboard</title>
</head>
<body>
<main>
<h1>Please log in to continue.</h1>
<form id="login-form" method="post" action="/api/login">
<label for="email">Email</label>
<input id="email" type="email" name="email" required>
<label for="password">Password</label>
<input id="password" type="password" name="password" required minlength="6">
<input type="hidden" name="redirectTo" value="{{.RedirectTo}}">
<button type="submit">Log in</button>
</form>
</main>
</body>
</html>
`))

type loginPageData struct {
	RedirectTo string
}

func (s *Service) loginPage(w http.ResponseWriter, r *http.Request) {
	data := loginPageData{
		RedirectTo: SafeRedirect(r.URL.Query().Get(CallbackParam), DefaultRedirect),
	}

	var buf bytes.Buffer
	if err := loginPage.Execute(&buf, data); err != nil {
		s.logger.ErrorContext(r.Context(), "render login page", logger.Error(err))
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
