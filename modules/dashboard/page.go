package dashboard

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} | Acme Dashboard</title>
</head>
<body>
<nav>
<a href="/dashboard">Home</a>
<a href="/dashboard/invoices">Invoices</a>
<a href="/dashboard/customers">Customers</a>
<form method="post" action="/api/logout"><button type="submit">Sign Out</button></form>
</nav>
<header>
<p class="user-name">{{.User.Name}}</p>
<p class="user-email">{{.User.Email}}</p>
</header>
<main data-path="{{.Path}}"></main>
</body>
</html>
`))

type layoutData struct {
	Title string
	Path  string
	User  jwt.Identity
}

func (s *Service) page(w http.ResponseWriter, r *http.Request) {
	user, ok := s.reader.CurrentUser(r)
	if !ok {
		// The gate runs first, so this only happens when it is bypassed or
		// the token expired between the two checks.
		s.logger.DebugContext(r.Context(), "dashboard without session", logger.Path(r.URL.Path))
		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, s.loginURL(defaultPrefix), http.StatusFound)
		return
	}

	var buf bytes.Buffer
	err := layout.Execute(&buf, layoutData{
		Title: "Dashboard",
		Path:  r.URL.Path,
		User:  user,
	})
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render dashboard", logger.Error(err))
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "private, no-store")
	_, _ = buf.WriteTo(w)
}
