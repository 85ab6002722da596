package handler

import (
	"encoding/json"
	"net/http"
)

// MessageBody is the {"message": "..."} object used by most API responses.
type MessageBody struct {
	Message string `json:"message"`
}

// Message builds a MessageBody.
func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}

type jsonResponse struct {
	status int
	body   any
	header http.Header
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, v := range j.header {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v as the JSON response body with the given status code.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// NoStore marks a JSON response as not cacheable.
func NoStore(status int, v any) Response {
	return jsonResponse{
		status: status,
		body:   v,
		header: http.Header{"Cache-Control": {"no-store"}},
	}
}

type redirectResponse struct {
	status int
	url    string
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, rr.url, rr.status)
	return nil
}

// Redirect responds with a redirect to url. A status outside 3xx becomes 302.
func Redirect(status int, url string) Response {
	if status < 300 || status > 399 {
		status = http.StatusFound
	}
	return redirectResponse{status: status, url: url}
}

// ResponseFunc adapts a function to the Response interface.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
