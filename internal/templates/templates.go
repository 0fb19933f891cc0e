// internal/templates/templates.go

// Package templates renders the console's pages and htmx fragments from
// templates embedded at build time.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	// Nullable backend fields render as a dash, same as the old UI.
	"str": func(p *string) string {
		if p == nil || *p == "" {
			return "—"
		}
		return *p
	},
	"num": func(p *int) string {
		if p == nil {
			return "—"
		}
		return strconv.Itoa(*p)
	},
	"money": func(n json.Number) string {
		if n == "" || n == "0" {
			return "—"
		}
		return n.String() + " ₽"
	},
	"playerStatus": func(s string) string {
		if s == "ACTIVE" {
			return "Активный"
		}
		return "Неактивный"
	},
	"matchStatus": func(s string) string {
		switch s {
		case "SCHEDULED":
			return "Запланирован"
		case "PLAYED":
			return "Сыгран"
		case "CANCELLED":
			return "Отменён"
		}
		return s
	},
	"financeType": func(s string) string {
		if s == "INCOME" {
			return "Приход"
		}
		return "Расход"
	},
}

var tmpl = template.Must(template.New("console").Funcs(funcs).ParseFS(files, "html/*.html"))

// Page is the chrome shared by every screen.
type Page struct {
	Title string
	Path  string
	Team  string
}

// Render executes a named template into a buffer first so a render
// error never leaves a half-written page.
func Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
