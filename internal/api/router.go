package api

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tatiadventure/household-server/internal/models"
	"github.com/tatiadventure/household-server/web"
)

// NewRouter builds the Gin engine with recovery, request logging, the
// embedded templates and static assets, and all application routes.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())
	router.SetHTMLTemplate(loadTemplates())

	static, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		router.StaticFS("/static", http.FS(static))
	}

	handler.SetupRoutes(router)
	return router
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"money": models.FormatCents,
		"tojson": func(v any) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return "null"
			}
			return template.JS(b)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(web.TemplatesFS, "templates/*.html"))
}
