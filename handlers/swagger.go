package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/museumsapi/museums-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DocsPath is where the interactive API documentation is served.
const DocsPath = "/api-docs"

// RegisterSwagger serves the generated OpenAPI document and Swagger UI.
// - GET /api-docs, /api-docs/ -> redirect to the UI
// - GET /api-docs/index.html  -> Swagger UI
// - GET /api-docs/doc.json    -> machine-readable document
func RegisterSwagger(r *gin.Engine) {
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DocExpansion("list"))
	r.GET(DocsPath, redirectToDocsIndex)
	r.GET(DocsPath+"/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			redirectToDocsIndex(c)
			return
		}
		ui(c)
	})
}

func redirectToDocsIndex(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, DocsPath+"/index.html")
}
