package logs_rendering

import (
	"embed"
	"html/template"
	"net/http"

	"logquery/internal/features/filters"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/index.html
var templatesFS embed.FS

type ViewerController struct {
	page *template.Template
}

type FieldsResponseDTO struct {
	Fields []filters.FieldDescriptor `json:"fields"`
}

type pageData struct {
	Fields  []filters.FieldDescriptor
	Columns []string
}

func (c *ViewerController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/fields", c.GetFields)
}

func (c *ViewerController) RegisterPageRoutes(router *gin.Engine) {
	router.GET("/", c.GetPage)
}

// GetFields
// @Summary Get filter fields
// @Description List the ten filter fields with their labels, placeholders and input kinds, in display order
// @Tags viewer
// @Produce json
// @Success 200 {object} FieldsResponseDTO
// @Router /fields [get]
func (c *ViewerController) GetFields(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, FieldsResponseDTO{Fields: filters.FieldDescriptors})
}

func (c *ViewerController) GetPage(ctx *gin.Context) {
	ctx.Render(http.StatusOK, render.HTML{
		Template: c.page,
		Name:     "index.html",
		Data: pageData{
			Fields:  filters.FieldDescriptors,
			Columns: TableColumns,
		},
	})
}

func mustParsePage() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/index.html"))
}
