package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RegisterSwagger monta la UI de swagger en /docs leyendo la especificación
// desde filePath. Si el archivo no existe, deja constancia en el log y la API
// arranca sin la ruta /docs: el middleware de contrib lee el archivo al
// construirse y entra en pánico si falta.
func RegisterSwagger(app *fiber.App, filePath, title string, log zerolog.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("especificación swagger no encontrada, /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
