// Package docs registra el swagger.json de la API en swaggo/swag.
//
// @title                       E-commerce Catalog API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

type spec struct{}

func (spec) ReadDoc() string { return doc }

func init() {
	swag.Register(swag.Name, spec{})
}
