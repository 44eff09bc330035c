package catalog_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/catalog"
)

var Module = fx.Provide(
	provideCatalog)

func provideCatalog() *catalog.Catalog {
	return catalog.Default()
}
