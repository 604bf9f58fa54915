package di

import (
	"aniboard/internal/achievements"
	"aniboard/internal/providers"
)

func provideCatalogSize(catalog *achievements.Catalog) providers.CatalogSizeFunc {
	return func() float64 {
		return float64(catalog.Len())
	}
}
