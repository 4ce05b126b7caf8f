package handlers

import (
	"robomart/internal/config"
	"robomart/internal/remote"
	"robomart/internal/services"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	AdminHandler   *AdminHandler
}

func NewDeps(cfg config.Config) *Deps {
	client := remote.NewClient(cfg.APIBaseURL)
	catalogSvc := services.NewCatalogService(client)

	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc},
	}
}
