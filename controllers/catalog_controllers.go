package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

// CatalogController serves the read-only lookups the floor clients need:
// the menu and the table map.
type CatalogController struct {
	Store store.Gateway
}

func NewCatalogController(st store.Gateway) *CatalogController {
	return &CatalogController{Store: st}
}

func (cc *CatalogController) ListMenuItems(c *gin.Context) {
	items, err := cc.Store.ListMenuItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"menu_items": items})
}

func (cc *CatalogController) ListTables(c *gin.Context) {
	tables, err := cc.Store.ListTables()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"tables": tables})
}
