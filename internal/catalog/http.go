package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/store"
)

// RegisterRoutes mounts catalog operations. Queries are public; mutations
// require an authenticated principal.
func RegisterRoutes(public, protected *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}

	public.GET("/clients/:userID/folders", handler.listFolders)
	public.GET("/clients/:userID/folders/:folderID", handler.getFolder)
	public.GET("/clients/:userID/folders/:folderID/assets", handler.listFolderAssets)
	public.GET("/clients/:userID/assets", handler.listAssets)

	protected.POST("/folders", handler.createUpdateFolder)
	protected.POST("/assets", handler.createUpdateAsset)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) createUpdateFolder(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input FolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder payload"})
		return
	}

	folder, outcome, err := h.service.CreateUpdateFolder(principal, input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(statusForOutcome(outcome), folder)
}

func (h *httpHandler) createUpdateAsset(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset payload"})
		return
	}

	asset, outcome, err := h.service.CreateUpdateAsset(principal, input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(statusForOutcome(outcome), asset)
}

func (h *httpHandler) listFolders(c *gin.Context) {
	page := parseFolderPage(c)
	folders := h.service.ClientFolders(c.Param("userID"), page)
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (h *httpHandler) getFolder(c *gin.Context) {
	folder, ok := h.service.ClientFolder(c.Param("userID"), c.Param("folderID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		return
	}
	c.JSON(http.StatusOK, folder)
}

func (h *httpHandler) listFolderAssets(c *gin.Context) {
	page := parseAssetPage(c)
	assets := h.service.ClientFolderAssets(c.Param("userID"), c.Param("folderID"), page)
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (h *httpHandler) listAssets(c *gin.Context) {
	page := parseAssetPage(c)
	assets := h.service.ClientAssets(c.Param("userID"), page)
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func respondCatalogError(c *gin.Context, err error) {
	switch err {
	case ErrUnauthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case ErrFolderNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

func statusForOutcome(outcome store.Outcome) int {
	if outcome == store.Created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func parseFolderPage(c *gin.Context) *Page[FolderQueryOptions] {
	opts := FolderQueryOptions{}
	hasOpts := false

	filter := FolderFilter{
		Name:        queryString(c, "name"),
		Description: queryString(c, "description"),
	}
	if filter.Name != nil || filter.Description != nil {
		opts.Filter = &filter
		hasOpts = true
	}

	if ordering := parseOrdering(c); ordering != nil {
		opts.Ordering = ordering
		hasOpts = true
	}

	offset := queryInt(c, "offset")
	limit := queryInt(c, "limit")
	if !hasOpts && offset == nil && limit == nil {
		return nil
	}

	page := &Page[FolderQueryOptions]{Offset: offset, Limit: limit}
	if hasOpts {
		page.Opts = &opts
	}
	return page
}

func parseAssetPage(c *gin.Context) *Page[AssetQueryOptions] {
	opts := AssetQueryOptions{}
	hasOpts := false

	filter := AssetFilter{
		Name:        queryString(c, "name"),
		Description: queryString(c, "description"),
		MinSizeMB:   queryFloat(c, "min_size_mb"),
		MaxSizeMB:   queryFloat(c, "max_size_mb"),
	}
	if filter.Name != nil || filter.Description != nil || filter.MinSizeMB != nil || filter.MaxSizeMB != nil {
		opts.Filter = &filter
		hasOpts = true
	}

	if ordering := parseOrdering(c); ordering != nil {
		opts.Ordering = ordering
		hasOpts = true
	}

	offset := queryInt(c, "offset")
	limit := queryInt(c, "limit")
	if !hasOpts && offset == nil && limit == nil {
		return nil
	}

	page := &Page[AssetQueryOptions]{Offset: offset, Limit: limit}
	if hasOpts {
		page.Opts = &opts
	}
	return page
}

func parseOrdering(c *gin.Context) *Ordering {
	dateAdded := queryBool(c, "date_added")
	lastUpdated := queryBool(c, "last_updated")
	if dateAdded == nil && lastUpdated == nil {
		return nil
	}
	return &Ordering{DateAdded: dateAdded, LastUpdated: lastUpdated}
}

func queryString(c *gin.Context, key string) *string {
	if val, ok := c.GetQuery(key); ok {
		return &val
	}
	return nil
}

func queryBool(c *gin.Context, key string) *bool {
	if val, ok := c.GetQuery(key); ok {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return &parsed
		}
	}
	return nil
}

func queryInt(c *gin.Context, key string) *int {
	if val, ok := c.GetQuery(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return &parsed
		}
	}
	return nil
}

func queryFloat(c *gin.Context, key string) *float64 {
	if val, ok := c.GetQuery(key); ok {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return &parsed
		}
	}
	return nil
}
