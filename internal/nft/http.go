package nft

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/veecerts/veevault/internal/identity"
)

// RegisterRoutes mounts ledger operations. Reads are public; every
// mutation requires an authenticated principal.
func RegisterRoutes(public, protected *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}

	public.GET("/tokens/:tokenID", handler.getToken)
	public.GET("/collections/:collectionID", handler.getCollection)
	public.GET("/collections/:collectionID/name", handler.getCollectionName)
	public.GET("/collections/:collectionID/symbol", handler.getCollectionSymbol)
	public.GET("/collections/:collectionID/description", handler.getCollectionDescription)
	public.GET("/collections/:collectionID/logo", handler.getCollectionLogo)

	protected.POST("/collections", handler.createCollection)
	protected.POST("/collections/:collectionID/tokens", handler.mint)
	protected.DELETE("/tokens/:tokenID", handler.burn)
	protected.POST("/tokens/:tokenID/transfer", handler.transfer)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) createCollection(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input CollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection payload"})
		return
	}

	tx, err := h.service.CreateCollection(principal, input)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tx_id": tx})
}

func (h *httpHandler) mint(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	collectionID, err := strconv.ParseUint(c.Param("collectionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return
	}

	var input struct {
		Metadata string `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mint payload"})
		return
	}

	tx, err := h.service.Mint(principal, collectionID, input.Metadata)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tx_id": tx})
}

func (h *httpHandler) burn(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tx, err := h.service.Burn(principal, c.Param("tokenID"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tx_id": tx})
}

func (h *httpHandler) transfer(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		From identity.Principal `json:"from"`
		To   identity.Principal `json:"to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transfer payload"})
		return
	}

	tx, err := h.service.Transfer(principal, c.Param("tokenID"), input.From, input.To)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tx_id": tx})
}

func (h *httpHandler) getToken(c *gin.Context) {
	token, found, err := h.service.TokenMetadata(c.Param("tokenID"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrTokenNotFound.Error(), "code": ErrorCode(ErrTokenNotFound)})
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *httpHandler) getCollection(c *gin.Context) {
	collectionID, ok := parseCollectionID(c)
	if !ok {
		return
	}

	meta, found := h.service.CollectionMetadata(collectionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCollectionNotFound.Error(), "code": ErrorCode(ErrCollectionNotFound)})
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *httpHandler) getCollectionName(c *gin.Context) {
	h.collectionField(c, h.service.Name, "name")
}

func (h *httpHandler) getCollectionSymbol(c *gin.Context) {
	h.collectionField(c, h.service.Symbol, "symbol")
}

func (h *httpHandler) getCollectionDescription(c *gin.Context) {
	h.collectionField(c, h.service.Description, "description")
}

func (h *httpHandler) getCollectionLogo(c *gin.Context) {
	collectionID, ok := parseCollectionID(c)
	if !ok {
		return
	}
	if _, found := h.service.CollectionMetadata(collectionID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCollectionNotFound.Error(), "code": ErrorCode(ErrCollectionNotFound)})
		return
	}
	logo, _ := h.service.Logo(collectionID)
	c.JSON(http.StatusOK, gin.H{"logo": logo})
}

func (h *httpHandler) collectionField(c *gin.Context, get func(uint64) (string, bool), key string) {
	collectionID, ok := parseCollectionID(c)
	if !ok {
		return
	}
	value, found := get(collectionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCollectionNotFound.Error(), "code": ErrorCode(ErrCollectionNotFound)})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: value})
}

func parseCollectionID(c *gin.Context) (uint64, bool) {
	collectionID, err := strconv.ParseUint(c.Param("collectionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return 0, false
	}
	return collectionID, true
}

func respondLedgerError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error(), "code": ErrorCode(err)}
	switch err {
	case ErrUnauthorized:
		c.JSON(http.StatusForbidden, body)
	case ErrTokenNotFound, ErrCollectionNotFound:
		c.JSON(http.StatusNotFound, body)
	case ErrInvalidTokenID:
		c.JSON(http.StatusBadRequest, body)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed", "code": ErrorCode(err)})
	}
}
