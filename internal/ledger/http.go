package ledger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veecerts/veevault/internal/identity"
)

// RegisterRoutes mounts balance lookups. Arbitrary account reads are
// public; the caller's own balance requires an authenticated principal.
func RegisterRoutes(public, protected *gin.RouterGroup, client *Client) {
	handler := &httpHandler{client: client}

	public.GET("/balance/accounts/:account", handler.accountBalance)
	public.GET("/balance/service", handler.serviceBalance)

	protected.GET("/balance/me", handler.ownBalance)
}

type httpHandler struct {
	client *Client
}

func (h *httpHandler) ownBalance(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	balance, err := h.client.AccountBalance(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ledger unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": principal, "balance": balance})
}

func (h *httpHandler) accountBalance(c *gin.Context) {
	account := identity.Principal(c.Param("account"))

	balance, err := h.client.AccountBalance(c.Request.Context(), account)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ledger unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
}

func (h *httpHandler) serviceBalance(c *gin.Context) {
	balance, err := h.client.ServiceBalance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ledger unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
