package accounts

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/store"
)

// RegisterRoutes mounts account operations. Everything here requires an
// authenticated principal except the public profile lookup.
func RegisterRoutes(public, protected *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}

	public.GET("/users/:principal", handler.getProfileByPrincipal)
	public.GET("/packages", handler.listPackages)

	protected.POST("/users/register", handler.register)
	protected.GET("/users/me", handler.getProfile)
	protected.PATCH("/users/me", handler.updateProfile)
	protected.PUT("/packages", handler.createUpdatePackage)
	protected.POST("/subscriptions", handler.subscribe)
	protected.GET("/subscriptions/status", handler.subscriptionStatus)
	protected.GET("/clients/me", handler.getClient)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) register(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, created := h.service.Register(principal)
	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("User already registered with principal: %s", principal),
			"profile": profile,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("User registered successfully with principal: %s", principal),
		"profile": profile,
	})
}

func (h *httpHandler) getProfile(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, found := h.service.GetProfile(principal)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrProfileNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *httpHandler) getProfileByPrincipal(c *gin.Context) {
	profile, found := h.service.GetProfileByPrincipal(identity.Principal(c.Param("principal")))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrProfileNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *httpHandler) updateProfile(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var update ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	profile, err := h.service.UpdateProfile(principal, update)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}

func (h *httpHandler) createUpdatePackage(c *gin.Context) {
	if _, ok := identity.RequirePrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package payload"})
		return
	}

	pkg, outcome := h.service.CreateUpdatePackage(input)
	status := http.StatusOK
	if outcome == store.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"message": fmt.Sprintf("Subscription package %s created/updated.", pkg.UUID),
		"package": pkg,
	})
}

func (h *httpHandler) listPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.service.ListPackages()})
}

func (h *httpHandler) subscribe(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		SubscriptionPackageUUID string `json:"subscription_package_uuid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription payload"})
		return
	}

	client, err := h.service.Subscribe(principal, input.SubscriptionPackageUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Subscription successful for principal: %s", principal),
		"client":  client,
	})
}

func (h *httpHandler) subscriptionStatus(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": h.service.SubscriptionStatus(principal)})
}

func (h *httpHandler) getClient(c *gin.Context) {
	principal, ok := identity.RequirePrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	client, found := h.service.GetClient(principal)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}
