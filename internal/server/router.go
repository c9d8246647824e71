package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veecerts/veevault/internal/accounts"
	"github.com/veecerts/veevault/internal/catalog"
	"github.com/veecerts/veevault/internal/config"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/ledger"
	"github.com/veecerts/veevault/internal/logger"
	"github.com/veecerts/veevault/internal/metrics"
	"github.com/veecerts/veevault/internal/nft"
	"github.com/veecerts/veevault/internal/snapshot"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config    config.Config
	Snapshots snapshot.BlobStore
	Validator *identity.Validator
	Catalog   *catalog.Service
	Accounts  *accounts.Service
	NFT       *nft.Service
	Ledger    *ledger.Client
	Logger    *zap.Logger
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	metrics.InitMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	if deps.Logger != nil {
		router.Use(logger.Middleware())
	} else {
		router.Use(gin.Logger())
	}
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	public := router.Group("/v1")
	protected := router.Group("/v1")
	protected.Use(identity.Middleware(deps.Validator))

	if deps.Catalog != nil {
		catalog.RegisterRoutes(public, protected, deps.Catalog)
	}
	if deps.Accounts != nil {
		accounts.RegisterRoutes(public, protected, deps.Accounts)
	}
	if deps.NFT != nil {
		nft.RegisterRoutes(public, protected, deps.NFT)
	}
	if deps.Ledger != nil {
		ledger.RegisterRoutes(public, protected, deps.Ledger)
	}

	return router
}
