// internal/platform/di/storefront/container.go
package storefront

import (
	"context"
	"errors"
	"log"
	"net/http"

	httpmw "voltmart/internal/adapters/in/http/middleware"
	sfhttp "voltmart/internal/adapters/in/http/storefront"
	sfHandler "voltmart/internal/adapters/in/http/storefront/handler"
	outdb "voltmart/internal/adapters/out/db"
	outfs "voltmart/internal/adapters/out/firestore"
	outgcs "voltmart/internal/adapters/out/gcs"
	sfquery "voltmart/internal/application/query/storefront"
	usecase "voltmart/internal/application/usecase"
	"voltmart/internal/infra/imagecache"
	shared "voltmart/internal/platform/di/shared"
)

// Container wires the storefront service: guest cart store, reconciler,
// catalog queries, checkout and the handler set.
type Container struct {
	infra *shared.Infra

	CartUC     *usecase.CartUsecase
	SessionUC  *usecase.SessionUsecase
	CheckoutUC *usecase.CheckoutUsecase

	Reconciler *sfquery.CartReconciler
	CatalogQ   *sfquery.CatalogQuery
	ImageCache *imagecache.Cache

	visitor *httpmw.Visitor
	deps    sfhttp.Deps
}

// Mailer is the checkout confirmation port; injected so wiring stays testable.
type Mailer = usecase.ConfirmationMailer

// NewContainer builds the storefront container on shared infra.
func NewContainer(ctx context.Context, infra *shared.Infra, mailer Mailer) (*Container, error) {
	if infra == nil {
		return nil, errors.New("di.storefront: infra is nil")
	}
	if infra.Firestore == nil {
		return nil, errors.New("di.storefront: firestore client is nil")
	}
	if infra.DB == nil || infra.DB.Client == nil {
		return nil, errors.New("di.storefront: postgres is nil")
	}
	if infra.Commerce == nil {
		return nil, errors.New("di.storefront: commerce client is nil")
	}

	c := &Container{infra: infra}

	// repositories
	cartRepo := outfs.NewCartRepositoryFS(infra.Firestore)
	sessionRepo := outdb.NewSessionRepositoryPG(infra.DB.Client)

	// usecases
	c.CartUC = usecase.NewCartUsecase(cartRepo)
	c.SessionUC = usecase.NewSessionUsecase(sessionRepo)
	c.CheckoutUC = usecase.NewCheckoutUsecase(c.CartUC, infra.Commerce, mailer)

	// queries
	c.Reconciler = sfquery.NewCartReconciler(c.CartUC, infra.Commerce, infra.Commerce)
	c.CatalogQ = sfquery.NewCatalogQuery(infra.Commerce)

	// image cache: persistent level only when GCS is configured
	var store imagecache.Store
	if infra.GCS != nil && infra.ImageCacheBucket != "" {
		store = outgcs.NewImageCacheGCS(infra.GCS, infra.ImageCacheBucket)
	} else {
		log.Printf("[di.storefront] image cache runs memory-only")
	}
	c.ImageCache = imagecache.New(infra.Commerce, store)

	// middleware + handlers
	c.visitor = &httpmw.Visitor{FirebaseAuth: infra.FirebaseAuth}
	c.deps = sfhttp.Deps{
		Cart:     sfHandler.NewCartHandler(c.Reconciler),
		Catalog:  sfHandler.NewCatalogHandler(c.CatalogQ),
		Category: sfHandler.NewCategoryHandler(c.CatalogQ),
		Checkout: sfHandler.NewCheckoutHandler(c.CheckoutUC),
		Image:    sfHandler.NewImageHandler(c.ImageCache),
		Session:  sfHandler.NewSessionHandler(c.SessionUC),
	}

	log.Printf("[di.storefront] container initialized")
	return c, nil
}

// Register registers storefront routes onto mux.
func Register(mux *http.ServeMux, c *Container) {
	if mux == nil || c == nil {
		return
	}
	sfhttp.Register(mux, c.deps)
}

// Wrap applies the service middleware chain: panic recovery outermost, then
// CORS, then visitor identity.
func (c *Container) Wrap(h http.Handler) http.Handler {
	origin := "*"
	if c.infra != nil {
		origin = c.infra.CORSOrigin
	}
	return httpmw.Recover(httpmw.CORS(origin)(c.visitor.Handler(h)))
}

// Close releases container-owned resources. Shared infra is closed by its
// owner.
func (c *Container) Close() error { return nil }
