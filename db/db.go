package db

import (
	"context"

	"github.com/Eyal-donut/products-scanner-server/types"
)

// Provider represents a database provider implementation
type Provider interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	CatalogProvider
	AccountProvider
}

// CatalogProvider provides operations over types.Product documents.
// Products are looked up by their barcode (code) but deleted by their
// internal identifier; the asymmetry is inherited from the scanner client's
// API contract and is deliberate.
type CatalogProvider interface {
	GetProductByCode(ctx context.Context, code int64) (*types.Product, error)
	GetAllProducts(ctx context.Context) ([]types.Product, error)
	CreateProduct(ctx context.Context, input types.ProductInput) (*types.Product, error)
	CreateProducts(ctx context.Context, inputs []types.ProductInput) ([]types.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DeleteAllProducts(ctx context.Context) error
}

// AccountProvider provides operations over types.User documents.
// Users are provisioned elsewhere; the only mutation exposed here is the
// constrained preference update.
type AccountProvider interface {
	GetUsersByEmail(ctx context.Context, email string) ([]types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	UpdateUserPreferences(ctx context.Context, id string, patch types.PreferencePatch) (*types.User, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteAllUsers(ctx context.Context) error
}
