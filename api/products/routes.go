package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Eyal-donut/products-scanner-server/db"
	"github.com/Eyal-donut/products-scanner-server/types"
	"github.com/Eyal-donut/products-scanner-server/util"
)

// Routes creates a new Chi router with all of the routes for the product
// resource, at the root level
func Routes(database db.Provider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetAll(database))
	router.Get("/{barcode}", GetSingle(database))
	router.Post("/", Create(database))
	router.Post("/many", CreateMany(database))
	router.Delete("/{id}", Delete(database))
	router.Delete("/", DeleteAll(database))
	return router
}

// GetAll gets every product in the catalog
func GetAll(catalogProvider db.CatalogProvider) http.HandlerFunc {
	// Use a closure to inject the database provider
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := catalogProvider.GetAllProducts(r.Context())
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, products)
	}
}

// GetSingle gets a single product from the catalog by its barcode
func GetSingle(catalogProvider db.CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawBarcode := chi.URLParam(r, "barcode")
		if rawBarcode == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		barcode, err := strconv.ParseInt(rawBarcode, 10, 64)
		if err != nil {
			util.ErrorWithCode(w, errors.New("the barcode must be a number"),
				http.StatusBadRequest)
			return
		}

		product, err := catalogProvider.GetProductByCode(r.Context(), barcode)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, product)
	}
}

// Create creates a new product in the catalog
func Create(catalogProvider db.CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input types.ProductInput
		err := json.NewDecoder(r.Body).Decode(&input)
		if err != nil {
			util.Error(w, db.NewValidationError(err.Error()))
			return
		}

		product, err := catalogProvider.CreateProduct(r.Context(), input)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusCreated, product)
	}
}

// CreateMany creates a batch of products in the catalog, all-or-nothing
func CreateMany(catalogProvider db.CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inputs []types.ProductInput
		err := json.NewDecoder(r.Body).Decode(&inputs)
		if err != nil {
			util.Error(w, db.NewValidationError(err.Error()))
			return
		}

		products, err := catalogProvider.CreateProducts(r.Context(), inputs)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusCreated, products)
	}
}

// Delete deletes a product in the catalog by its internal identifier
// (deliberately not by barcode; see db.CatalogProvider)
func Delete(catalogProvider db.CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		err := catalogProvider.DeleteProduct(r.Context(), id)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, map[string]interface{}{})
	}
}

// DeleteAll empties the entire catalog
func DeleteAll(catalogProvider db.CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := catalogProvider.DeleteAllProducts(r.Context())
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, map[string]interface{}{})
	}
}
