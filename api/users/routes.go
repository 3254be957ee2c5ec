package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Eyal-donut/products-scanner-server/db"
	"github.com/Eyal-donut/products-scanner-server/types"
	"github.com/Eyal-donut/products-scanner-server/util"
)

// Routes creates a new Chi router with all of the routes for the user
// resource, at the root level
func Routes(database db.Provider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetByEmail(database))
	router.Get("/{id}", GetSingle(database))
	router.Patch("/{id}", UpdatePreferences(database))
	router.Delete("/{id}", Delete(database))
	router.Delete("/", DeleteAll(database))
	return router
}

// GetByEmail gets every user registered under the email query parameter
func GetByEmail(accountProvider db.AccountProvider) http.HandlerFunc {
	// Use a closure to inject the database provider
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			util.ErrorWithCode(w, errors.New("the email query parameter is empty"),
				http.StatusBadRequest)
			return
		}

		users, err := accountProvider.GetUsersByEmail(r.Context(), email)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, users)
	}
}

// GetSingle gets a single user by its identifier
func GetSingle(accountProvider db.AccountProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		user, err := accountProvider.GetUser(r.Context(), id)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, user)
	}
}

// UpdatePreferences replaces the preference groups present in the request
// body. Any other field in the payload is ignored rather than written; the
// patch shape cannot express anything but the three groups.
func UpdatePreferences(accountProvider db.AccountProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		var patch types.PreferencePatch
		err := json.NewDecoder(r.Body).Decode(&patch)
		if err != nil {
			util.Error(w, db.NewValidationError(err.Error()))
			return
		}

		updated, err := accountProvider.UpdateUserPreferences(r.Context(), id, patch)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, updated)
	}
}

// Delete deletes a user by its identifier
func Delete(accountProvider db.AccountProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		err := accountProvider.DeleteUser(r.Context(), id)
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, map[string]interface{}{})
	}
}

// DeleteAll empties the entire account store; development use only
func DeleteAll(accountProvider db.AccountProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := accountProvider.DeleteAllUsers(r.Context())
		if err != nil {
			util.Error(w, err)
			return
		}

		util.Data(w, http.StatusOK, map[string]interface{}{})
	}
}
