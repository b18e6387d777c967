package wire

import (
	"filmfeed/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// All routes are public: login hands back a bare user id and nothing
// enforces it afterwards.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
}
