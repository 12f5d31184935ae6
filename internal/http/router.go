package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authdomain "github.com/cognitax/cognitax/internal/auth"
	authhttp "github.com/cognitax/cognitax/internal/http/auth"
	chathttp "github.com/cognitax/cognitax/internal/http/chat"
	overridehttp "github.com/cognitax/cognitax/internal/http/override"
	taxhttp "github.com/cognitax/cognitax/internal/http/tax"
	transactionhttp "github.com/cognitax/cognitax/internal/http/transaction"
	uploadhttp "github.com/cognitax/cognitax/internal/http/upload"
)

func New(
	tokens *authdomain.TokenManager,
	allowedOrigins []string,
	authV1 *authhttp.Handler,
	uploadsV1 *uploadhttp.Handler,
	transactionsV1 *transactionhttp.Handler,
	taxV1 *taxhttp.Handler,
	chatV1 *chathttp.Handler,
	overridesV1 *overridehttp.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		// Browsers reject credentialed responses from a wildcard origin.
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				authV1.Routes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticator(tokens))
				authV1.MeRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator(tokens))

			r.Route("/uploads", uploadsV1.Routes)

			r.Route("/transactions", func(r chi.Router) {
				transactionsV1.Routes(r)
			})

			taxV1.Routes(r)

			r.Route("/chat", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				chatV1.Routes(r)
			})

			r.Route("/overrides", overridesV1.Routes)
		})
	})

	return router
}
