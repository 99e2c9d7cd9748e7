package api

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, tokenTTL time.Duration) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
	itemsHandler := &ItemsHandler{DB: db}
	claimsHandler := &ClaimsHandler{DB: db}
	reviewsHandler := &ReviewsHandler{DB: db}
	backupHandler := &BackupHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)
	optionalMW := OptionalAuth(jwtSecret)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated account routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/auth/profile", authMW(http.HandlerFunc(authHandler.UpdateProfile)))

	// Items: browsing and reporting are open to everyone, with extra
	// visibility for logged-in admins. Moderation is admin only; photo
	// uploads need an account.
	mux.Handle("GET /api/items", optionalMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", optionalMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", optionalMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.Update))))
	mux.Handle("PUT /api/items/{id}/status", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.SetStatus))))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))
	mux.Handle("DELETE /api/items/{id}", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.Delete))))

	// Search suggestions (public).
	mux.HandleFunc("GET /api/search/suggest", itemsHandler.Suggest)

	// Claims: students file and see their own, admins review all.
	mux.Handle("POST /api/claims", authMW(http.HandlerFunc(claimsHandler.Create)))
	mux.Handle("GET /api/claims", authMW(http.HandlerFunc(claimsHandler.List)))
	mux.Handle("PUT /api/claims/{id}/status", authMW(RequireAdmin(http.HandlerFunc(claimsHandler.SetStatus))))

	// Reviews: reading is public, posting needs an account.
	mux.HandleFunc("GET /api/reviews", reviewsHandler.List)
	mux.Handle("POST /api/reviews", authMW(http.HandlerFunc(reviewsHandler.Create)))

	// Admin dashboard and backups.
	mux.Handle("GET /api/stats", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.Stats))))
	mux.Handle("GET /api/backup/export", authMW(RequireAdmin(http.HandlerFunc(backupHandler.Export))))
	mux.Handle("POST /api/backup/import", authMW(RequireAdmin(http.HandlerFunc(backupHandler.Import))))

	return LoggingMiddleware(mux)
}
