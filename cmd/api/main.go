package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sharebite/sharebite-backend/internal/modules/auth"
	"github.com/sharebite/sharebite-backend/internal/modules/listing"
	"github.com/sharebite/sharebite-backend/internal/modules/organization"
	"github.com/sharebite/sharebite-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Sessions ─────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, []byte(secret))
	auth.NewHandler(authService, userService).RegisterRoutes(router)

	authenticated := auth.Authenticated(authService)
	user.NewHandler(userService).RegisterRoutes(router, authenticated)

	// ── Food Listings ───────────────────────────────────────
	listingRepo := listing.NewPostgresRepository(db)
	listingService := listing.NewService(listingRepo)
	listing.NewHandler(listingService).RegisterRoutes(router, authenticated, auth.AdminOnly)

	// ── Organization Directory ──────────────────────────────
	orgRepo := organization.NewPostgresRepository(db)
	orgService := organization.NewService(orgRepo)
	organization.NewHandler(orgService).RegisterRoutes(router, authenticated, auth.AdminOnly)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("ShareBite API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
