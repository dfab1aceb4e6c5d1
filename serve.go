package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/camden-git/hackerdb/config"
	"github.com/camden-git/hackerdb/database"
	"github.com/camden-git/hackerdb/handlers"
	"github.com/camden-git/hackerdb/repository"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the imported people, skills and hardware over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func newRouter(cfg config.Config, gdb *gorm.DB) http.Handler {
	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	userHandler := &handlers.UserHandler{People: repository.NewPersonRepository(gdb)}
	skillHandler := &handlers.SkillHandler{Skills: repository.NewSkillRepository(gdb)}
	hardwareHandler := &handlers.HardwareHandler{Hardware: repository.NewHardwareRepository(gdb)}

	r.Get("/", handlers.Hello)
	r.Get("/users", userHandler.ListUsers)
	r.Route("/skills", func(r chi.Router) {
		r.Get("/", skillHandler.ListSkills)
		r.Get("/{skill}", skillHandler.GetSkill)
	})
	r.Get("/hardware", hardwareHandler.ListHardware)

	return r
}

func runServe(cfg config.Config) error {
	log.Printf("Using database: %s", cfg.DatabasePath)
	gdb, err := database.InitGormDB(cfg.DatabasePath, database.ParseGormLogLevel(cfg.GormLogLevel))
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.CheckSchema(sqlDB); err != nil {
		return err
	}

	if n, err := repository.NewPersonRepository(gdb).Count(); err != nil {
		log.Printf("Warning: could not count people: %v", err)
	} else {
		log.Printf("Serving %d people", n)
	}

	port := strconv.Itoa(cfg.Port)
	serverAddr := ":" + port
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      newRouter(cfg, gdb),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return server.ListenAndServe()
}
