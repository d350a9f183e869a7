package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/routes"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is cancelled, then drains analytics and notifications.
func Serve(ctx context.Context, env configs.ENV) error {
	db, err := configs.OpenConnection(env)
	if err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}
	log.Println("✅ Database connected.")

	if err := migrations.AutoMigrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		return err
	}
	sessionStore := sessions.NewAdminSessionStore(env.IsProduction(), keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	csrfKey, err := configs.LoadCSRFKey(env)
	if err != nil {
		return err
	}

	creds, err := configs.LoadAdminCredentials(env)
	if err != nil {
		return err
	}

	store, err := storage.New(ctx, configs.StorageConfig(env))
	if err != nil {
		return fmt.Errorf("object store init failed: %w", err)
	}
	log.Printf("✅ Object store initialized (%s).", env.StorageDriver)

	tracker := services.NewTracker(repositories.NewAnalyticsRepository(db), env.TrackerBuffer, env.TrackerWorkers)
	defer tracker.Close()

	var notifier services.Notifier
	if env.EmailHost != "" {
		notifier = services.NewMailer(services.Config{
			Host:     env.EmailHost,
			Port:     env.EmailPort,
			Username: env.EmailUsername,
			Password: env.EmailPassword,
			From:     env.EmailFrom,
		})
	}
	contact := services.NewContactService(repositories.NewContactMessageRepository(db), notifier, env.AdminEmail)
	defer contact.Wait()

	router := routes.NewRouter(routes.Deps{
		DB:       db,
		Env:      env,
		Store:    store,
		Sessions: sessionStore,
		Auth:     services.NewAuthService(creds),
		Tracker:  tracker,
		Contact:  contact,
		CSRFKey:  csrfKey,
	})

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
