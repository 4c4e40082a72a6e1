package main

import (
	"io"
	"log"
	"os"

	"github.com/malkhatib/portfolio-api/internal/config"
	"github.com/malkhatib/portfolio-api/internal/logging"
	"github.com/malkhatib/portfolio-api/internal/media"
	miniorepo "github.com/malkhatib/portfolio-api/internal/repository/minio"
	"github.com/malkhatib/portfolio-api/internal/repository/ports"
	"github.com/malkhatib/portfolio-api/internal/repository/postgres"
	"github.com/malkhatib/portfolio-api/internal/service"
	transporthttp "github.com/malkhatib/portfolio-api/internal/transport/http"
	"github.com/malkhatib/portfolio-api/internal/transport/mail"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash writer disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	var (
		sessionRepo ports.SessionRepository
		projectRepo ports.ProjectRepository
		requestRepo ports.PreviewRequestRepository
	)
	if cfg.UseDatabase {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		defer db.Close()
		sessionRepo = postgres.NewSessionRepo(db)
		projectRepo = postgres.NewProjectRepo(db)
		requestRepo = postgres.NewPreviewRequestRepo(db)
	} else {
		// Degraded mode: sessions trust cookie presence, projects list
		// empty, mutations are rejected. Local development only.
		log.Println("Warning: no database configured, running with cookie-based sessions")
	}

	var storage ports.ObjectStorage
	if cfg.MinIOEndpoint != "" {
		client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect object storage: %v", err)
		}
		storage = miniorepo.NewStorage(client, cfg.MinIOEndpoint, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
	}

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.ContactEmail)
	var notifier service.LeadNotifier
	if mailer.Configured() {
		notifier = mailer
	}

	inspector := media.NewInspector(cfg.ProjectImageMaxDimension)

	authService := service.NewAuthService(sessionRepo, cfg.AdminUsername, cfg.AdminPassword, cfg.SessionTTL)
	projectService := service.NewProjectService(projectRepo, storage, inspector, cfg.MinIOBucketUploads, cfg.ProjectImageMaxBytes)
	requestService := service.NewPreviewRequestService(requestRepo, notifier)
	contactService := service.NewContactService(mailer)

	e := transporthttp.NewRouter(cfg.AllowOrigins)
	transporthttp.RegisterAuth(e, authService, cfg.Production())
	transporthttp.RegisterProjects(e, authService, projectService)
	transporthttp.RegisterPreviewRequests(e, authService, requestService)
	transporthttp.RegisterContact(e, contactService)
	transporthttp.RegisterPages(e)
	transporthttp.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
