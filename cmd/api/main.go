package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/infra/security"
	"github.com/xavierca1/ligue-outreach/internal/infra/worker"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	redisClient, err := security.NewRedisClient(os.Getenv("REDIS_ADDR"))
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Sessão e adapters
	signer, err := security.NewSessionSigner(os.Getenv("AUTH_SECRET"))
	if err != nil {
		log.Fatal(err)
	}
	denylist := security.NewRedisDenylist(redisClient)
	hasher := security.NewBcryptHasher()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
		)
	}

	// 3. Workers
	importWorker := queue.NewWorker(rabbitMQ.Ch, usecase.NewImportLeadUseCase(leadRepo))
	go importWorker.Start(queue.QueueName)

	statsWorker := worker.NewLeadStatsWorker(db)
	go statsWorker.Start(context.Background())

	// 4. UseCases
	aggregator := usecase.NewCampaignStatsAggregator(leadRepo)

	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, campaignRepo)
	updateLeadUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)
	enqueueUC := usecase.NewEnqueueLeadImportsUseCase(producer)

	listCampaignsUC := usecase.NewListCampaignsUseCase(campaignRepo, aggregator)
	createCampaignUC := usecase.NewCreateCampaignUseCase(campaignRepo)
	getCampaignUC := usecase.NewGetCampaignUseCase(campaignRepo, aggregator)
	updateCampaignUC := usecase.NewUpdateCampaignUseCase(campaignRepo, aggregator)
	deleteCampaignUC := usecase.NewDeleteCampaignUseCase(campaignRepo)
	campaignLeadsUC := usecase.NewListCampaignLeadsUseCase(leadRepo, campaignRepo)

	registerUC := usecase.NewRegisterUserUseCase(userRepo, hasher, mailSender)
	loginUC := usecase.NewLoginUserUseCase(userRepo, hasher)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, userRepo, signer, denylist)
	leadHandler := handlers.NewLeadHandler(listLeadsUC, createLeadUC, updateLeadUC, enqueueUC, leadRepo)
	campaignHandler := handlers.NewCampaignHandler(
		listCampaignsUC, createCampaignUC, getCampaignUC, updateCampaignUC, deleteCampaignUC, campaignLeadsUC,
	)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, redisClient)

	session := middleware.NewSession(signer, denylist)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)

	// Todo o resto é escopado pelo owner da sessão.
	r.Group(func(r chi.Router) {
		r.Use(session.Handler)

		r.Get("/me", authHandler.Me)

		r.Get("/leads", leadHandler.List)
		r.Post("/leads", leadHandler.Create)
		r.Post("/leads/import", leadHandler.Import)
		r.Get("/leads/{id}", leadHandler.Get)
		r.Patch("/leads/{id}", leadHandler.Update)

		r.Get("/campaigns", campaignHandler.List)
		r.Post("/campaigns", campaignHandler.Create)
		r.Get("/campaigns/{id}", campaignHandler.Get)
		r.Put("/campaigns/{id}", campaignHandler.Update)
		r.Delete("/campaigns/{id}", campaignHandler.Delete)
		r.Get("/campaigns/{id}/leads", campaignHandler.Leads)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Outreach API rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
