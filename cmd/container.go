package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/application/applicationapi"
	"github.com/Abraxas-365/eduresume/eduresume/application/applicationinfra"
	"github.com/Abraxas-365/eduresume/eduresume/application/applicationsrv"
	"github.com/Abraxas-365/eduresume/eduresume/description/descriptionapi"
	"github.com/Abraxas-365/eduresume/eduresume/description/descriptioninfra"
	"github.com/Abraxas-365/eduresume/eduresume/description/descriptionsrv"
	"github.com/Abraxas-365/eduresume/eduresume/feedback/feedbackapi"
	"github.com/Abraxas-365/eduresume/eduresume/feedback/feedbackinfra"
	"github.com/Abraxas-365/eduresume/eduresume/feedback/feedbacksrv"
	"github.com/Abraxas-365/eduresume/eduresume/hunter/hunterapi"
	"github.com/Abraxas-365/eduresume/eduresume/hunter/huntersrv"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningapi"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeninginfra"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningsrv"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumeapi"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumeinfra"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumesrv"
	"github.com/Abraxas-365/eduresume/eduresume/template/templateapi"
	"github.com/Abraxas-365/eduresume/eduresume/template/templateinfra"
	"github.com/Abraxas-365/eduresume/eduresume/template/templatesrv"
	"github.com/Abraxas-365/eduresume/eduresume/user/userauth"
	"github.com/Abraxas-365/eduresume/eduresume/user/userinfra"
	"github.com/Abraxas-365/eduresume/internal/ai/era"
	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// templateBucketName mirrors the historical GridFS bucket the PDFs lived in.
const templateBucketName = "professorTemplates"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB        *sqlx.DB
	Redis     *redis.Client
	S3Client  *s3.Client
	BlobStore *blobx.Store

	// Services
	AuthService        *userauth.AuthService
	TokenService       *userauth.TokenService
	TemplateService    *templatesrv.Service
	ResumeService      *resumesrv.Service
	JobOpeningService  *jobopeningsrv.Service
	ApplicationService *applicationsrv.Service
	FeedbackService    *feedbacksrv.Service
	DescriptionService *descriptionsrv.Service
	HunterService      *huntersrv.Service

	// API Handlers
	AuthHandlers        *userauth.Handlers
	TemplateHandlers    *templateapi.Handlers
	ResumeHandlers      *resumeapi.Handlers
	JobOpeningHandlers  *jobopeningapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	FeedbackHandlers    *feedbackapi.Handlers
	DescriptionHandlers *descriptionapi.Handlers
	HunterHandlers      *hunterapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (password reset tokens)
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Binary object store. The store is created empty and bound to its
	// backing bucket exactly once here.
	c.BlobStore = blobx.NewStore()

	var bucket blobx.Bucket
	switch backend := os.Getenv("BLOB_BACKEND"); backend {
	case "s3":
		awsRegion := os.Getenv("AWS_REGION")
		awsBucket := os.Getenv("AWS_BUCKET")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		bucket = blobx.NewS3Bucket(c.S3Client, awsBucket, templateBucketName)
	case "memory":
		logx.Warn("BLOB_BACKEND=memory: stored files will not survive a restart")
		bucket = blobx.NewMemoryBucket()
	default: // postgres
		pgBucket := blobx.NewPostgresBucket(c.DB, templateBucketName)
		if err := pgBucket.Migrate(context.Background()); err != nil {
			logx.Fatalf("Failed to prepare blob tables: %v", err)
		}
		bucket = pgBucket
	}

	if err := c.BlobStore.Initialize(bucket); err != nil {
		logx.Fatalf("Failed to initialize blob store: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	templateRepo := templateinfra.NewPostgresTemplateRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	jobRepo := jobopeninginfra.NewPostgresJobOpeningRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	feedbackRepo := feedbackinfra.NewPostgresFeedbackRepository(c.DB)
	descriptionRepo := descriptioninfra.NewPostgresDescriptionRepository(c.DB)

	// --- Auth ---
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = userauth.NewTokenService(jwtSecret, "eduresume")

	c.AuthService = userauth.NewAuthService(
		userRepo,
		c.TokenService,
		userauth.NewBcryptPasswordService(),
		userauth.NewRedisResetTokenStore(c.Redis),
	)

	// --- Domain Services ---
	c.TemplateService = templatesrv.NewService(templateRepo, c.BlobStore)
	c.ResumeService = resumesrv.NewService(resumeRepo, c.TemplateService)
	c.JobOpeningService = jobopeningsrv.NewService(jobRepo)
	c.ApplicationService = applicationsrv.NewService(applicationRepo, c.ResumeService, c.JobOpeningService)
	c.FeedbackService = feedbacksrv.NewService(feedbackRepo, resumeRepo)
	c.DescriptionService = descriptionsrv.NewService(descriptionRepo, era.NewGenerator(os.Getenv("OPENAI_API_KEY")))
	c.HunterService = huntersrv.NewService(c.ResumeService, c.JobOpeningService)

	// --- Handlers ---
	c.AuthHandlers = userauth.NewHandlers(c.AuthService)
	c.TemplateHandlers = templateapi.NewHandlers(c.TemplateService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.JobOpeningHandlers = jobopeningapi.NewHandlers(c.JobOpeningService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.FeedbackHandlers = feedbackapi.NewHandlers(c.FeedbackService)
	c.DescriptionHandlers = descriptionapi.NewHandlers(c.DescriptionService)
	c.HunterHandlers = hunterapi.NewHandlers(c.HunterService)

	// --- Middleware ---
	c.AuthMiddleware = userauth.Middleware(c.TokenService)
}
