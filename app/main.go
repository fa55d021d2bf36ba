package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/like"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/workers"
)

const (
	defaultTimeout        = 30
	defaultAddress        = ":9090"
	defaultCacheDB        = 0
	defaultBloomBitSize   = 10000000
	defaultBloomReseedMin = 10
	defaultJWTExpireHours = 24
	dbMaxRetry            = 10
	dbRetryIntervalSec    = 2
	shutdownTimeout       = 5 * time.Second
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file loaded, using process environment")
	}
}

// sleep is replaced in tests.
var sleep = time.Sleep

// retry calls fn up to attempts times and waits interval after every failure
// but the last. It returns the last error.
func retry(attempts int, interval time.Duration, fn func(attempt int) error) error {
	var err error
	for i := range attempts {
		if err = fn(i + 1); err == nil {
			return nil
		}
		if i < attempts-1 {
			sleep(interval)
		}
	}
	return err
}

func main() {
	// prepare database
	dsnConfig := mysqldriver.NewConfig()
	dsnConfig.User = os.Getenv("DATABASE_USER")
	dsnConfig.Passwd = os.Getenv("DATABASE_PASS")
	dsnConfig.Net = "tcp"
	dsnConfig.Addr = net.JoinHostPort(os.Getenv("DATABASE_HOST"), os.Getenv("DATABASE_PORT"))
	dsnConfig.DBName = os.Getenv("DATABASE_NAME")
	dsnConfig.ParseTime = true
	dsnConfig.Loc = time.UTC
	dsnConfig.ClientFoundRows = true
	dsn := dsnConfig.FormatDSN()

	var db *gorm.DB
	err := retry(dbMaxRetry, dbRetryIntervalSec*time.Second, func(attempt int) error {
		conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if migrate, _ := strconv.ParseBool(os.Getenv("DATABASE_AUTO_MIGRATE")); migrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			logrus.Fatal("failed to migrate database: ", err)
		}
	}

	// prepare cache
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Info("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(os.Getenv("CACHE_HOST"), os.Getenv("CACHE_PORT")),
		Password: os.Getenv("CACHE_PASS"),
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		logrus.Info("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db, uuid.NewString)
	commentRepo := mysqlRepo.NewCommentRepository(db, uuid.NewString)
	replyRepo := mysqlRepo.NewReplyRepository(db, uuid.NewString)
	likeRepo := mysqlRepo.NewLikeRepository(db, uuid.NewString)

	// Thread相关的三层架构
	// 1. DB层
	threadDBRepo := mysqlRepo.NewThreadRepository(db, uuid.NewString)
	// 2. Cache层
	threadCache := myRedisCache.NewThreadCache(client)
	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Info("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewThreadBloom(client, bloomBitSize)
	// 3. Repository协调层
	threadRepo := repository.NewThreadRepository(threadDBRepo, threadCache, bloomRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare bloom filter
	reseedMin, err := strconv.Atoi(os.Getenv("BLOOM_RESEED_MINUTES"))
	if err != nil {
		reseedMin = defaultBloomReseedMin
	}
	seeder := workers.NewBloomSeeder(threadDBRepo, bloomRepo, time.Duration(reseedMin)*time.Minute)
	if err := seeder.Seed(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}
	go seeder.Start(ctx)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}
	jwtTTL, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		logrus.Info("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = defaultJWTExpireHours
	}
	tokens := auth.New(jwtSecret, time.Duration(jwtTTL)*time.Hour)

	userSvc := user.NewService(userRepo, tokens)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo, userRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo, userRepo)
	likeSvc := like.NewService(likeRepo, commentRepo, threadRepo, userRepo)
	threadSvc := thread.NewService(threadRepo, commentRepo, likeRepo, userRepo, replySvc)

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rest.Handlers{
		User:    rest.NewUserHandler(userSvc),
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
	}.Register(route, middleware.AuthMiddleware(tokens))

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}
