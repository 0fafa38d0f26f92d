package main

import (
	"context"
	"os"
	"strings"
	"time"

	"sevgi/config"
	"sevgi/db"
	"sevgi/handlers"
	"sevgi/invite"
	"sevgi/metrics"
	"sevgi/models"
	"sevgi/questions"
	"sevgi/store"
	"sevgi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

func main() {
	config.Load()
	wd, _ := os.Getwd()
	utils.InitLogger(config.APP_ENV, config.LOG_LEVEL, wd)

	db.Init(config.MYSQL_DSN, config.SQLITE_FILE, config.DEBUG_MODE)
	if err := models.Init(db.Instance); err != nil {
		utils.Logger.Fatalf("Migration failed: %v", err)
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics, err := metrics.KeyMetrics(registry, "sevgi_store", metrics.FieldMethod, metrics.FieldStore)
	if err != nil {
		utils.Logger.Fatalf("Metrics setup failed: %v", err)
	}
	s := store.Instrument(store.New(db.Instance), db.Instance.Dialector.Name(), storeMetrics)
	if config.SEED_QUESTIONS {
		n, err := s.SeedQuestions(context.Background(), questions.Bank())
		if err != nil {
			utils.Logger.Fatalf("Seeding questions failed: %v", err)
		}
		if n > 0 {
			utils.Logger.WithField("count", n).Info("Seeded question bank")
		}
	}
	amount, err := decimal.NewFromString(config.PAYMENT_AMOUNT)
	if err != nil {
		utils.Logger.Fatalf("Invalid PAYMENT_AMOUNT %q: %v", config.PAYMENT_AMOUNT, err)
	}
	handlers.Invites = invite.New(s, invite.Options{
		QuizSize:      config.QUIZ_SIZE,
		TokenMaxTries: config.TOKEN_MAX_TRIES,
		StableQuiz:    config.QUIZ_STABLE_PER_INVITE,
		BaseURL:       config.BASE_URL,
		PaymentAmount: amount,
	})

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.CacheControl(utils.CacheNoCache)) // invite state changes on every step
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	utils.Logger.Fatalf("Server stopped: %v", err)
}
