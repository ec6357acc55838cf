package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Marcob7/uitjes-backend/internal/config"
	"github.com/Marcob7/uitjes-backend/internal/database"
	"github.com/Marcob7/uitjes-backend/internal/handler"
	"github.com/Marcob7/uitjes-backend/internal/queue"
	"github.com/Marcob7/uitjes-backend/internal/repository"
	"github.com/Marcob7/uitjes-backend/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	cities := repository.NewCityRepo(db)
	events := repository.NewEventRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	feedback := repository.NewFeedbackRepo(db)

	deps := router.Deps{
		Cfg:       cfg,
		RateCfg:   config.LoadRateLimitConfig(),
		Redis:     rdb,
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Events:    handler.NewEventHandler(events),
		Feedback:  handler.NewFeedbackHandler(feedback),
		Favorites: handler.NewFavoriteHandler(favorites, events),
		Admin:     handler.NewAdminHandler(cities),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, deps)

	// The consumer keeps its own reconnect loop; only start it when a
	// broker is configured.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartFeedbackConsumer(); err != nil {
				log.Printf("feedback consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
