package app

import (
	"context"
	"sync"

	"letterChat/configs"
	"letterChat/internal/handlers"
	"letterChat/internal/repositories"
	"letterChat/internal/servers/database"
	"letterChat/internal/servers/http"
	"letterChat/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)

	letterRepo := repositories.NewLetterRepository(db, app.redis, app.ctx)
	letterService := services.NewLetterService(letterRepo)

	restHandler := handlers.NewRestHandler(
		authService,
		letterService,
	)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
