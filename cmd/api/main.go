// @title Yeşer API
// @description API for gratitude journaling app "Yeşer"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"

	"github.com/arthlor/yeser-api/internal/api"
	"github.com/arthlor/yeser-api/internal/jobs"
	"github.com/arthlor/yeser-api/internal/repository"
	"github.com/arthlor/yeser-api/internal/service"
	"github.com/arthlor/yeser-api/pkg/cleanup"
	"github.com/arthlor/yeser-api/pkg/config"
	jwtservice "github.com/arthlor/yeser-api/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	streaksRepo := repository.NewStreaksRepo(&dbCfg)

	userService := service.NewUserService(usersRepo, streaksRepo)
	entriesService := service.NewEntriesService(entriesRepo, streaksRepo)
	streakService := service.NewStreakService(streaksRepo)
	exportService := service.NewExportService(usersRepo, entriesRepo, streaksRepo)
	reminderService := service.NewReminderService(streaksRepo, usersRepo, service.LogNotifier{})

	scheduler := jobs.NewScheduler(reminderService)
	if err := scheduler.Start(context.Background(), cfg.ReminderCronSpec, cfg.DailyResetSpec); err != nil {
		log.Fatal("starting scheduler error: " + err.Error())
	}
	defer scheduler.Stop()
	defer cleanup.CleanUp()

	serv := api.New(&api.ServicesList{
		UserService:    userService,
		EntriesService: entriesService,
		StreakService:  streakService,
		ExportService:  exportService,
		JwtService:     jwtservice.New(cfg.JWTSecret),
	})
	err := serv.Run(cfg.APIAddress)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
