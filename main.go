package main

import (
	"log"
	"time"

	"api/config"
	"api/database"
	_ "api/docs"
	"api/middleware"
	"api/realtime"
	"api/routes/v1"
	"api/rules"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title HackArena API
// @version 1.0
// @description Hackathon management API: registrations, teams, problems, documents, evaluations and leaderboards.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Init()

	db, err := database.Connect()
	if err != nil {
		log.Fatal(err)
	}

	cache := redis.NewClient(&redis.Options{
		Addr:     config.RedisHost + ":" + config.RedisPort,
		Password: config.RedisPassword,
	})

	policy := rules.DefaultPolicy
	hub := realtime.NewHub()
	leaderboards := services.NewLeaderboards(db, cache)

	deps := &v1.Deps{
		Auth:          middleware.NewAuth(db),
		LoginThrottle: middleware.NewLoginThrottle(config.DefaultLoginThrottleConfig),
		Hub:           hub,

		Users:        services.NewUsers(db, policy),
		Hackathons:   services.NewHackathons(db, policy),
		Teams:        services.NewTeams(db),
		Problems:     services.NewProblems(db),
		Documents:    services.NewDocuments(db),
		Evaluations:  services.NewEvaluations(db, policy, hub, leaderboards),
		Leaderboards: leaderboards,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.Register(r, deps)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateRuntimeMetrics()
	middleware.CollectSystemMetrics(30 * time.Second)

	log.Printf("Listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
