package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	runRepo            i.RunRepo
	leaderboard        i.Leaderboard
	mazeSessionManager i.MazeSessionManager
	mazeController     api_i.Controller
	jwtTokenizer       i.Tokenizer
	router             *api.Router
	appLogger          *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(client *mongo.Client) {
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Info("Run repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initLeaderboard(client *redis.Client) {
	var err error
	leaderboard, err = sortedstorage.NewRedisLeaderboard(client, config.Envs.LeaderboardTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("MAZE-SESSION", logger.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	var observer maze.StepFunc
	if config.Envs.Animate {
		stepLogger, err := logger.New("STEP", logger.ColorPurple, os.Stdout)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating step logger: %v", err))
			os.Exit(1)
		}
		delay := time.Duration(config.Envs.StepDelayMS) * time.Millisecond
		observer = func(c maze.Cell, role maze.Role) {
			stepLogger.Info(fmt.Sprintf("%s %s", role, c.Position()))
			time.Sleep(delay)
		}
	}

	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		RunRepo:         runRepo,
		Leaderboard:     leaderboard,
		Logger:          sessionLogger,
		MaxDimension:    config.Envs.MaxMazeDimension,
		LeaderboardSize: int64(config.Envs.LeaderboardSize),
		Observer:        observer,
		Animate:         config.Envs.Animate,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Session manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET is not set, bearer tokens will be rejected")
		return
	}
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	if config.Envs.APIKey == "" && t == nil {
		appLogger.Warning("Neither API_KEY nor JWT_SECRET is set, protected routes will reject every request")
	}
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t, config.Envs.APIKey),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", logger.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initRunRepo(mongoClient)
	initLeaderboard(redisClient)
	initSessionManager()
	initMazeController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
