package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze-solver/api"
	api_i "github.com/beka-birhanu/vinom-maze-solver/api/i"
	"github.com/beka-birhanu/vinom-maze-solver/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze-solver/api/maze"
	"github.com/beka-birhanu/vinom-maze-solver/config"
	"github.com/beka-birhanu/vinom-maze-solver/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-maze-solver/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze-solver/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze-solver/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze-solver/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze-solver/service"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeSource     i.MazeSource
	solutionCache  i.SolutionCache
	leaderboard    i.Leaderboard
	solver         *service.Solver
	jwtTokenizer   i.Tokenizer
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI))
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

func initRedis(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

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

// initMazeSource prefers MongoDB and falls back to the maze directory.
func initMazeSource(ctx context.Context) {
	if config.Envs.MongoURI == "" {
		mazeSource = repo.NewDirSource(config.Envs.MazeDir)
		appLogger.Info(fmt.Sprintf("Reading mazes from %s", config.Envs.MazeDir))
		return
	}

	initMongo(ctx)
	mazeSource = repo.NewMazeRepo(mongoClient, config.Envs.DBName, config.Envs.MazeCollection)
	appLogger.Info("Maze repository initialized")
}

// initRedisStores enables the solution cache and leaderboard when Redis is configured.
func initRedisStores(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		return
	}

	initRedis(ctx)
	c, err := cache.NewRedisSolutionCache(redisClient, config.Envs.CacheTTLSeconds, "")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solution cache: %v", err))
		os.Exit(1)
	}
	solutionCache = c
	leaderboard = sortedstorage.NewRedisLeaderboard(redisClient, "", 0)
	appLogger.Info("Solution cache and leaderboard initialized")
}

func initSolver() {
	var err error
	solver, err = service.NewSolver(&service.Options{
		Workers:     config.Envs.SolverWorkers,
		Cache:       solutionCache,
		Leaderboard: leaderboard,
		Logger:      newLogger("SOLVER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solver initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeapi.Config{
		Solver:      solver,
		Source:      mazeSource,
		Leaderboard: leaderboard,
		Budgets:     config.Envs.MoveBudgets,
		Logger:      newLogger("MAZE-API", config.ColorPurple),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

// initRouter guards protected routes with JWTs, or closes them when no secret is set.
func initRouter() {
	authorization := identity.Deny()
	if config.Envs.JWTSecret != "" {
		initJWTTokenizer()
		authorization = identity.Authoriz(jwtTokenizer)
	} else {
		appLogger.Warning("JWT_SECRET is not set, protected routes are disabled")
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: authorization,
	})
	appLogger.Info("Router initialized")
}

// initSolving wires everything a solve needs and returns the cleanup func.
func initSolving(ctx context.Context) func() {
	initMazeSource(ctx)
	initRedisStores(ctx)
	initSolver()

	return func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if err := newRootCmd().Execute(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
