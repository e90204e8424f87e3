package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/beka-birhanu/vinom-maze-solver/service"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// Controller serves maze routes.
type Controller struct {
	solver      i.MazeSolver
	source      i.MazeSource
	leaderboard i.Leaderboard
	budgets     []int
	logger      i.Logger
}

// Config holds the dependencies of a Controller. Leaderboard is optional.
type Config struct {
	Solver      i.MazeSolver
	Source      i.MazeSource
	Leaderboard i.Leaderboard
	Budgets     []int
	Logger      i.Logger
}

// NewController initializes a maze Controller.
func NewController(c Config) (*Controller, error) {
	if c.Solver == nil || c.Source == nil || c.Logger == nil {
		return nil, errors.New("maze controller requires a solver, a maze source and a logger")
	}
	return &Controller{
		solver:      c.Solver,
		source:      c.Source,
		leaderboard: c.Leaderboard,
		budgets:     c.Budgets,
		logger:      c.Logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.list)
		mazes.GET("/:name", mc.get)
		mazes.GET("/:name/solution", mc.solveStored)
	}
	route.POST("/solve", mc.solve)
	route.GET("/leaderboard", mc.top)
}

// RegisterProtected registers routes that require a token.
func (mc *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.PUT("/:name", mc.upload)
		mazes.POST("/generate", mc.generate)
	}
}

// list returns the names of stored mazes.
func (mc *Controller) list(ctx *gin.Context) {
	names, err := mc.source.List(ctx.Request.Context())
	if err != nil {
		mc.logger.Error(fmt.Sprintf("Listing mazes: %s", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}
	if names == nil {
		names = []string{}
	}
	ctx.JSON(http.StatusOK, gin.H{"mazes": names})
}

// get returns the text of a stored maze.
func (mc *Controller) get(ctx *gin.Context) {
	name := ctx.Param("name")
	text, ok := mc.load(ctx, name)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, &MazeResponse{Name: name, Maze: text})
}

// solveStored solves a maze from the source.
func (mc *Controller) solveStored(ctx *gin.Context) {
	name := ctx.Param("name")
	text, ok := mc.load(ctx, name)
	if !ok {
		return
	}
	mc.respondSolve(ctx, name, text)
}

// solve solves the maze sent in the request body.
func (mc *Controller) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc.respondSolve(ctx, request.Name, request.Maze)
}

// top returns the leaderboard.
func (mc *Controller) top(ctx *gin.Context) {
	if mc.leaderboard == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard is disabled"})
		return
	}

	limit := defaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxLeaderboardLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", maxLeaderboardLimit)})
			return
		}
		limit = v
	}

	rankings, err := mc.leaderboard.Top(ctx.Request.Context(), int64(limit))
	if err != nil {
		mc.logger.Error(fmt.Sprintf("Reading leaderboard: %s", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rankings": rankings})
}

// upload validates and stores a maze.
func (mc *Controller) upload(ctx *gin.Context) {
	var request UploadRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := ctx.Param("name")
	if _, err := maze.Parse(name, request.Maze); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if !mc.save(ctx, name, request.Maze) {
		return
	}
	ctx.JSON(http.StatusCreated, &MazeResponse{Name: name, Maze: request.Maze})
}

// generate creates, stores and returns a random maze.
func (mc *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := maze.Generate(request.Name, request.Width, request.Height, nil)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := m.String()
	if !mc.save(ctx, request.Name, text) {
		return
	}
	ctx.JSON(http.StatusCreated, &MazeResponse{Name: request.Name, Maze: text})
}

// load reads a maze or writes the error response.
func (mc *Controller) load(ctx *gin.Context, name string) (string, bool) {
	text, err := mc.source.Load(ctx.Request.Context(), name)
	switch {
	case err == nil:
		return text, true
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	case errors.Is(err, dmn.ErrInvalidMazeName):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.logger.Error(fmt.Sprintf("Loading maze %q: %s", name, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
	}
	return "", false
}

// save stores a maze or writes the error response.
func (mc *Controller) save(ctx *gin.Context, name, text string) bool {
	err := mc.source.Save(ctx.Request.Context(), name, text)
	switch {
	case err == nil:
		mc.logger.Info(fmt.Sprintf("Stored maze %q", name))
		return true
	case errors.Is(err, dmn.ErrInvalidMazeName):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.logger.Error(fmt.Sprintf("Saving maze %q: %s", name, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while saving maze"})
	}
	return false
}

// respondSolve solves text and writes the solution with its budget verdicts.
func (mc *Controller) respondSolve(ctx *gin.Context, name, text string) {
	solution, err := mc.solver.Solve(ctx.Request.Context(), name, text)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrBadFormat), errors.Is(err, service.ErrNoExit):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrUnreachable):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	default:
		mc.logger.Error(fmt.Sprintf("Solving maze %q: %s", name, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	// Solve already accepted the text, so it parses.
	m, err := maze.Parse(name, text)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		ID:       solution.ID,
		Name:     solution.Name,
		Exit:     solution.Exit,
		Moves:    solution.Moves,
		Expanded: solution.Expanded,
		Path:     solution.Path,
		Rendered: maze.Render(m.Grid, solution.Path),
		Budgets:  service.EvaluateBudgets(solution.Moves, mc.budgets),
		Cached:   solution.Cached,
	})
}
