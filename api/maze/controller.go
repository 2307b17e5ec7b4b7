// Package mazeapi handles maze generation and solving over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/pathfinding"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardLimit = 10

// MazeController manages maze sessions.
type MazeController struct {
	sessionManager i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(msm i.MazeSessionManager) (*MazeController, error) {
	if msm == nil {
		return nil, errors.New("maze controller requires a session manager")
	}
	return &MazeController{sessionManager: msm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.GET("/:ID/runs", mc.runs)
	}
	route.GET("/leaderboard/:algorithm", mc.leaderboard)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.DELETE("/:ID", mc.close)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := mc.sessionManager.NewSession(ctx, request.Width, request.Height, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, snapshot)
}

// get returns a maze session snapshot.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	snapshot, err := mc.sessionManager.Session(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// solve runs a pathfinder against a maze session.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.sessionManager.Solve(ctx, id, request.Algorithm)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		Algorithm: result.Algorithm,
		Path:      result.Path,
		Steps:     result.Steps,
		Explored:  result.Explored,
	})
}

// runs lists the recorded runs of a maze session.
func (mc *MazeController) runs(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	runs, err := mc.sessionManager.Runs(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, runs)
}

// leaderboard lists the mazes with the longest routes for an algorithm.
func (mc *MazeController) leaderboard(ctx *gin.Context) {
	limit := int64(defaultLeaderboardLimit)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := mc.sessionManager.Leaderboard(ctx, ctx.Param("algorithm"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// regenerate resets and recarves a maze session.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	snapshot, err := mc.sessionManager.Regenerate(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// close drops a maze session.
func (mc *MazeController) close(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.Close(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, pathfinding.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pathfinding.ErrNoPathFound):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
