package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

// GameDefaults fill in fields a create request leaves out.
type GameDefaults struct {
	Rows       int
	Cols       int
	Difficulty string
}

type GameHandler struct {
	SessionManager *game.SessionManager
	Defaults       GameDefaults
}

func NewGameHandler(sm *game.SessionManager, defaults GameDefaults) *GameHandler {
	return &GameHandler{SessionManager: sm, Defaults: defaults}
}

type createGameRequest struct {
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Difficulty string `json:"difficulty"`
	HumanFirst *bool  `json:"humanFirst"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

// Register mounts the game routes on r.
func (h *GameHandler) Register(r gin.IRouter) {
	games := r.Group("/api/games")
	games.POST("", h.CreateGame)
	games.GET("/:id", h.GetGame)
	games.DELETE("/:id", h.DeleteGame)
	games.POST("/:id/moves", h.MakeMove)
	games.POST("/:id/restart", h.RestartGame)
	games.GET("/:id/hint", h.GetHint)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	opts := game.NewGameOptions{
		Rows:       req.Rows,
		Cols:       req.Cols,
		Difficulty: req.Difficulty,
		HumanFirst: true,
	}
	if opts.Rows == 0 {
		opts.Rows = h.Defaults.Rows
	}
	if opts.Cols == 0 {
		opts.Cols = h.Defaults.Cols
	}
	if opts.Difficulty == "" {
		opts.Difficulty = h.Defaults.Difficulty
	}
	if req.HumanFirst != nil {
		opts.HumanFirst = *req.HumanFirst
	}

	session, err := h.SessionManager.CreateSession(opts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session.Snapshot())
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.SessionManager.RemoveSession(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) MakeMove(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	outcome, err := session.HandleMove(*req.Column)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *GameHandler) RestartGame(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	state, err := session.Restart()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *GameHandler) GetHint(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	column, err := session.Hint()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"column": column})
}

func (h *GameHandler) lookup(c *gin.Context) (*game.GameSession, bool) {
	session, exists := h.SessionManager.GetSession(c.Param("id"))
	if !exists {
		writeError(c, game.ErrSessionNotFound)
		return nil, false
	}
	return session, true
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidColumn), errors.Is(err, domain.ErrInvalidDimensions):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull), errors.Is(err, domain.ErrGameFinished),
		errors.Is(err, game.ErrNotYourTurn), errors.Is(err, bot.ErrNoLegalMove):
		status = http.StatusConflict
	default:
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
