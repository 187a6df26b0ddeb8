// Package api exposes the solver over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/pkg/core/services"
	"github.com/coursestaff/assignment-solver/pkg/core/solver"
	"github.com/coursestaff/assignment-solver/pkg/db"
)

// SolveTermFunc runs the solver for a stored term
type SolveTermFunc func(ctx context.Context, termID, strategyName string, dryRun bool) (*services.SolveTermResult, error)

// Handler serves the solver endpoints
type Handler struct {
	solveTerm       SolveTermFunc
	defaultStrategy string
	weights         solver.Weights
	logger          *zap.Logger
}

// NewHandler creates a Handler. defaultStrategy and weights apply to ad-hoc solves.
func NewHandler(solveTerm SolveTermFunc, defaultStrategy string, weights solver.Weights, logger *zap.Logger) *Handler {
	return &Handler{
		solveTerm:       solveTerm,
		defaultStrategy: defaultStrategy,
		weights:         weights,
		logger:          logger,
	}
}

type solveTermResponse struct {
	TermID      string                   `json:"termId"`
	TermName    string                   `json:"termName"`
	Strategy    string                   `json:"strategy"`
	DryRun      bool                     `json:"dryRun"`
	Saved       bool                     `json:"saved"`
	Assignments solver.SolverAssignments `json:"assignments"`
	Coverage    []solver.SectionCoverage `json:"coverage"`
	Success     bool                     `json:"success"`
}

// Health reports that the server is up
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Strategies lists the registered strategy names and the default
func (h *Handler) Strategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"strategies": solver.StrategyNames(),
		"default":    h.defaultStrategy,
	})
}

// SolveTerm solves a stored term. Query parameters: strategy, dryRun.
func (h *Handler) SolveTerm(c *gin.Context) {
	termID := c.Param("termID")

	dryRun := false
	if raw := c.Query("dryRun"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dryRun must be a boolean"})
			return
		}
		dryRun = parsed
	}

	result, err := h.solveTerm(c.Request.Context(), termID, c.Query("strategy"), dryRun)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, solveTermResponse{
		TermID:      result.TermID,
		TermName:    result.TermName,
		Strategy:    result.Strategy,
		DryRun:      result.DryRun,
		Saved:       result.Saved,
		Assignments: result.Assignments,
		Coverage:    result.Coverage,
		Success:     result.Success,
	})
}

// Solve runs the solver over a SolverData body without touching the store
func (h *Handler) Solve(c *gin.Context) {
	var data solver.SolverData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	strategyName := c.DefaultQuery("strategy", h.defaultStrategy)
	strategy, err := solver.LookupStrategy(strategyName, h.weights)
	if err != nil {
		h.respondError(c, err)
		return
	}

	outcome, err := solver.Solve(data, strategy)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// respondError maps known error kinds to status codes and writes a single error message
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, solver.ErrInvalidInput), errors.Is(err, solver.ErrUnknownStrategy):
		status = http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	}

	_ = c.Error(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Solve failed", zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
