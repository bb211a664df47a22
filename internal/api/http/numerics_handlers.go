package http

import (
	"fmt"
	"net/http"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/finitediff"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/jacobi"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/regulafalsi"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/shared/utils"
	"github.com/gin-gonic/gin"
)

// Jacobi solves a linear system. Numeric failures are 200 responses with success=false.
func (h *Handlers) Jacobi(c *gin.Context) {
	var req JacobiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := firstError(
		utils.ValidateMatrixSize(req.MatrixA),
		utils.ValidateVectorSize(req.VectorB, "vector_b", utils.MaxDimension),
		utils.ValidateVectorSize(req.InitialGuess, "initial_guess", utils.MaxDimension),
		utils.ValidateBudget(req.MaxIterations),
	); err != nil {
		badRequest(c, err)
		return
	}

	report := h.numerics.Jacobi(c.Request.Context(), jacobi.Request{
		A:             req.MatrixA,
		B:             req.VectorB,
		X0:            req.InitialGuess,
		MaxIterations: req.MaxIterations,
		Tolerance:     req.Tolerance,
	})
	render(c, http.StatusOK, report)
}

// Dominance checks strict row diagonal dominance
func (h *Handlers) Dominance(c *gin.Context) {
	var req DominanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidateMatrixSize(req.MatrixA); err != nil {
		badRequest(c, err)
		return
	}

	render(c, http.StatusOK, h.numerics.Dominance(c.Request.Context(), req.MatrixA))
}

// RegulaFalsi finds a bracketed root
func (h *Handlers) RegulaFalsi(c *gin.Context) {
	var req RootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := firstError(
		utils.ValidateExpression(req.Function, true),
		utils.ValidateBudget(req.MaxIterations),
	); err != nil {
		badRequest(c, err)
		return
	}

	render(c, http.StatusOK, h.numerics.RegulaFalsi(c.Request.Context(), regulafalsi.Request{
		Expression:    req.Function,
		A:             *req.A,
		B:             *req.B,
		MaxIterations: req.MaxIterations,
		Tolerance:     req.Tolerance,
	}))
}

// FiniteDifference serves /api/finite-difference/:method
func (h *Handlers) FiniteDifference(c *gin.Context) {
	method := finitediff.Method(c.Param("method"))
	if !method.Valid() {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("unknown finite difference method %q", method),
		})
		return
	}
	h.differentiate(c, method)
}

// ForwardFD, BackwardFD and CenterFD keep the per-method paths
func (h *Handlers) ForwardFD(c *gin.Context)  { h.differentiate(c, finitediff.Forward) }
func (h *Handlers) BackwardFD(c *gin.Context) { h.differentiate(c, finitediff.Backward) }
func (h *Handlers) CenterFD(c *gin.Context)   { h.differentiate(c, finitediff.Central) }

func (h *Handlers) differentiate(c *gin.Context, method finitediff.Method) {
	var req DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := firstError(
		utils.ValidateExpression(req.Function, false),
		utils.ValidateVectorSize(req.XValues, "x_values", utils.MaxPoints),
		utils.ValidateVectorSize(req.YValues, "y_values", utils.MaxPoints),
	); err != nil {
		badRequest(c, err)
		return
	}

	order := 1
	if req.Order != nil {
		order = *req.Order
	}
	render(c, http.StatusOK, h.numerics.Differentiate(c.Request.Context(), finitediff.Request{
		Method:     method,
		Expression: req.Function,
		Points:     req.XValues,
		Samples:    req.YValues,
		Order:      order,
		Step:       req.H,
	}))
}

// Evaluate computes the expression at the given points
func (h *Handlers) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := firstError(
		utils.ValidateExpression(req.Function, true),
		utils.ValidateVectorSize(req.XValues, "x_values", utils.MaxPoints),
	); err != nil {
		badRequest(c, err)
		return
	}

	xs := req.XValues
	if len(xs) == 0 {
		if req.X == nil {
			badRequest(c, fmt.Errorf("x_values or x is required"))
			return
		}
		xs = []float64{*req.X}
	}
	render(c, http.StatusOK, h.numerics.Evaluate(c.Request.Context(), req.Function, xs))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
