package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ideadrop/internal/auth"
	"ideadrop/internal/errors"
	"ideadrop/internal/model"
	"ideadrop/internal/service"
)

// IdeaHandler handles idea endpoints.
type IdeaHandler struct {
	ideaService service.IdeaService
}

// NewIdeaHandler creates a new idea handler.
func NewIdeaHandler(ideaService service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// IdeaRequest represents an idea create/update request. Tags accept either
// a JSON array or a comma-separated string.
type IdeaRequest struct {
	Title       string        `json:"title" validate:"required"`
	Summary     string        `json:"summary" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Tags        model.TagList `json:"tags"`
}

// IdeaResponse represents an idea response, optionally with the owner
// expanded to a display-safe summary.
type IdeaResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Tags        model.TagList `json:"tags"`
	UserID      string        `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	User        *UserResponse `json:"user,omitempty"`
}

func toIdeaResponse(idea *model.Idea) IdeaResponse {
	resp := IdeaResponse{
		ID:          idea.ID.String(),
		Title:       idea.Title,
		Summary:     idea.Summary,
		Description: idea.Description,
		Tags:        idea.Tags,
		UserID:      idea.UserID.String(),
		CreatedAt:   idea.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = model.TagList{}
	}
	if idea.User != nil {
		owner := toUserResponse(idea.User)
		resp.User = &owner
	}
	return resp
}

// currentUserID resolves the authenticated user from the JWT middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "UNAUTHORIZED",
		})
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "UNAUTHORIZED",
		})
	}
	return userID, nil
}

// List godoc
// @Summary List ideas, newest first
// @Tags ideas
// @Produce json
// @Param _limit query int false "Maximum number of ideas to return"
// @Success 200 {array} IdeaResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas [get]
func (h *IdeaHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("_limit"); raw != "" {
		// non-numeric values are ignored, matching a missing parameter
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	ideas, err := h.ideaService.List(c.Request().Context(), limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]IdeaResponse, 0, len(ideas))
	for i := range ideas {
		resp = append(resp, toIdeaResponse(&ideas[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a single idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} IdeaResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ideas/{id} [get]
func (h *IdeaHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// malformed identifiers read the same as absent ones
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrIdeaNotFound.Error(),
			Code:  "IDEA_NOT_FOUND",
		})
	}

	idea, err := h.ideaService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toIdeaResponse(idea))
}

// Create godoc
// @Summary Create a new idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IdeaRequest true "Idea data"
// @Success 201 {object} IdeaResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas [post]
func (h *IdeaHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req IdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: errors.ErrMissingFields.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	idea, err := h.ideaService.Create(c.Request().Context(), userID, service.IdeaInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toIdeaResponse(idea))
}

// Update godoc
// @Summary Update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Param request body IdeaRequest true "Idea data"
// @Success 200 {object} IdeaResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ideas/{id} [put]
func (h *IdeaHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrIdeaNotFound.Error(),
			Code:  "IDEA_NOT_FOUND",
		})
	}

	var req IdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	// Field validation happens in the service, after the existence and
	// ownership checks, so a non-owner never sees a validation error.
	idea, err := h.ideaService.Update(c.Request().Context(), userID, id, service.IdeaInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toIdeaResponse(idea))
}

// Delete godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrIdeaNotFound.Error(),
			Code:  "IDEA_NOT_FOUND",
		})
	}

	if err := h.ideaService.Delete(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "idea deleted successfully",
	})
}
