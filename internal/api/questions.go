package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"trivia_backend/internal/apperr"  // Typed application errors
	"trivia_backend/internal/catalog" // Question catalog
	"trivia_backend/internal/metrics" // Prometheus counters
)

// CategoriesResponse lists the known categories
type CategoriesResponse struct {
	Categories []string `json:"categories"` // Sorted category names
}

// RandomQuestionHandler returns one random question from ?category=
func RandomQuestionHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := cat.RandomByCategory(c.Query("category"))
		if err != nil {
			writeError(c, catalogError(err))
			return
		}
		metrics.QuestionsServed.WithLabelValues(q.Category).Inc()
		c.JSON(http.StatusOK, q)
	}
}

// CategoriesHandler lists every category with at least one question
func CategoriesHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, CategoriesResponse{Categories: cat.Categories()})
	}
}

// catalogError maps catalog sentinels onto application errors
func catalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument):
		return apperr.New(apperr.CodeInvalidArgument, apperr.WithMessage(err.Error()), apperr.WithCause(err))
	case errors.Is(err, catalog.ErrCategoryNotFound):
		return apperr.New(apperr.CodeNotFound, apperr.WithMessage(err.Error()), apperr.WithCause(err))
	}
	return apperr.Internal(err)
}
