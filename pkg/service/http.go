package service

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

// RankRequest is the JSON body of POST /api/v1/ranks.
type RankRequest struct {
	Contents      string  `json:"contents"` // Edge-list corpus
	Damping       float64 `json:"damping"`
	Samples       int64   `json:"samples"`
	Threshold     float64 `json:"threshold"`
	MaxIterations int64   `json:"max_iterations"`
}

// NewHTTPServer builds the echo instance with the API routes registered.
func NewHTTPServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.POST("/api/v1/ranks", handleRanks)
	e.GET("/api/v1/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func handleRanks(c echo.Context) error {
	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ranks, err := ComputeRanks(&proto.CorpusUpload{
		From:          c.RealIP(),
		Contents:      []byte(req.Contents),
		Damping:       req.Damping,
		Samples:       req.Samples,
		Threshold:     req.Threshold,
		MaxIterations: req.MaxIterations,
	}, JobBoth)
	if err != nil {
		if isInvalidArgument(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ranks)
}

func isInvalidArgument(err error) bool {
	return errors.Is(err, pagerank.ErrEmptyCorpus) ||
		errors.Is(err, pagerank.ErrUnknownPage) ||
		errors.Is(err, pagerank.ErrInvalidDamping) ||
		errors.Is(err, pagerank.ErrInvalidSamples) ||
		errors.Is(err, pagerank.ErrInvalidThreshold)
}
