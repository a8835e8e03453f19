package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leilaoradar/server/config"
	"leilaoradar/server/internal/advisory"
	"leilaoradar/server/internal/cache"
	"leilaoradar/server/internal/caixa"
	"leilaoradar/server/internal/filter"
	"leilaoradar/server/internal/models"
)

type Handler struct {
	logger      *logrus.Logger
	regionCache *cache.RegionCache
	advisor     *advisory.Client
}

// ListQuery mirrors the query parameters of the listing endpoint. Price
// bounds arrive as text and are parsed leniently.
type ListQuery struct {
	UF         string `form:"uf"`
	Modalidade string `form:"modalidade"`
	Cidade     string `form:"cidade"`
	MinValor   string `form:"minValor"`
	MaxValor   string `form:"maxValor"`
}

func NewHandler(regionCache *cache.RegionCache, advisor *advisory.Client, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		logger:      logger,
		regionCache: regionCache,
		advisor:     advisor,
	}
}

// HealthCheck reports process liveness
func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "API LeilãoRadar no ar")
}

func (h *Handler) GetProperties(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Error("Failed to parse listing query")
	}

	uf := strings.ToUpper(strings.TrimSpace(query.UF))
	if uf == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: uf"})
		return
	}

	records, err := h.regionCache.Get(c.Request.Context(), uf)
	if err != nil {
		h.logger.WithError(err).WithField("uf", uf).Error("Failed to load property listing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": listingErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, filter.Apply(records, h.buildQuery(uf, query)))
}

func (h *Handler) AnalyzeProperty(c *gin.Context) {
	var record models.PropertyRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Error("Failed to parse analysis request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report, err := h.advisor.Analyze(c.Request.Context(), record)
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze property"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetRegions returns the UFs whose listings the service can proxy
func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, config.SupportedRegions)
}

// buildQuery translates raw query parameters into filter predicates. The
// region code always participates so that superset listings, like the sample
// fixture, are narrowed at the boundary.
func (h *Handler) buildQuery(uf string, query ListQuery) filter.Query {
	return filter.Query{
		UF:         uf,
		Modalidade: strings.TrimSpace(query.Modalidade),
		Cidade:     strings.TrimSpace(query.Cidade),
		MinValor:   h.priceBound("minValor", query.MinValor),
		MaxValor:   h.priceBound("maxValor", query.MaxValor),
	}
}

// priceBound parses one numeric bound; unparseable input is treated as absent
// rather than rejected.
func (h *Handler) priceBound(name, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"param": name,
			"value": raw,
		}).Debug("Ignoring unparseable price bound")
		return nil
	}
	return &value
}

// listingErrorMessage keeps upstream detail in the response body without
// leaking transport internals.
func listingErrorMessage(err error) string {
	var fetchErr *caixa.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.StatusCode != 0 {
			return fmt.Sprintf("Failed to fetch listing: upstream returned status %d", fetchErr.StatusCode)
		}
		return "Failed to fetch the property listing"
	}

	var parseErr *caixa.ParseError
	if errors.As(err, &parseErr) {
		return "Failed to parse the upstream listing"
	}

	return "Failed to load the property listing"
}
