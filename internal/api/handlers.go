package api

import (
	"errors"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"costmap/server/internal/citydata"
	"costmap/server/internal/compare"
	"costmap/server/internal/geometry"
	"costmap/server/internal/models"
	"costmap/server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidNumber = errors.New("invalid number")

type Handler struct {
	store         *citydata.Store
	logger        *logrus.Logger
	metrics       *observability.Metrics
	defaultSalary float64
}

// CityView is a city record with its map classification
type CityView struct {
	models.CityRecord
	Color       string `json:"color"`
	Description string `json:"description"`
}

func NewHandler(store *citydata.Store, logger *logrus.Logger, metrics *observability.Metrics, defaultSalary float64) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	metrics.Cities.Set(float64(store.Len()))

	return &Handler{
		store:         store,
		logger:        logger,
		metrics:       metrics,
		defaultSalary: defaultSalary,
	}
}

// NewMissHook logs and counts ids that made the store fall back to a
// neutral value.
func NewMissHook(logger *logrus.Logger, metrics *observability.Metrics) citydata.MissHook {
	return func(op, id string) {
		if metrics != nil {
			metrics.LookupMisses.WithLabelValues(op).Inc()
		}
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"op":      op,
				"city_id": id,
			}).Warn("Unknown city id, using fallback value")
		}
	}
}

func newCityView(city models.CityRecord) CityView {
	band := compare.ClassifyIndex(city.ColIndex)
	return CityView{
		CityRecord:  city,
		Color:       band.Color(),
		Description: band.Description(),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cities": h.store.Len(),
	})
}

func (h *Handler) GetCities(c *gin.Context) {
	filter, err := parseCityFilter(c)
	if err != nil {
		h.logger.WithError(err).Error("Failed to parse city filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	cities := filter.Apply(h.store.Cities())
	views := make([]CityView, len(cities))
	for i, city := range cities {
		views[i] = newCityView(city)
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) GetCity(c *gin.Context) {
	id := c.Param("id")
	city, ok := h.store.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	average := h.store.NationalAverage()
	c.JSON(http.StatusOK, gin.H{
		"city":             newCityView(city),
		"national_average": average,
		"breakdown":        compare.BreakdownVsAverage(city, average),
	})
}

func (h *Handler) GetNationalAverage(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.NationalAverage())
}

func (h *Handler) GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.States())
}

func (h *Handler) GetState(c *gin.Context) {
	state, ok := h.store.GetState(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetMap returns the city markers as GeoJSON together with the initial
// viewport and the color legend
func (h *Handler) GetMap(c *gin.Context) {
	cities := h.store.Cities()
	c.JSON(http.StatusOK, gin.H{
		"view":    geometry.ViewFor(cities),
		"legend":  compare.Legend(),
		"markers": geometry.CityMarkers(cities, compare.ColorForIndex),
	})
}

func (h *Handler) Compare(c *gin.Context) {
	fromID, toID := c.Query("from"), c.Query("to")
	if fromID == "" || toID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to cities are required"})
		return
	}

	salary, err := h.salaryParam(c)
	if err != nil {
		h.logger.WithError(err).Error("Failed to parse salary")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary must be a positive number"})
		return
	}

	from, ok := h.store.GetByID(fromID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found: " + fromID})
		return
	}
	to, ok := h.store.GetByID(toID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found: " + toID})
		return
	}

	equivalence, err := compare.Equivalence(salary, from, to)
	if err != nil {
		if errors.Is(err, compare.ErrSameCity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot compare same city. Please select a different city to compare"})
			return
		}
		h.logger.WithError(err).Error("Failed to compute salary equivalence")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.Comparisons.Inc()
	h.logger.WithFields(logrus.Fields{
		"from":   from.ID,
		"to":     to.ID,
		"salary": salary,
	}).Debug("Compared cities")

	c.JSON(http.StatusOK, gin.H{
		"from":        newCityView(from),
		"to":          newCityView(to),
		"salary":      equivalence,
		"ratio":       h.store.CostOfLivingRatio(to.ID, from.ID),
		"distance_km": geometry.DistanceKm(from, to),
		"breakdown":   compare.BreakdownBetween(from, to),
	})
}

func (h *Handler) GetPurchasingPower(c *gin.Context) {
	id := c.Query("city")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City is required"})
		return
	}

	salary, err := h.salaryParam(c)
	if err != nil {
		h.logger.WithError(err).Error("Failed to parse salary")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary must be a positive number"})
		return
	}

	city, ok := h.store.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":           compare.PurchasingPower(salary, city),
		"adjusted_salary":  h.store.PurchasingPower(salary, city.ID),
		"formatted_salary": compare.FormatCurrency(salary),
	})
}

// GetRatio exposes the store ratio as is: unknown ids answer 1.0 with the
// fallback flag set instead of an error.
func (h *Handler) GetRatio(c *gin.Context) {
	fromID, toID := c.Query("from"), c.Query("to")
	_, okFrom := h.store.GetByID(fromID)
	_, okTo := h.store.GetByID(toID)

	c.JSON(http.StatusOK, gin.H{
		"from":     fromID,
		"to":       toID,
		"ratio":    h.store.CostOfLivingRatio(fromID, toID),
		"fallback": !okFrom || !okTo,
	})
}

// salaryParam reads the salary query parameter, falling back to the
// configured default. Grouping commas, spaces and the rupee sign are
// ignored.
func (h *Handler) salaryParam(c *gin.Context) (float64, error) {
	raw, ok := c.GetQuery("salary")
	if !ok || strings.TrimSpace(raw) == "" {
		return h.defaultSalary, nil
	}
	return ParseAmount(raw)
}

// ParseAmount parses a positive money amount such as "65,000" or "₹ 1,20,000"
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "", "₹", "").Replace(strings.TrimSpace(raw))
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, errInvalidNumber
	}
	return amount, nil
}

func parseCityFilter(c *gin.Context) (*models.CityFilter, error) {
	filter := &models.CityFilter{}

	for _, state := range c.QueryArray("state") {
		for _, s := range strings.Split(state, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.States = append(filter.States, s)
			}
		}
	}

	var err error
	if filter.MinIndex, err = optionalFloat(c, "min_index"); err != nil {
		return nil, err
	}
	if filter.MaxIndex, err = optionalFloat(c, "max_index"); err != nil {
		return nil, err
	}
	return filter, nil
}

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return nil, errInvalidNumber
	}
	return &v, nil
}
