package citydata

import (
	"errors"
	"fmt"

	"costmap/server/internal/models"
)

// NationalAverageIndex is the cost-of-living index of the national average
const NationalAverageIndex = 100.0

var (
	ErrEmptyDataset  = errors.New("dataset has no cities")
	ErrDuplicateCity = errors.New("duplicate city id")
	ErrInvalidCity   = errors.New("invalid city record")
)

// MissHook is called when a fallback operation receives an unknown id
type MissHook func(op, id string)

// Option configures a Store
type Option func(*Store)

// WithMissHook reports ids that made CostOfLivingRatio or PurchasingPower
// fall back to their neutral result.
func WithMissHook(hook MissHook) Option {
	return func(s *Store) {
		s.onMiss = hook
	}
}

// State groups the cities of one state
type State struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Store is an immutable table of city records plus the derived national
// average. It is safe for concurrent readers.
type Store struct {
	cities  []models.CityRecord
	byID    map[string]int
	states  []State
	average models.CostProfile
	onMiss  MissHook
}

// NewStore validates and copies the records, then computes the national
// average once.
func NewStore(records []models.CityRecord, opts ...Option) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &Store{
		cities: make([]models.CityRecord, len(records)),
		byID:   make(map[string]int, len(records)),
	}
	copy(s.cities, records)

	var sum models.CostProfile
	stateIndex := make(map[string]int)
	for i, city := range s.cities {
		if err := validate(city); err != nil {
			return nil, err
		}
		if _, ok := s.byID[city.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCity, city.ID)
		}
		s.byID[city.ID] = i
		sum = sum.Add(city.CostProfile)

		j, ok := stateIndex[city.State]
		if !ok {
			j = len(s.states)
			stateIndex[city.State] = j
			s.states = append(s.states, State{Name: city.State})
		}
		s.states[j].Cities = append(s.states[j].Cities, city.ID)
	}

	s.average = sum.Scale(1 / float64(len(s.cities)))
	s.average.ColIndex = NationalAverageIndex

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func validate(city models.CityRecord) error {
	if city.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCity)
	}
	if !(city.ColIndex > 0) {
		return fmt.Errorf("%w: %s: cost of living index must be positive", ErrInvalidCity, city.ID)
	}
	if city.AverageSalary < 0 {
		return fmt.Errorf("%w: %s: negative average salary", ErrInvalidCity, city.ID)
	}
	for _, item := range city.LineItems() {
		if item.Value < 0 {
			return fmt.Errorf("%w: %s: negative %s", ErrInvalidCity, city.ID, item.Key)
		}
	}
	return nil
}

// GetByID looks a city up by its exact id
func (s *Store) GetByID(id string) (models.CityRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.CityRecord{}, false
	}
	return s.cities[i], true
}

// Cities returns a copy of every record in table order
func (s *Store) Cities() []models.CityRecord {
	cities := make([]models.CityRecord, len(s.cities))
	copy(cities, s.cities)
	return cities
}

// Len returns the number of cities
func (s *Store) Len() int {
	return len(s.cities)
}

// NationalAverage returns the precomputed national average
func (s *Store) NationalAverage() models.CostProfile {
	return s.average
}

// States returns the cities grouped by state in first-seen order
func (s *Store) States() []State {
	states := make([]State, len(s.states))
	for i, state := range s.states {
		states[i] = State{Name: state.Name, Cities: append([]string(nil), state.Cities...)}
	}
	return states
}

// GetState returns one state group by its exact name
func (s *Store) GetState(name string) (State, bool) {
	for _, state := range s.States() {
		if state.Name == name {
			return state, true
		}
	}
	return State{}, false
}

// CostOfLivingRatio returns index(a) / index(b). When either id is unknown
// it returns 1.0 instead of failing.
func (s *Store) CostOfLivingRatio(a, b string) float64 {
	cityA, okA := s.GetByID(a)
	cityB, okB := s.GetByID(b)
	if !okA || !okB {
		if !okA {
			s.miss("ratio", a)
		}
		if !okB {
			s.miss("ratio", b)
		}
		return 1
	}
	return cityA.ColIndex / cityB.ColIndex
}

// PurchasingPower scales salary by the city's index relative to the
// national average. An unknown id returns salary unchanged.
func (s *Store) PurchasingPower(salary float64, id string) float64 {
	city, ok := s.GetByID(id)
	if !ok {
		s.miss("purchasing_power", id)
		return salary
	}
	return (salary / city.ColIndex) * 100
}

func (s *Store) miss(op, id string) {
	if s.onMiss != nil {
		s.onMiss(op, id)
	}
}
