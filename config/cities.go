package config

import (
	"regexp"
	"strings"

	"costmap/server/internal/models"
)

// SupportedCities is the built-in city table. Figures are approximate
// monthly amounts in INR.
var SupportedCities = []models.CityRecord{
	{
		ID:        "mumbai",
		Name:      "Mumbai",
		State:     "Maharashtra",
		Latitude:  19.076,
		Longitude: 72.8777,
		CostProfile: models.CostProfile{
			ColIndex:      120,
			AverageSalary: 65000,
			Rent:          models.Rent{OneBHK: 25000, TwoBHK: 45000, ThreeBHK: 70000},
			Groceries:     models.Groceries{MilkLiter: 60, RiceKg: 70, EggsDozen: 90, BreadLoaf: 45, ChickenKg: 250},
			Utilities:     models.Utilities{Monthly: 3500, Internet: 1200},
			Transport:     models.Transport{BusTicket: 15, MonthlyPass: 1500, TaxiKm: 25, PetrolLiter: 108},
			Restaurant:    models.Restaurant{InexpensiveMeal: 300, MidRangeMeal: 2000, Cappuccino: 150},
		},
	},
	{
		ID:        "delhi",
		Name:      "Delhi",
		State:     "Delhi",
		Latitude:  28.7041,
		Longitude: 77.1025,
		CostProfile: models.CostProfile{
			ColIndex:      110,
			AverageSalary: 60000,
			Rent:          models.Rent{OneBHK: 18000, TwoBHK: 35000, ThreeBHK: 60000},
			Groceries:     models.Groceries{MilkLiter: 58, RiceKg: 65, EggsDozen: 85, BreadLoaf: 40, ChickenKg: 240},
			Utilities:     models.Utilities{Monthly: 3200, Internet: 1100},
			Transport:     models.Transport{BusTicket: 10, MonthlyPass: 1200, TaxiKm: 23, PetrolLiter: 105},
			Restaurant:    models.Restaurant{InexpensiveMeal: 250, MidRangeMeal: 1800, Cappuccino: 140},
		},
	},
	{
		ID:        "bangalore",
		Name:      "Bangalore",
		State:     "Karnataka",
		Latitude:  12.9716,
		Longitude: 77.5946,
		CostProfile: models.CostProfile{
			ColIndex:      115,
			AverageSalary: 70000,
			Rent:          models.Rent{OneBHK: 20000, TwoBHK: 35000, ThreeBHK: 55000},
			Groceries:     models.Groceries{MilkLiter: 55, RiceKg: 60, EggsDozen: 80, BreadLoaf: 40, ChickenKg: 230},
			Utilities:     models.Utilities{Monthly: 3000, Internet: 1000},
			Transport:     models.Transport{BusTicket: 15, MonthlyPass: 1300, TaxiKm: 22, PetrolLiter: 103},
			Restaurant:    models.Restaurant{InexpensiveMeal: 280, MidRangeMeal: 1800, Cappuccino: 160},
		},
	},
	{
		ID:        "hyderabad",
		Name:      "Hyderabad",
		State:     "Telangana",
		Latitude:  17.385,
		Longitude: 78.4867,
		CostProfile: models.CostProfile{
			ColIndex:      95,
			AverageSalary: 60000,
			Rent:          models.Rent{OneBHK: 15000, TwoBHK: 25000, ThreeBHK: 40000},
			Groceries:     models.Groceries{MilkLiter: 52, RiceKg: 55, EggsDozen: 75, BreadLoaf: 35, ChickenKg: 220},
			Utilities:     models.Utilities{Monthly: 2800, Internet: 950},
			Transport:     models.Transport{BusTicket: 12, MonthlyPass: 1100, TaxiKm: 20, PetrolLiter: 102},
			Restaurant:    models.Restaurant{InexpensiveMeal: 220, MidRangeMeal: 1500, Cappuccino: 130},
		},
	},
	{
		ID:        "chennai",
		Name:      "Chennai",
		State:     "Tamil Nadu",
		Latitude:  13.0827,
		Longitude: 80.2707,
		CostProfile: models.CostProfile{
			ColIndex:      90,
			AverageSalary: 55000,
			Rent:          models.Rent{OneBHK: 14000, TwoBHK: 25000, ThreeBHK: 40000},
			Groceries:     models.Groceries{MilkLiter: 50, RiceKg: 60, EggsDozen: 70, BreadLoaf: 35, ChickenKg: 210},
			Utilities:     models.Utilities{Monthly: 2500, Internet: 900},
			Transport:     models.Transport{BusTicket: 10, MonthlyPass: 1000, TaxiKm: 18, PetrolLiter: 101},
			Restaurant:    models.Restaurant{InexpensiveMeal: 200, MidRangeMeal: 1400, Cappuccino: 120},
		},
	},
	{
		ID:        "kolkata",
		Name:      "Kolkata",
		State:     "West Bengal",
		Latitude:  22.5726,
		Longitude: 88.3639,
		CostProfile: models.CostProfile{
			ColIndex:      80,
			AverageSalary: 45000,
			Rent:          models.Rent{OneBHK: 12000, TwoBHK: 20000, ThreeBHK: 35000},
			Groceries:     models.Groceries{MilkLiter: 48, RiceKg: 55, EggsDozen: 65, BreadLoaf: 30, ChickenKg: 200},
			Utilities:     models.Utilities{Monthly: 2300, Internet: 850},
			Transport:     models.Transport{BusTicket: 8, MonthlyPass: 800, TaxiKm: 15, PetrolLiter: 100},
			Restaurant:    models.Restaurant{InexpensiveMeal: 180, MidRangeMeal: 1200, Cappuccino: 100},
		},
	},
	{
		ID:        "pune",
		Name:      "Pune",
		State:     "Maharashtra",
		Latitude:  18.5204,
		Longitude: 73.8567,
		CostProfile: models.CostProfile{
			ColIndex:      105,
			AverageSalary: 55000,
			Rent:          models.Rent{OneBHK: 18000, TwoBHK: 30000, ThreeBHK: 45000},
			Groceries:     models.Groceries{MilkLiter: 55, RiceKg: 65, EggsDozen: 85, BreadLoaf: 40, ChickenKg: 240},
			Utilities:     models.Utilities{Monthly: 2800, Internet: 1000},
			Transport:     models.Transport{BusTicket: 12, MonthlyPass: 1100, TaxiKm: 20, PetrolLiter: 102},
			Restaurant:    models.Restaurant{InexpensiveMeal: 250, MidRangeMeal: 1600, Cappuccino: 130},
		},
	},
	{
		ID:        "ahmedabad",
		Name:      "Ahmedabad",
		State:     "Gujarat",
		Latitude:  23.0225,
		Longitude: 72.5714,
		CostProfile: models.CostProfile{
			ColIndex:      85,
			AverageSalary: 50000,
			Rent:          models.Rent{OneBHK: 13000, TwoBHK: 22000, ThreeBHK: 35000},
			Groceries:     models.Groceries{MilkLiter: 50, RiceKg: 58, EggsDozen: 75, BreadLoaf: 35, ChickenKg: 220},
			Utilities:     models.Utilities{Monthly: 2500, Internet: 900},
			Transport:     models.Transport{BusTicket: 10, MonthlyPass: 900, TaxiKm: 18, PetrolLiter: 100},
			Restaurant:    models.Restaurant{InexpensiveMeal: 200, MidRangeMeal: 1400, Cappuccino: 120},
		},
	},
	{
		ID:        "jaipur",
		Name:      "Jaipur",
		State:     "Rajasthan",
		Latitude:  26.9124,
		Longitude: 75.7873,
		CostProfile: models.CostProfile{
			ColIndex:      75,
			AverageSalary: 45000,
			Rent:          models.Rent{OneBHK: 10000, TwoBHK: 18000, ThreeBHK: 30000},
			Groceries:     models.Groceries{MilkLiter: 45, RiceKg: 50, EggsDozen: 65, BreadLoaf: 30, ChickenKg: 200},
			Utilities:     models.Utilities{Monthly: 2200, Internet: 800},
			Transport:     models.Transport{BusTicket: 8, MonthlyPass: 750, TaxiKm: 15, PetrolLiter: 100},
			Restaurant:    models.Restaurant{InexpensiveMeal: 170, MidRangeMeal: 1100, Cappuccino: 100},
		},
	},
	{
		ID:        "lucknow",
		Name:      "Lucknow",
		State:     "Uttar Pradesh",
		Latitude:  26.8467,
		Longitude: 80.9462,
		CostProfile: models.CostProfile{
			ColIndex:      70,
			AverageSalary: 40000,
			Rent:          models.Rent{OneBHK: 9000, TwoBHK: 15000, ThreeBHK: 25000},
			Groceries:     models.Groceries{MilkLiter: 45, RiceKg: 48, EggsDozen: 60, BreadLoaf: 28, ChickenKg: 190},
			Utilities:     models.Utilities{Monthly: 2000, Internet: 800},
			Transport:     models.Transport{BusTicket: 7, MonthlyPass: 700, TaxiKm: 14, PetrolLiter: 99},
			Restaurant:    models.Restaurant{InexpensiveMeal: 150, MidRangeMeal: 1000, Cappuccino: 90},
		},
	},
}

// GetCityNames returns a list of supported city ids
func GetCityNames() []string {
	names := make([]string, len(SupportedCities))
	for i, city := range SupportedCities {
		names[i] = city.ID
	}
	return names
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeCity turns a display name into a city id slug
func NormalizeCity(name string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}
