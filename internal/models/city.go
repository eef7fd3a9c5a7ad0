package models

// Rent holds monthly rents by apartment size
type Rent struct {
	OneBHK   float64 `json:"one_bhk"`
	TwoBHK   float64 `json:"two_bhk"`
	ThreeBHK float64 `json:"three_bhk"`
}

type Groceries struct {
	MilkLiter float64 `json:"milk_liter"`
	RiceKg    float64 `json:"rice_kg"`
	EggsDozen float64 `json:"eggs_dozen"`
	BreadLoaf float64 `json:"bread_loaf"`
	ChickenKg float64 `json:"chicken_kg"`
}

type Utilities struct {
	Monthly  float64 `json:"monthly"`
	Internet float64 `json:"internet"`
}

type Transport struct {
	BusTicket   float64 `json:"bus_ticket"`
	MonthlyPass float64 `json:"monthly_pass"`
	TaxiKm      float64 `json:"taxi_km"`
	PetrolLiter float64 `json:"petrol_liter"`
}

type Restaurant struct {
	InexpensiveMeal float64 `json:"inexpensive_meal"`
	MidRangeMeal    float64 `json:"mid_range_meal"`
	Cappuccino      float64 `json:"cappuccino"`
}

// CostProfile is the set of economic fields shared by a city and the
// national average. ColIndex is 100 for the national average.
type CostProfile struct {
	ColIndex      float64    `json:"col_index"`
	AverageSalary float64    `json:"average_salary"`
	Rent          Rent       `json:"rent"`
	Groceries     Groceries  `json:"groceries"`
	Utilities     Utilities  `json:"utilities"`
	Transport     Transport  `json:"transport"`
	Restaurant    Restaurant `json:"restaurant"`
}

// CityRecord represents one city's economic snapshot
type CityRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CostProfile
}

// Category groups line items the way the city panels display them
type Category string

const (
	CategoryHousing    Category = "housing"
	CategoryGroceries  Category = "groceries"
	CategoryUtilities  Category = "utilities"
	CategoryTransport  Category = "transport"
	CategoryRestaurant Category = "restaurant"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryHousing,
	CategoryGroceries,
	CategoryUtilities,
	CategoryTransport,
	CategoryRestaurant,
}

// Title returns the heading used for the category
func (c Category) Title() string {
	switch c {
	case CategoryHousing:
		return "Housing (Monthly Rent)"
	case CategoryGroceries:
		return "Groceries"
	case CategoryUtilities:
		return "Utilities"
	case CategoryTransport:
		return "Transportation"
	case CategoryRestaurant:
		return "Restaurants"
	default:
		return "Other"
	}
}

// LineItem is a single priced entry of a cost profile
type LineItem struct {
	Category Category `json:"category"`
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Value    float64  `json:"value"`
}

// LineItems returns every priced entry of the profile in display order.
// The order is fixed so two profiles can be paired index by index.
func (p CostProfile) LineItems() []LineItem {
	return []LineItem{
		{CategoryHousing, "rent.one_bhk", "1 BHK Apartment", p.Rent.OneBHK},
		{CategoryHousing, "rent.two_bhk", "2 BHK Apartment", p.Rent.TwoBHK},
		{CategoryHousing, "rent.three_bhk", "3 BHK Apartment", p.Rent.ThreeBHK},
		{CategoryGroceries, "groceries.milk_liter", "Milk (1 liter)", p.Groceries.MilkLiter},
		{CategoryGroceries, "groceries.rice_kg", "Rice (1 kg)", p.Groceries.RiceKg},
		{CategoryGroceries, "groceries.eggs_dozen", "Eggs (12)", p.Groceries.EggsDozen},
		{CategoryGroceries, "groceries.bread_loaf", "Bread (loaf)", p.Groceries.BreadLoaf},
		{CategoryGroceries, "groceries.chicken_kg", "Chicken (1 kg)", p.Groceries.ChickenKg},
		{CategoryUtilities, "utilities.monthly", "Basic (Electricity, Water, etc.)", p.Utilities.Monthly},
		{CategoryUtilities, "utilities.internet", "Internet (Broadband)", p.Utilities.Internet},
		{CategoryTransport, "transport.bus_ticket", "Bus Ticket (one-way)", p.Transport.BusTicket},
		{CategoryTransport, "transport.monthly_pass", "Monthly Pass", p.Transport.MonthlyPass},
		{CategoryTransport, "transport.taxi_km", "Taxi (per km)", p.Transport.TaxiKm},
		{CategoryTransport, "transport.petrol_liter", "Petrol (1 liter)", p.Transport.PetrolLiter},
		{CategoryRestaurant, "restaurant.inexpensive_meal", "Inexpensive Meal", p.Restaurant.InexpensiveMeal},
		{CategoryRestaurant, "restaurant.mid_range_meal", "Mid-range Meal (2 people)", p.Restaurant.MidRangeMeal},
		{CategoryRestaurant, "restaurant.cappuccino", "Cappuccino", p.Restaurant.Cappuccino},
	}
}

// Add returns the field-wise sum of two profiles
func (p CostProfile) Add(o CostProfile) CostProfile {
	return CostProfile{
		ColIndex:      p.ColIndex + o.ColIndex,
		AverageSalary: p.AverageSalary + o.AverageSalary,
		Rent: Rent{
			OneBHK:   p.Rent.OneBHK + o.Rent.OneBHK,
			TwoBHK:   p.Rent.TwoBHK + o.Rent.TwoBHK,
			ThreeBHK: p.Rent.ThreeBHK + o.Rent.ThreeBHK,
		},
		Groceries: Groceries{
			MilkLiter: p.Groceries.MilkLiter + o.Groceries.MilkLiter,
			RiceKg:    p.Groceries.RiceKg + o.Groceries.RiceKg,
			EggsDozen: p.Groceries.EggsDozen + o.Groceries.EggsDozen,
			BreadLoaf: p.Groceries.BreadLoaf + o.Groceries.BreadLoaf,
			ChickenKg: p.Groceries.ChickenKg + o.Groceries.ChickenKg,
		},
		Utilities: Utilities{
			Monthly:  p.Utilities.Monthly + o.Utilities.Monthly,
			Internet: p.Utilities.Internet + o.Utilities.Internet,
		},
		Transport: Transport{
			BusTicket:   p.Transport.BusTicket + o.Transport.BusTicket,
			MonthlyPass: p.Transport.MonthlyPass + o.Transport.MonthlyPass,
			TaxiKm:      p.Transport.TaxiKm + o.Transport.TaxiKm,
			PetrolLiter: p.Transport.PetrolLiter + o.Transport.PetrolLiter,
		},
		Restaurant: Restaurant{
			InexpensiveMeal: p.Restaurant.InexpensiveMeal + o.Restaurant.InexpensiveMeal,
			MidRangeMeal:    p.Restaurant.MidRangeMeal + o.Restaurant.MidRangeMeal,
			Cappuccino:      p.Restaurant.Cappuccino + o.Restaurant.Cappuccino,
		},
	}
}

// Scale multiplies every field by k
func (p CostProfile) Scale(k float64) CostProfile {
	return CostProfile{
		ColIndex:      p.ColIndex * k,
		AverageSalary: p.AverageSalary * k,
		Rent: Rent{
			OneBHK:   p.Rent.OneBHK * k,
			TwoBHK:   p.Rent.TwoBHK * k,
			ThreeBHK: p.Rent.ThreeBHK * k,
		},
		Groceries: Groceries{
			MilkLiter: p.Groceries.MilkLiter * k,
			RiceKg:    p.Groceries.RiceKg * k,
			EggsDozen: p.Groceries.EggsDozen * k,
			BreadLoaf: p.Groceries.BreadLoaf * k,
			ChickenKg: p.Groceries.ChickenKg * k,
		},
		Utilities: Utilities{
			Monthly:  p.Utilities.Monthly * k,
			Internet: p.Utilities.Internet * k,
		},
		Transport: Transport{
			BusTicket:   p.Transport.BusTicket * k,
			MonthlyPass: p.Transport.MonthlyPass * k,
			TaxiKm:      p.Transport.TaxiKm * k,
			PetrolLiter: p.Transport.PetrolLiter * k,
		},
		Restaurant: Restaurant{
			InexpensiveMeal: p.Restaurant.InexpensiveMeal * k,
			MidRangeMeal:    p.Restaurant.MidRangeMeal * k,
			Cappuccino:      p.Restaurant.Cappuccino * k,
		},
	}
}
