package life

// Static gameplay tables: the jobs board, asset catalogs, rentals,
// recurring expense tiers, activities, crimes, education paths, school
// clubs, business types, and investment instruments.

// JobRequirements gates an opening on the jobs board. Zero values mean
// no requirement; Education is an education-path key.
type JobRequirements struct {
	Age       int    `json:"age,omitempty"`
	Smarts    int    `json:"smarts,omitempty"`
	Looks     int    `json:"looks,omitempty"`
	Health    int    `json:"health,omitempty"`
	Education string `json:"education,omitempty"`
}

// JobOpening is one row of the jobs board.
type JobOpening struct {
	Title        string          `json:"title"`
	Salary       int             `json:"salary"`
	Requirements JobRequirements `json:"requirements"`
	Category     string          `json:"category"`
	StressLevel  int             `json:"stress_level"`
}

// Jobs is the full jobs board.
var Jobs = []JobOpening{
	{"Fast Food Worker", 18000, JobRequirements{Age: 16}, "food", 30},
	{"Cashier", 20000, JobRequirements{Age: 16}, "retail", 25},
	{"Dog Walker", 15000, JobRequirements{Age: 14}, "animals", 10},
	{"Janitor", 22000, JobRequirements{Age: 18}, "maintenance", 20},
	{"Warehouse Worker", 28000, JobRequirements{Age: 18}, "labor", 40},
	{"Gas Station Attendant", 19000, JobRequirements{Age: 16}, "retail", 20},
	{"Landscaper", 25000, JobRequirements{Age: 18}, "labor", 35},
	{"Grocery Bagger", 16000, JobRequirements{Age: 14}, "retail", 15},
	{"Office Assistant", 30000, JobRequirements{Age: 18, Education: "high_school"}, "office", 25},
	{"Security Guard", 32000, JobRequirements{Age: 18, Education: "high_school"}, "security", 35},
	{"Mechanic", 38000, JobRequirements{Age: 18, Education: "high_school", Smarts: 30}, "trades", 30},
	{"Electrician", 42000, JobRequirements{Age: 18, Education: "high_school", Smarts: 35}, "trades", 30},
	{"Bank Teller", 30000, JobRequirements{Age: 18, Education: "high_school", Smarts: 40}, "finance", 25},
	{"Receptionist", 28000, JobRequirements{Age: 18, Education: "high_school"}, "office", 20},
	{"Construction Worker", 36000, JobRequirements{Age: 18, Education: "high_school"}, "labor", 45},
	{"Firefighter", 45000, JobRequirements{Age: 18, Education: "high_school", Health: 50}, "emergency", 60},
	{"Police Officer", 48000, JobRequirements{Age: 21, Education: "high_school", Health: 40}, "law", 65},
	{"Accountant", 55000, JobRequirements{Age: 22, Education: "college", Smarts: 50}, "finance", 40},
	{"Marketing Specialist", 52000, JobRequirements{Age: 22, Education: "college", Smarts: 40}, "business", 35},
	{"Software Developer", 80000, JobRequirements{Age: 22, Education: "college", Smarts: 60}, "tech", 45},
	{"Teacher", 45000, JobRequirements{Age: 22, Education: "college", Smarts: 45}, "education", 50},
	{"Nurse", 60000, JobRequirements{Age: 22, Education: "college", Smarts: 50}, "medical", 55},
	{"Graphic Designer", 48000, JobRequirements{Age: 22, Education: "college", Smarts: 35}, "creative", 30},
	{"Engineer", 75000, JobRequirements{Age: 22, Education: "college", Smarts: 65}, "engineering", 45},
	{"Financial Analyst", 68000, JobRequirements{Age: 22, Education: "college", Smarts: 55}, "finance", 50},
	{"Real Estate Agent", 50000, JobRequirements{Age: 22, Education: "college", Looks: 30}, "sales", 40},
	{"Architect", 65000, JobRequirements{Age: 22, Education: "college", Smarts: 60}, "creative", 40},
	{"Lawyer", 95000, JobRequirements{Age: 25, Education: "grad_school", Smarts: 70}, "law", 70},
	{"Doctor", 150000, JobRequirements{Age: 26, Education: "med_school", Smarts: 80}, "medical", 75},
	{"Surgeon", 250000, JobRequirements{Age: 30, Education: "med_school", Smarts: 90}, "medical", 85},
	{"Professor", 85000, JobRequirements{Age: 28, Education: "grad_school", Smarts: 75}, "education", 40},
	{"Data Scientist", 110000, JobRequirements{Age: 24, Education: "grad_school", Smarts: 70}, "tech", 45},
	{"Investment Banker", 130000, JobRequirements{Age: 24, Education: "grad_school", Smarts: 75}, "finance", 80},
	{"Dentist", 120000, JobRequirements{Age: 26, Education: "med_school", Smarts: 65}, "medical", 40},
	{"Actor", 35000, JobRequirements{Age: 18, Looks: 50}, "entertainment", 40},
	{"Model", 40000, JobRequirements{Age: 18, Looks: 70}, "entertainment", 35},
	{"Professional Athlete", 80000, JobRequirements{Age: 18, Health: 80}, "sports", 50},
	{"Chef", 40000, JobRequirements{Age: 18, Education: "high_school"}, "food", 50},
	{"Pilot", 90000, JobRequirements{Age: 23, Education: "college", Smarts: 60, Health: 50}, "aviation", 45},
}

// CatalogAsset is a purchasable vehicle or property.
type CatalogAsset struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Cost         int    `json:"cost"`
	Appreciation int    `json:"appreciation"`
}

// Vehicles catalog. Condition starts at 100 on purchase.
var Vehicles = []CatalogAsset{
	{"Used Honda Civic", "vehicle", 8000, -8},
	{"Used Toyota Corolla", "vehicle", 7500, -8},
	{"Ford Focus", "vehicle", 18000, -12},
	{"Honda Accord", "vehicle", 25000, -10},
	{"Toyota Camry", "vehicle", 27000, -10},
	{"BMW 3 Series", "vehicle", 42000, -15},
	{"Mercedes C-Class", "vehicle", 45000, -15},
	{"Tesla Model 3", "vehicle", 40000, -12},
	{"Porsche 911", "vehicle", 100000, -8},
	{"Ferrari 488", "vehicle", 280000, -5},
	{"Lamborghini Huracán", "vehicle", 260000, -5},
	{"Ford F-150", "vehicle", 35000, -10},
	{"Jeep Wrangler", "vehicle", 32000, -5},
	{"Motorcycle", "vehicle", 8000, -10},
}

// Properties catalog.
var Properties = []CatalogAsset{
	{"Studio Apartment", "property", 80000, 3},
	{"1-Bedroom Condo", "property", 150000, 3},
	{"2-Bedroom Apartment", "property", 200000, 3},
	{"Small House", "property", 250000, 4},
	{"Suburban Home", "property", 350000, 4},
	{"Large Family Home", "property", 500000, 4},
	{"Luxury Condo", "property", 800000, 5},
	{"Beach House", "property", 1200000, 5},
	{"Mansion", "property", 3000000, 5},
	{"Penthouse", "property", 5000000, 6},
}

// RentalOption is one row of the housing market.
type RentalOption struct {
	Name        string `json:"name"`
	MonthlyCost int    `json:"monthly_cost"`
	Quality     int    `json:"quality"`
}

// Rentals lists the rentable housing options. "Parents' House" is only
// reachable at birth; eviction never reverses.
var Rentals = []RentalOption{
	{"Parents' House", 0, 3},
	{"Shared Room", 400, 2},
	{"Studio Apartment", 800, 4},
	{"1-Bedroom Apt", 1200, 5},
	{"2-Bedroom Apt", 1600, 6},
	{"Nice House Rental", 2200, 7},
	{"Luxury Apartment", 3500, 9},
}

// Monthly expense schedules per tier, plus the fixed lines.
var (
	foodCosts        = [3]int{200, 400, 800}
	electricityCosts = [3]int{80, 150, 300}
	insuranceCosts   = [3]int{100, 200, 400}
)

const (
	phoneCost          = 80
	internetCost       = 60
	transportationCost = 150
)

// Activity is a repeatable pastime with stat effects.
type Activity struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Effects  Effect `json:"effects"`
	Cost     int    `json:"cost"`
	MinAge   int    `json:"min_age"`
}

// Activities is the full pastime catalog.
var Activities = []Activity{
	{"Go to the Gym", "💪", "fitness", eff(hap(5), hp(8), lk(3)), 0, 12},
	{"Go for a Run", "🏃", "fitness", eff(hap(3), hp(5)), 0, 8},
	{"Yoga", "🧘", "fitness", eff(hap(8), hp(5)), 20, 14},
	{"Martial Arts", "🥋", "fitness", eff(hap(5), hp(8), dis(5)), 50, 6},
	{"Read a Book", "📚", "education", eff(hap(3), sm(5)), 0, 6},
	{"Study", "📖", "education", eff(hap(-3), sm(8), dis(3)), 0, 6},
	{"Learn Instrument", "🎸", "hobby", eff(hap(5), sm(3)), 30, 6},
	{"Watch TV", "📺", "leisure", eff(hap(5), sm(-2)), 0, 3},
	{"Play Video Games", "🎮", "leisure", eff(hap(8), hp(-2)), 0, 5},
	{"Go to Movies", "🎬", "leisure", eff(hap(8)), 15, 5},
	{"Go to Concert", "🎵", "social", eff(hap(12)), 80, 14},
	{"Party", "🎉", "social", eff(hap(10), hp(-5), pop(5)), 30, 16},
	{"Volunteer", "🤝", "social", eff(hap(5), ka(12)), 0, 12},
	{"Meditate", "🧠", "leisure", eff(hap(8), hp(3)), 0, 10},
	{"Travel", "✈️", "leisure", eff(hap(15), sm(3)), 2000, 18},
	{"Go to a Bar", "🍺", "vice", eff(hap(5), hp(-5), lk(-2)), 40, 21},
	{"Go to the Spa", "💆", "leisure", eff(hap(10), hp(3), lk(5)), 100, 16},
	{"Go on a Diet", "🥗", "fitness", eff(hap(-5), hp(5), lk(5)), 0, 14},
	{"Take a Vacation", "🏖️", "leisure", eff(hap(20), hp(5)), 3000, 18},
	{"Gambling", "🎰", "vice", eff(hap(3), ka(-3)), 100, 21},
	{"Gardening", "🌱", "hobby", eff(hap(8), hp(3), ka(3)), 50, 10},
	{"Photography", "📷", "hobby", eff(hap(8), sm(3)), 30, 12},
	{"Cooking Class", "👨‍🍳", "hobby", eff(hap(8), sm(5)), 100, 16},
	{"Painting", "🎨", "hobby", eff(hap(10), sm(3)), 50, 8},
	{"Fishing", "🎣", "hobby", eff(hap(8), hp(3)), 20, 8},
	{"Host a Dinner Party", "🍽️", "social", eff(hap(12), pop(8), ka(3)), 200, 22},
	{"Join a Sports League", "⚽", "fitness", eff(hap(8), hp(10), pop(5)), 100, 18},
	{"Start a Podcast", "🎙️", "hobby", eff(pop(8), sm(3), money(500)), 200, 18},
	{"Learn to Code", "💻", "education", eff(sm(10), money(1000)), 200, 14},
	{"Wine Tasting", "🍷", "social", eff(hap(8), lk(2), pop(3)), 80, 21},
	{"Therapy Session", "🛋️", "leisure", eff(hap(15), hp(5)), 150, 16},
}

// Crime is one entry of the crime table.
type Crime struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	SuccessRate float64 `json:"success_rate"`
	Reward      int     `json:"reward"`
	JailYears   int     `json:"jail_years"`
	Effects     Effect  `json:"effects"`
}

// Crimes, ordered by escalating stakes. Shoplifting rounds its jail
// term up to a year.
var Crimes = []Crime{
	{"Shoplift", "🛒", 0.7, 50, 1, eff(ka(-5), crim(1))},
	{"Pick Pocket", "👛", 0.5, 200, 1, eff(ka(-8), crim(2))},
	{"Burglary", "🏠", 0.35, 5000, 3, eff(ka(-15), crim(5))},
	{"Grand Theft Auto", "🚗", 0.25, 15000, 5, eff(ka(-20), crim(8))},
	{"Rob a Bank", "🏦", 0.1, 100000, 15, eff(ka(-30), crim(15))},
	{"Tax Fraud", "📄", 0.4, 20000, 4, eff(ka(-12), crim(6))},
	{"Insurance Fraud", "📋", 0.45, 15000, 3, eff(ka(-15), crim(5))},
}

// EducationPath is one enrollable program.
type EducationPath struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	Cost      int    `json:"cost"`
	SmartsReq int    `json:"smarts_req"`
}

// EducationPaths, keyed by the requirement strings on the jobs board.
var EducationPaths = []EducationPath{
	{"high_school", "High School", 4, 0, 0},
	{"community_college", "Community College", 2, 10000, 25},
	{"college", "University", 4, 40000, 40},
	{"grad_school", "Graduate School", 2, 30000, 60},
	{"med_school", "Medical School", 4, 80000, 75},
	{"law_school", "Law School", 3, 60000, 65},
}

// SchoolClub is a joinable extracurricular.
type SchoolClub struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Benefit string `json:"benefit"`
	MinAge  int    `json:"min_age"`
}

var SchoolClubs = []SchoolClub{
	{"Chess Club", "♟️", "+Smarts", 6},
	{"Art Club", "🎨", "+Creativity", 6},
	{"Drama Club", "🎭", "+Popularity", 10},
	{"Science Club", "🔬", "+Smarts", 10},
	{"Sports Team", "⚽", "+Fitness", 8},
	{"Music Band", "🎵", "+Happiness", 10},
	{"Debate Team", "🗣️", "+Smarts +Pop", 12},
	{"Student Council", "🏛️", "+Discipline", 12},
	{"Coding Club", "💻", "+Smarts", 12},
	{"Robotics Team", "🤖", "+Smarts", 14},
	{"Track & Field", "🏃", "+Fitness", 10},
}

// BusinessType is one foundable business.
type BusinessType struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	StartupCost int    `json:"startup_cost"`
	RevenueLo   int    `json:"revenue_lo"`
	RevenueHi   int    `json:"revenue_hi"`
	MonthlyCost int    `json:"monthly_cost"`
	RiskLevel   int    `json:"risk_level"`
	SmartsReq   int    `json:"smarts_req"`
}

var BusinessTypes = []BusinessType{
	{"Food Truck", "🚚", 30000, 3000, 8000, 2000, 40, 25},
	{"Online Store", "🛍️", 5000, 500, 5000, 300, 30, 35},
	{"Restaurant", "🍕", 100000, 8000, 25000, 12000, 60, 40},
	{"Tech Startup", "💻", 50000, 0, 50000, 8000, 80, 65},
	{"Gym", "🏋️", 80000, 5000, 15000, 5000, 45, 30},
	{"Laundromat", "👕", 40000, 3000, 7000, 2000, 20, 20},
	{"Real Estate Agency", "🏘️", 60000, 5000, 30000, 5000, 50, 50},
	{"Consulting Firm", "📊", 20000, 5000, 20000, 3000, 35, 60},
}

// InvestmentType is one available instrument. Return ranges are annual
// percents; both ends may be negative.
type InvestmentType struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MinInvest int    `json:"min_invest"`
	ReturnLo  int    `json:"return_lo"`
	ReturnHi  int    `json:"return_hi"`
	RiskLevel string `json:"risk_level"`
}

var InvestmentTypes = []InvestmentType{
	{"Savings Account", "🏦", 100, 1, 3, "Low"},
	{"Bonds", "📜", 1000, 2, 6, "Low"},
	{"Index Fund", "📈", 500, -5, 15, "Medium"},
	{"Individual Stocks", "📊", 100, -30, 40, "High"},
	{"Real Estate Fund", "🏠", 5000, -10, 20, "Medium"},
	{"Cryptocurrency", "₿", 50, -50, 100, "Very High"},
}
