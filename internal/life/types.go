// Package life implements the life-progression engine: character
// creation, the yearly AgeUp pipeline, interactions, and every player
// action (school, jobs, business, investing, housing, crime).
package life

import (
	"errors"

	"github.com/talgya/mini-life/internal/dialogue"
	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

var (
	// ErrDeadCharacter is returned by any operation on a finished life.
	ErrDeadCharacter = errors.New("life: character is dead")
	// ErrNotFound is returned when a relationship or table entry does
	// not exist.
	ErrNotFound = errors.New("life: not found")
	// ErrRequirements is returned when the character does not meet an
	// action's requirements (age, education, smarts, money).
	ErrRequirements = errors.New("life: requirements not met")
)

// HousingType distinguishes living arrangements.
type HousingType uint8

const (
	HousingParents HousingType = iota
	HousingRent
	HousingOwn
)

// ExpenseTier grades a recurring expense line.
type ExpenseTier uint8

const (
	TierBasic ExpenseTier = iota
	TierAverage
	TierFancy
)

// SchoolStage tracks compulsory schooling.
type SchoolStage uint8

const (
	StageNone SchoolStage = iota
	StageElementary
	StageMiddle
	StageHighSchool
)

// Housing is the current living arrangement.
type Housing struct {
	Name           string      `json:"name"`
	Type           HousingType `json:"type"`
	MonthlyPayment int         `json:"monthly_payment"`
	Quality        int         `json:"quality"`
}

// Expenses holds the chosen tier per recurring expense line.
type Expenses struct {
	Food        ExpenseTier `json:"food"`
	Electricity ExpenseTier `json:"electricity"`
	Insurance   ExpenseTier `json:"insurance"`
}

// Subject is one graded school subject.
type Subject struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
	Emoji string `json:"emoji"`
}

// School is compulsory-school state (ages 5-18).
type School struct {
	Enrolled   bool        `json:"enrolled"`
	Stage      SchoolStage `json:"stage"`
	Grade      int         `json:"grade"`
	Subjects   []Subject   `json:"subjects"`
	Popularity int         `json:"popularity"`
	Club       string      `json:"club,omitempty"`
	Detentions int         `json:"detentions"`
}

// Job is current employment. Title empty means unemployed.
type Job struct {
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Salary          int     `json:"salary"`
	Years           int     `json:"years"`
	Performance     int     `json:"performance"`
	PromotionChance float64 `json:"promotion_chance"`
	BossRelation    int     `json:"boss_relation"`
	Satisfaction    int     `json:"satisfaction"`
}

func emptyJob() Job {
	return Job{Performance: 50, BossRelation: 50, Satisfaction: 50}
}

// Business is the owned-business state. Name empty means none.
type Business struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Icon           string `json:"icon"`
	MonthlyRevenue int    `json:"monthly_revenue"`
	MonthlyCost    int    `json:"monthly_cost"`
	Reputation     int    `json:"reputation"`
	MonthsOwned    int    `json:"months_owned"`
	TotalProfit    int    `json:"total_profit"`
	Workers        int    `json:"workers"`
	WorkerSalary   int    `json:"worker_salary"`
	MaxWorkers     int    `json:"max_workers"`
}

func emptyBusiness() Business {
	return Business{Icon: "💼", Reputation: 50, WorkerSalary: 800}
}

// Investment is one open holding.
type Investment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Icon          string  `json:"icon"`
	Amount        int     `json:"amount"`
	ReturnLo      int     `json:"return_lo"`
	ReturnHi      int     `json:"return_hi"`
	CurrentReturn float64 `json:"current_return"`
	YearsHeld     int     `json:"years_held"`
}

// Asset is an owned vehicle or property.
type Asset struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	PurchasePrice int    `json:"purchase_price"`
	CurrentValue  int    `json:"current_value"`
	Condition     int    `json:"condition"`
	Appreciation  int    `json:"appreciation"`
}

// Event is one line of the life log.
type Event struct {
	Age  int    `json:"age"`
	Text string `json:"text"`
}

// Effect is a stat-delta bundle plus a criminal-record delta.
type Effect struct {
	stats.Effects
	Criminal int `json:"criminal,omitempty"`
}

// Choice is one option of a pending choice event.
type Choice struct {
	Text    string `json:"text"`
	Effects Effect `json:"effects"`
}

// ChoiceEvent is a queued decision waiting for the player.
type ChoiceEvent struct {
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

// Game is the full snapshot of one life. AgeUp and the action methods
// copy before mutating, so callers may treat snapshots as immutable.
type Game struct {
	ID          string        `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Gender      person.Gender `json:"gender"`
	Country     string        `json:"country"`
	Age         int           `json:"age"`
	Alive       bool          `json:"alive"`
	DeathReason string        `json:"death_reason,omitempty"`

	Traits person.Traits `json:"traits"`
	Stats  stats.Block   `json:"stats"`
	Money  int           `json:"money"`
	Salary int           `json:"salary"`

	TotalEarned int `json:"total_earned"`
	TotalSpent  int `json:"total_spent"`

	Housing        Housing  `json:"housing"`
	Expenses       Expenses `json:"expenses"`
	AnnualExpenses int      `json:"annual_expenses"`

	School             School   `json:"school"`
	Education          []string `json:"education"`
	CurrentEducation   string   `json:"current_education,omitempty"`
	EducationYearsLeft int      `json:"education_years_left"`
	InSchool           bool     `json:"in_school"`
	GraduatedHS        bool     `json:"graduated_hs"`

	Job      Job      `json:"job"`
	Business Business `json:"business"`

	Investments []Investment `json:"investments"`
	Assets      []Asset      `json:"assets"`

	Relationships []person.Relationship `json:"relationships"`

	CriminalRecord int  `json:"criminal_record"`
	InJail         bool `json:"in_jail"`
	JailYearsLeft  int  `json:"jail_years_left"`

	Retired       bool `json:"retired"`
	RetirementAge int  `json:"retirement_age,omitempty"`

	Events        []Event      `json:"events"`
	Notifications []string     `json:"notifications,omitempty"`
	Pending       *ChoiceEvent `json:"pending,omitempty"`

	// Chat threads keyed by contact ID.
	Threads map[string]*dialogue.Thread `json:"threads,omitempty"`

	YearBorn int `json:"year_born"`
}

// log appends a life event at the current age.
func (g *Game) log(text string) {
	g.Events = append(g.Events, Event{Age: g.Age, Text: text})
}

func (g *Game) notify(text string) {
	g.Notifications = append(g.Notifications, text)
}

// apply folds an effect bundle into the snapshot: stats clamp, money
// and criminal record do not.
func (g *Game) apply(e Effect) {
	g.Money += int(g.Stats.Apply(e.Effects))
	g.CriminalRecord += e.Criminal
}

// relation finds a relationship by ID.
func (g *Game) relation(id string) (*person.Relationship, error) {
	for i := range g.Relationships {
		if g.Relationships[i].ID == id {
			return &g.Relationships[i], nil
		}
	}
	return nil, ErrNotFound
}

// Clone deep-copies the snapshot.
func (g *Game) Clone() *Game {
	next := *g
	next.Education = append([]string(nil), g.Education...)
	next.School.Subjects = append([]Subject(nil), g.School.Subjects...)
	next.Investments = append([]Investment(nil), g.Investments...)
	next.Assets = append([]Asset(nil), g.Assets...)
	next.Relationships = append([]person.Relationship(nil), g.Relationships...)
	next.Events = append([]Event(nil), g.Events...)
	next.Notifications = append([]string(nil), g.Notifications...)
	if g.Pending != nil {
		p := *g.Pending
		p.Choices = append([]Choice(nil), g.Pending.Choices...)
		next.Pending = &p
	}
	if g.Threads != nil {
		next.Threads = make(map[string]*dialogue.Thread, len(g.Threads))
		for id, t := range g.Threads {
			tc := *t
			tc.Messages = append([]dialogue.Message(nil), t.Messages...)
			tc.Topics = append([]string(nil), t.Topics...)
			next.Threads[id] = &tc
		}
	}
	return &next
}
