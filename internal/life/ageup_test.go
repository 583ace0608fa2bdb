package life

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/person"
)

// advance ages a life n years, skipping over pending choices.
func advance(t *testing.T, s *Sim, g *Game, n int) *Game {
	t.Helper()
	for i := 0; i < n && g.Alive; i++ {
		next, err := s.AgeUp(g)
		require.NoError(t, err)
		next.Pending = nil
		g = next
	}
	return g
}

func TestAgeUpIncrementsAge(t *testing.T) {
	s := newTestSim(1)
	g := s.NewGame("A", "B", person.Male, "United States")
	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Age)
	assert.Equal(t, 0, g.Age, "input snapshot must not change")
}

func TestAgeUpDeadCharacter(t *testing.T) {
	s := newTestSim(2)
	g := s.NewGame("A", "B", person.Male, "United States")
	g.Alive = false
	_, err := s.AgeUp(g)
	assert.ErrorIs(t, err, ErrDeadCharacter)
}

func TestAgeUpDoesNotMutateInput(t *testing.T) {
	s := newTestSim(3)
	g := s.NewGame("A", "B", person.Female, "Canada")
	before := len(g.Events)
	relBefore := g.Relationships[0].Age

	_, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Equal(t, before, len(g.Events))
	assert.Equal(t, relBefore, g.Relationships[0].Age)
}

func TestSchoolStartsAtFive(t *testing.T) {
	s := newTestSim(4)
	g := s.NewGame("A", "B", person.Male, "United States")
	g = advance(t, s, g, 5)

	require.True(t, g.Alive)
	assert.True(t, g.School.Enrolled)
	assert.Equal(t, StageElementary, g.School.Stage)
	assert.Len(t, g.School.Subjects, 4)

	classmates := 0
	for _, r := range g.Relationships {
		if r.Type == person.RelClassmate {
			classmates++
		}
	}
	assert.GreaterOrEqual(t, classmates, 4)
}

func TestHighSchoolStartsAtFourteen(t *testing.T) {
	s := newTestSim(5)
	g := s.NewGame("A", "B", person.Female, "Germany")
	g = advance(t, s, g, 14)

	require.True(t, g.Alive)
	assert.True(t, g.InSchool)
	assert.Equal(t, "high_school", g.CurrentEducation)
	// Enrollment and the first year of classes land in the same tick,
	// so three of the four years remain at 14 and graduation hits at 17.
	assert.Equal(t, 3, g.EducationYearsLeft)
	assert.Equal(t, StageHighSchool, g.School.Stage)
	assert.Len(t, g.School.Subjects, 6)
}

func TestHighSchoolGraduation(t *testing.T) {
	s := newTestSim(6)
	g := s.NewGame("A", "B", person.Male, "France")
	g = advance(t, s, g, 18)

	require.True(t, g.Alive)
	assert.True(t, g.GraduatedHS)
	assert.Contains(t, g.Education, "high_school")
	assert.False(t, g.InSchool)
}

func TestNoExpensesWhileAtParents(t *testing.T) {
	s := newTestSim(7)
	g := s.NewGame("A", "B", person.Male, "Italy")
	g.Age = 18
	g.Money = 5000
	next, err := s.AgeUp(g)
	require.NoError(t, err)
	// Living with the parents: expenses are computed but not charged.
	assert.Greater(t, next.AnnualExpenses, 0)
	assert.GreaterOrEqual(t, next.Money, 5000)
}

func TestExpensesChargedWhenRenting(t *testing.T) {
	s := newTestSim(8)
	g := s.NewGame("A", "B", person.Female, "Spain")
	g.Age = 25
	g.Money = 50000
	g.Housing = Housing{Name: "Studio Apartment", Type: HousingRent, MonthlyPayment: 800, Quality: 4}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Less(t, next.Money, 50000)
	assert.Greater(t, next.TotalSpent, 0)
}

func TestDebtCrisis(t *testing.T) {
	s := newTestSim(9)
	g := s.NewGame("A", "B", person.Male, "Mexico")
	g.Age = 30
	g.Money = -20000
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	happyBefore := g.Stats.Happiness

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Less(t, next.Stats.Happiness, happyBefore)
	assert.NotEmpty(t, next.Notifications)
}

func TestForcedEvictionAtThirty(t *testing.T) {
	s := newTestSim(10)
	g := s.NewGame("A", "B", person.Male, "India")
	g.Age = 29
	// Keep the parents alive so the eviction comes from age, not grief.
	for i := range g.Relationships {
		g.Relationships[i].Age = 40
	}
	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Equal(t, HousingRent, next.Housing.Type)
	assert.Equal(t, "Shared Room", next.Housing.Name)
}

func TestJobPaysSalary(t *testing.T) {
	s := newTestSim(11)
	g := s.NewGame("A", "B", person.Female, "Brazil")
	g.Age = 25
	g.Money = 0
	// Already renting, so the at-parents eviction roll never enters the
	// picture and the year's cash flow is salary minus rent and bills.
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	g.Job = Job{Title: "Cashier", Category: "retail", Salary: 20000, Performance: 50, BossRelation: 50}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	// $20k in, ~$12.8k of living costs out; a band event may shave a
	// little more off.
	assert.GreaterOrEqual(t, next.Money, 5000)
	assert.Equal(t, 1, next.Job.Years)
	assert.GreaterOrEqual(t, next.TotalEarned, 20000)
	assert.Greater(t, next.AnnualExpenses, 0)
}

func TestJailYearTicksDown(t *testing.T) {
	s := newTestSim(12)
	g := s.NewGame("A", "B", person.Male, "Japan")
	g.Age = 25
	g.InJail = true
	g.JailYearsLeft = 2

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.True(t, next.InJail)
	assert.Equal(t, 1, next.JailYearsLeft)

	next2, err := s.AgeUp(next)
	require.NoError(t, err)
	assert.False(t, next2.InJail)
	released := false
	for _, e := range next2.Events {
		if strings.Contains(e.Text, "Released from prison") {
			released = true
		}
	}
	assert.True(t, released)
}

func TestJailSuspendsSalary(t *testing.T) {
	s := newTestSim(13)
	g := s.NewGame("A", "B", person.Male, "Canada")
	g.Age = 30
	g.Money = 0
	g.InJail = true
	g.JailYearsLeft = 5
	g.Job = Job{Title: "Chef", Category: "food", Salary: 40000, Performance: 50, BossRelation: 50}
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Job.Years)
	assert.Equal(t, 0, next.TotalEarned)
}

func TestBusinessReputationCapWithoutWorkers(t *testing.T) {
	s := newTestSim(14)
	g := s.NewGame("A", "B", person.Female, "United Kingdom")
	g.Age = 30
	g.Money = 100000
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	g.Stats.Discipline = 90
	g.Stats.Smarts = 90
	g.Business = Business{
		Name: "Laundromat", Type: "Laundromat", Icon: "👕",
		MonthlyRevenue: 5000, MonthlyCost: 2000, Reputation: 99,
		WorkerSalary: 800, MaxWorkers: 3,
	}

	g = advance(t, s, g, 5)
	if g.Alive && g.Business.Name != "" {
		assert.LessOrEqual(t, g.Business.Reputation, 100)
	}
}

func TestInvestmentWipeoutRemoved(t *testing.T) {
	s := newTestSim(15)
	g := s.NewGame("A", "B", person.Male, "Australia")
	g.Age = 30
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	g.Money = 100000
	g.Investments = []Investment{
		// Guaranteed total loss every year.
		{ID: "inv-1", Name: "Cryptocurrency", Icon: "₿", Amount: 100, ReturnLo: -100, ReturnHi: -100},
	}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Empty(t, next.Investments)
}

func TestAssetsDepreciate(t *testing.T) {
	s := newTestSim(16)
	g := s.NewGame("A", "B", person.Female, "South Korea")
	g.Age = 30
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	g.Money = 10000
	g.Assets = []Asset{{
		ID: "a1", Name: "Used Honda Civic", Category: "vehicle",
		PurchasePrice: 8000, CurrentValue: 8000, Condition: 100, Appreciation: -8,
	}}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.Less(t, next.Assets[0].CurrentValue, 8000)
	assert.Less(t, next.Assets[0].Condition, 100)
}

func TestDeathAtZeroHealth(t *testing.T) {
	s := newTestSim(17)
	g := s.NewGame("A", "B", person.Male, "Egypt")
	g.Age = 50
	g.Stats.Health = 0
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}

	next, err := s.AgeUp(g)
	require.NoError(t, err)
	assert.False(t, next.Alive)
	assert.NotEmpty(t, next.DeathReason)
	assert.Nil(t, next.Pending)

	_, err = s.AgeUp(next)
	assert.ErrorIs(t, err, ErrDeadCharacter)
}

func TestEveryoneDiesEventually(t *testing.T) {
	s := newTestSim(18)
	g := s.NewGame("A", "B", person.Female, "Nigeria")
	g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
	g = advance(t, s, g, 200)
	assert.False(t, g.Alive)
	assert.LessOrEqual(t, g.Age, 121)
}

func TestChooseResolvesPending(t *testing.T) {
	s := newTestSim(19)
	g := s.NewGame("A", "B", person.Male, "Turkey")
	g.Pending = &ChoiceEvent{
		Text: "You found a wallet on the street with $500 in it.",
		Choices: []Choice{
			{Text: "Return it", Effects: eff(hap(8), ka(15))},
			{Text: "Keep the money", Effects: eff(ka(-10), money(500))},
		},
	}

	next, err := s.Choose(g, 1)
	require.NoError(t, err)
	assert.Nil(t, next.Pending)
	assert.Equal(t, 500, next.Money)

	_, err = s.Choose(next, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChooseBadIndex(t *testing.T) {
	s := newTestSim(20)
	g := s.NewGame("A", "B", person.Male, "Kenya")
	g.Pending = &ChoiceEvent{Text: "x", Choices: []Choice{{Text: "only"}}}
	_, err := s.Choose(g, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0", formatMoney(0))
	assert.Equal(t, "$1,234", formatMoney(1234))
	assert.Equal(t, "-$5,000,000", formatMoney(-5000000))
}
