package life

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mini-life/internal/economy"
	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

// formatMoney renders a dollar amount with thousands separators.
func formatMoney(amount int) string {
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}

// AgeUp advances a life by one year through the full phase pipeline.
// The input snapshot is not modified; the returned snapshot reflects
// the new year. Phase order is part of the contract: housing pressure
// runs before relationship aging, so a parent death can trigger a
// second, independent eviction in the same year.
func (s *Sim) AgeUp(g *Game) (*Game, error) {
	if !g.Alive {
		return nil, ErrDeadCharacter
	}
	next := g.Clone()
	next.Age++
	next.Notifications = nil

	s.housingPressure(next)
	s.settleExpenses(next)
	s.ageRelationships(next)
	s.progressSchool(next)
	s.progressEducation(next)
	s.serveJail(next)
	s.workJob(next)
	s.runBusiness(next)
	s.compoundInvestments(next)
	s.depreciateAssets(next)
	s.rollAgeBandEvents(next)
	s.considerRetirement(next)
	s.decayStats(next)
	s.checkDeath(next)

	// Ambient jitter runs even on a death year.
	stats.Add(&next.Stats.Happiness, s.between(-3, 3))
	stats.Add(&next.Stats.Health, s.between(-2, 2))

	if next.Alive {
		s.queueChoiceEvent(next)
	} else {
		next.Pending = nil
	}

	s.logger.Debug("aged up",
		"life", next.ID, "age", next.Age, "alive", next.Alive,
		"money", next.Money, "health", next.Stats.Health)
	return next, nil
}

func (s *Sim) housingPressure(g *Game) {
	if g.Housing.Type != HousingParents {
		return
	}
	if g.Age >= 20 && g.Age < 25 && s.chance(0.4) {
		g.log("Your parents suggest it's time to find your own place. 🏠")
		g.notify("Your parents want you to move out soon!")
	}
	// Eviction odds ramp from 30% at 25 to certain at 30.
	if g.Age >= 25 {
		kickChance := 0.3 + float64(g.Age-25)*0.15
		if g.Age >= 30 || s.chance(kickChance) {
			g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
			g.log(`🚪 Your parents kicked you out! "You're too old to live here anymore!" You moved into a shared room.`)
			g.notify("Your parents kicked you out! You now pay rent.")
			stats.Add(&g.Stats.Happiness, -10)
		}
	}
}

func annualExpenses(g *Game) int {
	monthly := g.Housing.MonthlyPayment +
		foodCosts[g.Expenses.Food] +
		electricityCosts[g.Expenses.Electricity] +
		insuranceCosts[g.Expenses.Insurance] +
		phoneCost + internetCost + transportationCost
	return monthly * 12
}

func (s *Sim) settleExpenses(g *Game) {
	if g.Age < 18 {
		return
	}
	g.AnnualExpenses = annualExpenses(g)
	if g.Housing.Type != HousingParents {
		g.Money -= g.AnnualExpenses
		g.TotalSpent += g.AnnualExpenses
		g.log(fmt.Sprintf("💸 Annual expenses: %s (Rent: %s, Food, Bills, etc.)",
			formatMoney(g.AnnualExpenses), formatMoney(g.Housing.MonthlyPayment*12)))

		if g.Housing.Quality >= 7 {
			stats.Add(&g.Stats.Happiness, 3)
		} else if g.Housing.Quality <= 3 {
			stats.Add(&g.Stats.Happiness, -3)
		}
		if g.Expenses.Food == TierFancy {
			stats.Add(&g.Stats.Health, 2)
		}
		if g.Expenses.Food == TierBasic {
			stats.Add(&g.Stats.Health, -1)
		}
	}

	// Debt stress applies even while living rent-free.
	if g.Money < -10000 {
		stats.Add(&g.Stats.Happiness, -15)
		stats.Add(&g.Stats.Health, -5)
		g.log("⚠️ You're drowning in debt! Stress is taking a toll.")
		g.notify("You're deeply in debt!")
	} else if g.Money < 0 {
		stats.Add(&g.Stats.Happiness, -5)
		g.notify("You're in debt! Find more income.")
	}
}

func (s *Sim) ageRelationships(g *Game) {
	for i := range g.Relationships {
		r := &g.Relationships[i]
		r.Age++
		if r.Type == person.RelParent && r.Alive && r.Age > 65 && s.chance(float64(r.Age-65)*0.03) {
			r.Alive = false
			g.log(fmt.Sprintf("%s passed away at age %d. 💀", r.Name, r.Age))
			g.notify(fmt.Sprintf("%s has passed away.", r.Name))
			stats.Add(&g.Stats.Happiness, -20)
			if g.Housing.Type == HousingParents && !anyAliveParent(g, r.ID) {
				g.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
				g.notify("You need to find your own place now.")
			}
		}
		if r.Alive {
			r.Level = stats.Clamp(r.Level + s.between(-5, 3))
		}
	}
}

func anyAliveParent(g *Game, exceptID string) bool {
	for _, r := range g.Relationships {
		if r.Type == person.RelParent && r.Alive && r.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Sim) newSubject(name, emoji string) Subject {
	return Subject{Name: name, Grade: 70 + s.between(-10, 10), Emoji: emoji}
}

// carrySubject keeps a grade across a school transition, defaulting to
// 70 when the slot did not exist.
func carrySubject(subjects []Subject, idx int, name, emoji string) Subject {
	grade := 70
	if idx < len(subjects) {
		grade = subjects[idx].Grade
	}
	return Subject{Name: name, Grade: grade, Emoji: emoji}
}

func (s *Sim) progressSchool(g *Game) {
	switch g.Age {
	case 5:
		g.School.Enrolled = true
		g.School.Stage = StageElementary
		g.School.Subjects = []Subject{
			s.newSubject("Reading", "📖"),
			s.newSubject("Math", "🔢"),
			s.newSubject("Art", "🎨"),
			s.newSubject("Science", "🔬"),
		}
		g.Relationships = append(g.Relationships, s.gen.NewPeers(person.RelClassmate, 4, g.Age)...)
		g.log("Started elementary school! 🏫")
	case 11:
		g.School.Stage = StageMiddle
		g.School.Subjects = []Subject{
			carrySubject(g.School.Subjects, 0, "English", "📝"),
			carrySubject(g.School.Subjects, 1, "Math", "📐"),
			s.newSubject("Science", "🧪"),
			s.newSubject("History", "📜"),
			s.newSubject("PE", "⚽"),
		}
		g.Relationships = append(g.Relationships, s.gen.NewPeers(person.RelClassmate, 3, g.Age)...)
		g.log("Started middle school! 🏫")
	case 14:
		g.School.Stage = StageHighSchool
		g.InSchool = true
		g.CurrentEducation = "high_school"
		g.EducationYearsLeft = 4
		g.School.Subjects = []Subject{
			carrySubject(g.School.Subjects, 0, "English", "📝"),
			carrySubject(g.School.Subjects, 1, "Algebra", "📐"),
			s.newSubject("Chemistry", "⚗️"),
			carrySubject(g.School.Subjects, 3, "History", "🏛️"),
			carrySubject(g.School.Subjects, 4, "PE", "🏋️"),
			s.newSubject("Elective", "🎭"),
		}
		g.Relationships = append(g.Relationships, s.gen.NewPeers(person.RelClassmate, 4, g.Age)...)
		g.log("Started High School! 🏫")
	}

	if !g.School.Enrolled || g.Age < 5 || g.Age >= 18 {
		return
	}

	bias := 0
	if g.Stats.Smarts > 60 {
		bias = 2
	} else if g.Stats.Smarts < 30 {
		bias = -2
	}
	sum := 0
	for i := range g.School.Subjects {
		sub := &g.School.Subjects[i]
		sub.Grade = stats.Clamp(sub.Grade + s.between(-3, 3) + bias)
		sum += sub.Grade
	}
	if n := len(g.School.Subjects); n > 0 {
		g.School.Grade = int(math.Round(float64(sum) / float64(n)))
	}

	classmateActions := []string{"talked to you", "waved at you", "sat with you at lunch", "invited you to hang out"}
	for i := range g.Relationships {
		r := &g.Relationships[i]
		if r.Type != person.RelClassmate || !r.Alive {
			continue
		}
		if s.chance(0.15) && r.Traits.Friendliness > 50 {
			g.log(fmt.Sprintf("%s %s. 😊", r.Name, s.pick(classmateActions)))
			r.Level = stats.Clamp(r.Level + s.between(1, 4))
		}
	}
}

func educationName(key string) string {
	for _, p := range EducationPaths {
		if p.Key == key {
			return p.Name
		}
	}
	return key
}

func (s *Sim) progressEducation(g *Game) {
	if !g.InSchool || g.CurrentEducation == "" {
		return
	}
	g.EducationYearsLeft--
	stats.Add(&g.Stats.Smarts, s.between(1, 4))

	if g.CurrentEducation != "high_school" && g.EducationYearsLeft > 0 {
		var schoolmates []*person.Relationship
		for i := range g.Relationships {
			r := &g.Relationships[i]
			if r.Type == person.RelSchoolmate && r.Alive {
				schoolmates = append(schoolmates, r)
			}
		}
		if len(schoolmates) > 0 && s.chance(0.3) {
			mate := schoolmates[s.between(0, len(schoolmates)-1)]
			actions := []string{
				"studied with you at the library", "invited you for coffee", "asked for notes",
				"joined you for lunch", "wanted to form a study group",
			}
			g.log(fmt.Sprintf("%s %s. 📚", mate.Name, s.pick(actions)))
			mate.Level = stats.Clamp(mate.Level + s.between(2, 6))
			stats.Add(&g.Stats.Happiness, s.between(1, 5))
		}
	}

	if g.EducationYearsLeft <= 0 {
		g.Education = append(g.Education, g.CurrentEducation)
		g.InSchool = false
		name := educationName(g.CurrentEducation)
		g.log(fmt.Sprintf("Graduated from %s! 🎓", name))
		g.notify(fmt.Sprintf("You graduated from %s!", name))
		stats.Add(&g.Stats.Happiness, 10)
		if g.CurrentEducation == "high_school" {
			g.GraduatedHS = true
			g.School.Enrolled = false
			g.School.Stage = StageNone
		}
		g.CurrentEducation = ""
	}
}

func (s *Sim) serveJail(g *Game) {
	if !g.InJail {
		return
	}
	g.JailYearsLeft--
	stats.Add(&g.Stats.Happiness, -10)
	stats.Add(&g.Stats.Health, -3)
	if g.JailYearsLeft <= 0 {
		g.InJail = false
		g.log("Released from prison! 🔓")
		g.notify("You have been released from prison!")
		stats.Add(&g.Stats.Happiness, 15)
	}
}

func (s *Sim) workJob(g *Game) {
	if g.Job.Title == "" || g.InJail {
		return
	}
	g.Money += g.Job.Salary
	g.TotalEarned += g.Job.Salary
	g.Job.Years++

	var perfBonus float64
	switch {
	case g.Job.Performance > 80:
		perfBonus = 0.05
	case g.Job.Performance > 60:
		perfBonus = 0.02
	case g.Job.Performance < 30:
		perfBonus = -0.03
	}
	if perfBonus > 0 && s.chance(0.3) {
		change := int(math.Floor(float64(g.Job.Salary) * perfBonus))
		g.Job.Salary += change
		g.Salary = g.Job.Salary
		g.log(fmt.Sprintf("Performance raise! +%s/yr 💰", formatMoney(change)))
	}

	g.Job.PromotionChance = math.Min(100,
		float64(g.Job.Years*5)+float64(g.Job.Performance)/5+float64(g.Stats.Smarts)/10)

	// Independent tenure raise; a good year can double up with the
	// performance raise above.
	if s.chance(0.1) && g.Job.Years > 1 {
		raise := g.Job.Salary * s.between(3, 10) / 100
		g.Job.Salary += raise
		g.Salary = g.Job.Salary
		g.log(fmt.Sprintf("Got a raise! +%s/yr 💰", formatMoney(raise)))
	}

	perfBias := -1
	if g.Job.Performance > 70 {
		perfBias = 2
	}
	g.Job.BossRelation = stats.Clamp(g.Job.BossRelation + s.between(-3, 3) + perfBias)

	salaryFloor := 100
	if g.Job.Salary < 30000 {
		salaryFloor = 50
	}
	g.Job.Satisfaction = int(math.Round(
		float64(g.Job.Performance)*0.3 +
			float64(g.Job.BossRelation)*0.2 +
			float64(g.Stats.Happiness)*0.2 +
			float64(salaryFloor)*0.3))

	if g.Job.Performance < 15 && s.chance(0.3) {
		g.log(fmt.Sprintf("Got fired from %s! 😤", g.Job.Title))
		g.notify("You were fired from your job!")
		g.Job = emptyJob()
		g.Salary = 0
		stats.Add(&g.Stats.Happiness, -15)
	}
}

func (s *Sim) runBusiness(g *Game) {
	if g.Business.Name == "" {
		return
	}
	b := &g.Business
	b.MonthsOwned += 12

	repFactor := float64(b.Reputation) / 100
	smartsFactor := float64(g.Stats.Smarts) / 100
	workerBoost := 1 + float64(b.Workers)*0.15
	workerFlat := b.Workers * 500 * 12
	annualRev := float64(b.MonthlyRevenue*12)*repFactor*(0.5+smartsFactor*0.5)*workerBoost + float64(workerFlat)
	annualCost := float64(b.MonthlyCost * 12)
	profit := int(math.Floor(annualRev - annualCost))
	g.Money += profit
	b.TotalProfit += profit
	if profit > 0 {
		g.TotalEarned += profit
	}

	// Workers raise both the reputation cap and its growth, and soak
	// up losses.
	repCap := 100 + b.Workers*5
	clampRep := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > repCap {
			return repCap
		}
		return v
	}
	switch {
	case g.Stats.Discipline > 60 && g.Stats.Smarts > 50:
		gain := s.between(2, 8+b.Workers*3)
		b.Reputation = clampRep(b.Reputation + gain)
		if b.Workers > 0 && gain > 5 {
			g.notify(fmt.Sprintf("Your %d worker(s) helped grow your business reputation! 📈", b.Workers))
		}
	case g.Stats.Discipline < 30:
		protection := b.Workers
		if protection > 5 {
			protection = 5
		}
		loss := s.between(1, 4) - protection
		if loss < 0 {
			loss = 0
		}
		b.Reputation = clampRep(b.Reputation - loss)
	default:
		b.Reputation = clampRep(b.Reputation + s.between(1, 2+b.Workers))
	}
	if b.Workers == 0 && b.Reputation > 100 {
		b.Reputation = 100
	}

	g.Money -= b.Workers * b.WorkerSalary * 12

	if b.Reputation >= 75 && g.Job.Title != "" && s.chance(0.4) {
		g.log(fmt.Sprintf("😤 Your boss found out about your successful %s! They think you're mocking them and FIRED you!", b.Name))
		g.notify("Your boss fired you for having a successful business!")
		g.Job = emptyJob()
		g.Salary = 0
		stats.Add(&g.Stats.Happiness, -10)
	}

	sign := ""
	if profit >= 0 {
		sign = "+"
	}
	workerText := ""
	if b.Workers > 0 {
		plural := ""
		if b.Workers > 1 {
			plural = "s"
		}
		workerText = fmt.Sprintf(" [+%d%% +$%dk from %d worker%s]", b.Workers*15, b.Workers*6, b.Workers, plural)
	}
	g.log(fmt.Sprintf("%s %s: %s%s profit (Rep: %d%%)%s",
		b.Icon, b.Name, sign, formatMoney(profit), b.Reputation, workerText))

	if b.Reputation < 15 && s.chance(0.3) {
		g.log(fmt.Sprintf("💥 %s went bankrupt!", b.Name))
		g.notify("Your business went bankrupt!")
		g.Business = emptyBusiness()
		stats.Add(&g.Stats.Happiness, -20)
	}
}

func (s *Sim) compoundInvestments(g *Game) {
	if len(g.Investments) == 0 {
		return
	}
	word := economyWord(s, g)
	kept := g.Investments[:0]
	for i := range g.Investments {
		inv := &g.Investments[i]
		yearReturn := float64(s.between(inv.ReturnLo*10, inv.ReturnHi*10)) / 10
		profit := int(math.Floor(float64(inv.Amount) * yearReturn / 100))
		inv.Amount += profit
		inv.CurrentReturn = yearReturn
		inv.YearsHeld++
		if profit != 0 {
			retSign, profSign := "", ""
			if yearReturn >= 0 {
				retSign = "+"
			}
			if profit >= 0 {
				profSign = "+"
			}
			g.log(fmt.Sprintf("%s %s: %s%.1f%% (%s%s) in a %s market",
				inv.Icon, inv.Name, retSign, yearReturn, profSign, formatMoney(profit), word))
		}
		if inv.Amount <= 0 {
			g.log(fmt.Sprintf("📉 %s investment was wiped out!", inv.Name))
			continue
		}
		kept = append(kept, *inv)
	}
	g.Investments = kept
}

func (s *Sim) depreciateAssets(g *Game) {
	for i := range g.Assets {
		a := &g.Assets[i]
		v := math.Floor(float64(a.CurrentValue) * (1 + float64(a.Appreciation)/100))
		if v < 0 {
			v = 0
		}
		a.CurrentValue = int(v)
		a.Condition -= s.between(1, 5)
		if a.Condition < 0 {
			a.Condition = 0
		}
	}
}

func (s *Sim) rollBand(g *Game, pool []bandEvent) {
	ev := pool[s.between(0, len(pool)-1)]
	g.apply(ev.effects)
	g.log(ev.text)
}

func (s *Sim) rollAgeBandEvents(g *Game) {
	switch {
	case g.Age >= 3 && g.Age < 13 && s.chance(0.3):
		s.rollBand(g, childhoodEvents)
	case g.Age >= 13 && g.Age < 20 && s.chance(0.3):
		s.rollBand(g, teenEvents)
	}
	if g.Age >= 25 && g.Age < 45 && s.chance(0.3) {
		s.rollBand(g, adultEvents)
	}
	if g.Age >= 40 && g.Age < 60 && s.chance(0.25) {
		s.rollBand(g, midlifeEvents)
	}
	if g.Age >= 60 && s.chance(0.3) {
		s.rollBand(g, seniorEvents)
	}

	// Partner flavor.
	for i := range g.Relationships {
		r := &g.Relationships[i]
		if (r.Type != person.RelPartner && r.Type != person.RelSpouse) || !r.Alive {
			continue
		}
		if s.chance(0.2) {
			flavors := []string{
				fmt.Sprintf("%s surprised you with a romantic dinner! 💕", r.Name),
				fmt.Sprintf("You had a wonderful day with %s. 💑", r.Name),
				fmt.Sprintf("%s gave you a thoughtful gift. 🎁", r.Name),
			}
			g.log(s.pick(flavors))
			stats.Add(&g.Stats.Happiness, s.between(3, 10))
		}
		break
	}

	// Children milestones.
	for i := range g.Relationships {
		r := &g.Relationships[i]
		if r.Type != person.RelChild || !r.Alive {
			continue
		}
		switch {
		case r.Age == 5:
			g.log(fmt.Sprintf("%s started school! 🏫", r.Name))
		case r.Age == 18:
			g.log(fmt.Sprintf("%s turned 18 and is heading to college! 🎓", r.Name))
		case r.Age == 25 && s.chance(0.3):
			g.log(fmt.Sprintf("%s got married! 💒", r.Name))
			stats.Add(&g.Stats.Happiness, 10)
		case r.Age >= 28 && s.chance(0.15):
			g.log(fmt.Sprintf("%s had a baby! You're a grandparent! 👶", r.Name))
			stats.Add(&g.Stats.Happiness, 15)
		}
	}
}

func (s *Sim) considerRetirement(g *Game) {
	if g.Age >= 65 && g.Job.Title != "" && s.chance(0.2) {
		g.log(fmt.Sprintf("Considering retirement from %s...", g.Job.Title))
	}
}

func (s *Sim) decayStats(g *Game) {
	if g.Age > 40 {
		stats.Add(&g.Stats.Health, -s.between(1, 3))
		stats.Add(&g.Stats.Looks, -s.between(0, 2))
		stats.Add(&g.Stats.Fitness, -s.between(1, 2))
	}
	if g.Age > 60 {
		stats.Add(&g.Stats.Health, -s.between(2, 5))
		stats.Add(&g.Stats.Looks, -s.between(1, 3))
	}
	if g.Age > 80 {
		stats.Add(&g.Stats.Health, -s.between(3, 8))
	}
}

var deathReasons = []string{
	"natural causes", "heart failure", "old age", "a sudden illness", "peacefully in their sleep",
}

func (s *Sim) checkDeath(g *Game) {
	oldAge := g.Age > 70 && s.chance(float64(g.Age-70)*0.02)
	if g.Stats.Health > 0 && !oldAge {
		return
	}
	g.Alive = false
	g.DeathReason = s.pick(deathReasons)
	g.log(fmt.Sprintf("%s %s died of %s at age %d. ⚰️", g.FirstName, g.LastName, g.DeathReason, g.Age))
}

// queueChoiceEvent offers at most one pending decision per year:
// age-gated random events first, then school or college situations.
func (s *Sim) queueChoiceEvent(g *Game) {
	if g.Pending != nil {
		return
	}
	for i := range randomEvents {
		ev := &randomEvents[i]
		if g.Age < ev.minAge || g.Age > ev.maxAge {
			continue
		}
		if s.chance(ev.probability) {
			g.Pending = &ChoiceEvent{Text: ev.text, Choices: ev.choices}
			return
		}
	}
	switch {
	case g.School.Enrolled && g.Age >= 6 && g.Age < 18 && s.chance(0.2):
		ev := schoolEvents[s.between(0, len(schoolEvents)-1)]
		g.Pending = &ChoiceEvent{Text: ev.text, Choices: ev.choices}
	case g.InSchool && g.CurrentEducation != "high_school" && s.chance(0.2):
		ev := collegeEvents[s.between(0, len(collegeEvents)-1)]
		g.Pending = &ChoiceEvent{Text: ev.text, Choices: ev.choices}
	}
}

// Choose resolves the pending choice event by index.
func (s *Sim) Choose(g *Game, idx int) (*Game, error) {
	if !g.Alive {
		return nil, ErrDeadCharacter
	}
	if g.Pending == nil || idx < 0 || idx >= len(g.Pending.Choices) {
		return nil, ErrNotFound
	}
	next := g.Clone()
	choice := next.Pending.Choices[idx]
	next.apply(choice.Effects)
	next.log(fmt.Sprintf("%s — %s", next.Pending.Text, choice.Text))
	next.Pending = nil
	return next, nil
}

func economyWord(s *Sim, g *Game) string {
	return economy.Word(s.market.Sentiment(g.YearBorn + g.Age))
}
