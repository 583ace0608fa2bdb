package life

import (
	"fmt"
	"math"
	"strings"

	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

// Player-initiated operations. Each takes the current snapshot, checks
// requirements, and returns a new snapshot; failed requirement checks
// return ErrRequirements with a human-readable reason and leave the
// input untouched.

func reqErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRequirements, fmt.Sprintf(format, args...))
}

func (s *Sim) guard(g *Game) error {
	if !g.Alive {
		return ErrDeadCharacter
	}
	return nil
}

// DoActivity performs a pastime from the catalog by index.
func (s *Sim) DoActivity(g *Game, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(Activities) {
		return nil, ErrNotFound
	}
	act := Activities[idx]
	if g.Age < act.MinAge {
		return nil, reqErr("must be %d+ for %s", act.MinAge, act.Name)
	}
	if g.Money < act.Cost {
		return nil, reqErr("can't afford %s", act.Name)
	}
	next := g.Clone()
	next.apply(act.Effects)
	next.Money -= act.Cost
	next.TotalSpent += act.Cost
	next.log(fmt.Sprintf("%s %s", act.Icon, act.Name))
	next.notify(fmt.Sprintf("You enjoyed %s!", act.Name))
	return next, nil
}

// ApplyForJob applies for an opening on the jobs board. Meeting the
// requirements is necessary but not sufficient: the hire roll scales
// with smarts and looks and drops with a criminal record. A hire
// brings three new coworkers along.
func (s *Sim) ApplyForJob(g *Game, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(Jobs) {
		return nil, ErrNotFound
	}
	job := Jobs[idx]
	req := job.Requirements
	switch {
	case req.Age > 0 && g.Age < req.Age:
		return nil, reqErr("must be %d+", req.Age)
	case req.Smarts > 0 && g.Stats.Smarts < req.Smarts:
		return nil, reqErr("need %d%%+ smarts", req.Smarts)
	case req.Looks > 0 && g.Stats.Looks < req.Looks:
		return nil, reqErr("need %d%%+ looks", req.Looks)
	case req.Health > 0 && g.Stats.Health < req.Health:
		return nil, reqErr("need %d%%+ health", req.Health)
	case req.Education != "" && !hasDegree(g, req.Education):
		return nil, reqErr("need %s degree", strings.ReplaceAll(req.Education, "_", " "))
	case g.InJail:
		return nil, reqErr("can't work in jail")
	}

	next := g.Clone()
	hireChance := 0.3 + float64(next.Stats.Smarts)/200 + float64(next.Stats.Looks)/300
	if next.CriminalRecord > 0 {
		hireChance -= 0.2
	}
	if !s.chance(hireChance) {
		next.log(fmt.Sprintf("Applied for %s but was rejected. 😔", job.Title))
		next.notify(fmt.Sprintf("Applied for %s but wasn't hired.", job.Title))
		return next, nil
	}

	for i := 0; i < 3; i++ {
		cw := s.gen.NewStranger(person.RelCoworker, s.gen.RandomGender(), next.Age, -10, 15, 30, 60)
		next.Relationships = append(next.Relationships, cw)
	}
	next.Job = Job{
		Title: job.Title, Category: job.Category, Salary: job.Salary,
		Performance: 50, BossRelation: s.between(40, 60), Satisfaction: 50,
	}
	next.Salary = job.Salary
	next.Retired = false
	next.log(fmt.Sprintf("Started working as %s! 💼", job.Title))
	next.notify(fmt.Sprintf("Hired as %s! 🎉", job.Title))
	stats.Add(&next.Stats.Happiness, 10)
	return next, nil
}

func hasDegree(g *Game, key string) bool {
	for _, e := range g.Education {
		if e == key {
			return true
		}
	}
	return false
}

// QuitJob walks away from the current job.
func (s *Sim) QuitJob(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Job.Title == "" {
		return nil, reqErr("no job to quit")
	}
	next := g.Clone()
	next.log(fmt.Sprintf("Quit %s. 👋", next.Job.Title))
	next.notify("You quit your job.")
	next.Job = emptyJob()
	next.Salary = 0
	return next, nil
}

// Retire ends the working life for good.
func (s *Sim) Retire(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Job.Title == "" {
		return nil, reqErr("no job to retire from")
	}
	next := g.Clone()
	next.log(fmt.Sprintf("Retired from %s! 🏖️ Enjoying the golden years.", next.Job.Title))
	next.notify("You retired! Enjoy life!")
	next.Job = emptyJob()
	next.Salary = 0
	next.Retired = true
	next.RetirementAge = next.Age
	stats.Add(&next.Stats.Happiness, 15)
	return next, nil
}

// Schmooze butters up the boss.
func (s *Sim) Schmooze(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Job.Title == "" {
		return nil, reqErr("no job")
	}
	next := g.Clone()
	gain := s.between(3, 10)
	next.Job.BossRelation = stats.Clamp(next.Job.BossRelation + gain)
	next.log(fmt.Sprintf("Schmooze with boss. +%d%% 🤝", gain))
	next.notify(fmt.Sprintf("Boss relation +%d%%!", gain))
	return next, nil
}

// AskPromotion rolls for a promotion weighted by performance, boss
// relation, and smarts. Success resets tenure; failure sours the boss.
func (s *Sim) AskPromotion(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Job.Title == "" {
		return nil, reqErr("no job")
	}
	next := g.Clone()
	chance := float64(next.Job.Performance)/100*0.5 +
		float64(next.Job.BossRelation)/100*0.3 +
		float64(next.Stats.Smarts)/100*0.2
	if s.chance(chance) {
		raise := int(math.Floor(float64(next.Job.Salary) * float64(s.between(10, 25)) / 100))
		next.Job.Salary += raise
		next.Job.Years = 0
		next.Job.Performance = 50
		next.Salary = next.Job.Salary
		next.log(fmt.Sprintf("Promoted! New salary: %s/yr 🎉", formatMoney(next.Job.Salary)))
		next.notify(fmt.Sprintf("Promoted! +%s/yr!", formatMoney(raise)))
		stats.Add(&next.Stats.Happiness, 15)
	} else {
		next.Job.BossRelation = stats.Clamp(next.Job.BossRelation - 5)
		next.log("Promotion denied. 😔")
		next.notify("Promotion denied.")
	}
	return next, nil
}

// WorkTask records a work-task result. The score is 0-100, adjusted
// upward by the worker's stats before it lands on performance.
func (s *Sim) WorkTask(g *Game, score int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Job.Title == "" {
		return nil, reqErr("no job")
	}
	next := g.Clone()
	statBonus := float64(next.Stats.Smarts+next.Stats.Discipline+next.Stats.Fitness) / 300 * 20
	adjusted := math.Min(100, float64(score)+statBonus)
	next.Job.Performance = stats.Clamp(next.Job.Performance + int(math.Round((adjusted-50)/5)))
	rating := "Poor"
	switch {
	case adjusted >= 80:
		rating = "Excellent"
	case adjusted >= 60:
		rating = "Good"
	case adjusted >= 40:
		rating = "Average"
	}
	next.log(fmt.Sprintf("💼 Work - %s (%d%%)", rating, int(math.Round(adjusted))))
	if adjusted >= 70 {
		next.Job.BossRelation = stats.Clamp(next.Job.BossRelation + 3)
		next.Money += int(math.Floor(float64(next.Job.Salary) * 0.01))
	} else if adjusted < 40 {
		next.Job.BossRelation = stats.Clamp(next.Job.BossRelation - 3)
	}
	next.notify(fmt.Sprintf("Work: %s! Performance: %d%%", rating, next.Job.Performance))
	return next, nil
}

// AttendClass records a class result for a subject. The score is 0-100
// and moves both the subject grade and smarts.
func (s *Sim) AttendClass(g *Game, subject string, score int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if !g.School.Enrolled && !g.InSchool {
		return nil, reqErr("not in school")
	}
	next := g.Clone()
	stats.Add(&next.Stats.Smarts, int(math.Round(float64(score-50)/10)))
	sum := 0
	for i := range next.School.Subjects {
		sub := &next.School.Subjects[i]
		if sub.Name == subject {
			sub.Grade = stats.Clamp(sub.Grade + int(math.Round(float64(score-50)/5)))
		}
		sum += sub.Grade
	}
	if n := len(next.School.Subjects); n > 0 {
		next.School.Grade = int(math.Round(float64(sum) / float64(n)))
	}
	letter := "F"
	switch {
	case score >= 80:
		letter = "A"
	case score >= 60:
		letter = "B"
	case score >= 40:
		letter = "C"
	case score >= 20:
		letter = "D"
	}
	next.log(fmt.Sprintf("📚 %s - Got %s (%d%%)", subject, letter, score))
	if score >= 80 {
		stats.Add(&next.Stats.Happiness, 3)
		stats.Add(&next.Stats.Discipline, 2)
	} else if score < 40 {
		stats.Add(&next.Stats.Happiness, -2)
	}
	next.notify(fmt.Sprintf("%s: %s grade! (%d%%)", subject, letter, score))
	return next, nil
}

// JoinClub signs up for a school club.
func (s *Sim) JoinClub(g *Game, name string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	var club *SchoolClub
	for i := range SchoolClubs {
		if SchoolClubs[i].Name == name {
			club = &SchoolClubs[i]
			break
		}
	}
	if club == nil {
		return nil, ErrNotFound
	}
	if !g.School.Enrolled {
		return nil, reqErr("not in school")
	}
	if g.Age < club.MinAge {
		return nil, reqErr("must be %d+ for %s", club.MinAge, club.Name)
	}
	next := g.Clone()
	next.School.Club = club.Name
	next.log(fmt.Sprintf("Joined %s! 🏆", club.Name))
	next.notify(fmt.Sprintf("Joined %s!", club.Name))
	stats.Add(&next.Stats.Happiness, 5)
	stats.Add(&next.Stats.Popularity, 3)
	return next, nil
}

// MakeFriend meets someone new at school.
func (s *Sim) MakeFriend(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	next := g.Clone()
	friend := s.gen.NewPeers(person.RelFriend, 1, next.Age)[0]
	next.Relationships = append(next.Relationships, friend)
	next.log(fmt.Sprintf("Made a new friend: %s! 🤝", friend.Name))
	next.notify(fmt.Sprintf("New friend: %s!", friend.Name))
	stats.Add(&next.Stats.Happiness, 5)
	return next, nil
}

// Enroll starts an education program. Post-secondary paths require the
// prior diploma and up-front tuition. Four schoolmates come with it.
func (s *Sim) Enroll(g *Game, key string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	var path *EducationPath
	for i := range EducationPaths {
		if EducationPaths[i].Key == key {
			path = &EducationPaths[i]
			break
		}
	}
	if path == nil {
		return nil, ErrNotFound
	}
	switch {
	case g.InSchool:
		return nil, reqErr("already in school")
	case g.Stats.Smarts < path.SmartsReq:
		return nil, reqErr("need %d%%+ smarts", path.SmartsReq)
	case hasDegree(g, key):
		return nil, reqErr("already have this degree")
	case g.Money < path.Cost:
		return nil, reqErr("can't afford %s tuition", formatMoney(path.Cost))
	case (key == "college" || key == "community_college") && !hasDegree(g, "high_school"):
		return nil, reqErr("need high school diploma")
	case (key == "grad_school" || key == "med_school" || key == "law_school") && !hasDegree(g, "college"):
		return nil, reqErr("need college degree")
	}

	next := g.Clone()
	next.InSchool = true
	next.CurrentEducation = key
	next.EducationYearsLeft = path.Duration
	next.Money -= path.Cost
	next.TotalSpent += path.Cost
	next.Relationships = append(next.Relationships, s.gen.NewPeers(person.RelSchoolmate, 4, next.Age)...)
	next.log(fmt.Sprintf("Enrolled in %s! 📚", path.Name))
	next.notify(fmt.Sprintf("Enrolled in %s!", path.Name))
	return next, nil
}

// CommitCrime rolls a crime attempt. Getting caught means jail, losing
// the job, and the stat effects land either way.
func (s *Sim) CommitCrime(g *Game, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(Crimes) {
		return nil, ErrNotFound
	}
	crime := Crimes[idx]
	next := g.Clone()
	next.apply(crime.Effects)
	if s.chance(crime.SuccessRate) {
		next.Money += crime.Reward
		next.TotalEarned += crime.Reward
		next.log(fmt.Sprintf("%s Got away with %s! +%s", crime.Icon, crime.Name, formatMoney(crime.Reward)))
		next.notify(fmt.Sprintf("%s success! +%s", crime.Name, formatMoney(crime.Reward)))
		return next, nil
	}
	next.InJail = true
	next.JailYearsLeft = crime.JailYears
	next.Job = emptyJob()
	next.Salary = 0
	stats.Add(&next.Stats.Happiness, -20)
	next.log(fmt.Sprintf("🚔 Caught! %d year(s) prison for %s.", crime.JailYears, crime.Name))
	next.notify(fmt.Sprintf("Caught! %d year(s) prison!", crime.JailYears))
	return next, nil
}

// BuyAsset purchases a vehicle or property from the catalogs. Buying a
// property moves the owner in.
func (s *Sim) BuyAsset(g *Game, category string, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	var catalog []CatalogAsset
	switch category {
	case "vehicle":
		catalog = Vehicles
	case "property":
		catalog = Properties
	default:
		return nil, ErrNotFound
	}
	if idx < 0 || idx >= len(catalog) {
		return nil, ErrNotFound
	}
	item := catalog[idx]
	if g.Money < item.Cost {
		return nil, reqErr("can't afford %s", item.Name)
	}
	next := g.Clone()
	next.Money -= item.Cost
	next.TotalSpent += item.Cost
	next.Assets = append(next.Assets, Asset{
		ID: s.id(), Name: item.Name, Category: item.Category,
		PurchasePrice: item.Cost, CurrentValue: item.Cost,
		Condition: 100, Appreciation: item.Appreciation,
	})
	if item.Category == "property" {
		quality := item.Cost/100000 + 3
		if quality > 10 {
			quality = 10
		}
		next.Housing = Housing{
			Name: item.Name, Type: HousingOwn,
			MonthlyPayment: int(math.Floor(float64(item.Cost) * 0.005)),
			Quality:        quality,
		}
	}
	stats.Add(&next.Stats.Happiness, 10)
	next.log(fmt.Sprintf("Bought %s for %s! 🏷️", item.Name, formatMoney(item.Cost)))
	next.notify(fmt.Sprintf("Bought %s!", item.Name))
	return next, nil
}

// SellAsset liquidates an owned asset at its current value. Selling
// the home you live in drops you back to a shared room.
func (s *Sim) SellAsset(g *Game, assetID string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	next := g.Clone()
	for i := range next.Assets {
		a := next.Assets[i]
		if a.ID != assetID {
			continue
		}
		next.Money += a.CurrentValue
		next.Assets = append(next.Assets[:i], next.Assets[i+1:]...)
		if a.Category == "property" && next.Housing.Name == a.Name {
			next.Housing = Housing{Name: "Shared Room", Type: HousingRent, MonthlyPayment: 400, Quality: 2}
		}
		next.log(fmt.Sprintf("Sold %s for %s. 💵", a.Name, formatMoney(a.CurrentValue)))
		next.notify(fmt.Sprintf("Sold %s for %s!", a.Name, formatMoney(a.CurrentValue)))
		return next, nil
	}
	return nil, ErrNotFound
}

// ChangeHousing moves to a rental. Moving back in with the parents is
// off the table from age 20.
func (s *Sim) ChangeHousing(g *Game, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(Rentals) {
		return nil, ErrNotFound
	}
	opt := Rentals[idx]
	if opt.MonthlyCost == 0 && g.Age >= 20 {
		return nil, reqErr("you're too old to move back with your parents")
	}
	next := g.Clone()
	htype := HousingRent
	if opt.MonthlyCost == 0 {
		htype = HousingParents
	}
	next.Housing = Housing{Name: opt.Name, Type: htype, MonthlyPayment: opt.MonthlyCost, Quality: opt.Quality}
	next.log(fmt.Sprintf("🏠 Moved to %s (%s/mo)", opt.Name, formatMoney(opt.MonthlyCost)))
	next.notify(fmt.Sprintf("Moved to %s!", opt.Name))
	return next, nil
}

// SetExpenseTier changes a recurring expense line.
func (s *Sim) SetExpenseTier(g *Game, category string, tier ExpenseTier) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if tier < TierBasic || tier > TierFancy {
		return nil, reqErr("unknown tier")
	}
	next := g.Clone()
	switch category {
	case "food":
		next.Expenses.Food = tier
	case "electricity":
		next.Expenses.Electricity = tier
	case "insurance":
		next.Expenses.Insurance = tier
	default:
		return nil, ErrNotFound
	}
	return next, nil
}

// StartBusiness founds a business of the given type. Revenue settles
// at the midpoint of the type's range; the startup cost is sunk into
// TotalProfit so the books start negative.
func (s *Sim) StartBusiness(g *Game, idx int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(BusinessTypes) {
		return nil, ErrNotFound
	}
	biz := BusinessTypes[idx]
	switch {
	case g.Money < biz.StartupCost:
		return nil, reqErr("need %s to start", formatMoney(biz.StartupCost))
	case g.Stats.Smarts < biz.SmartsReq:
		return nil, reqErr("need %d%%+ smarts", biz.SmartsReq)
	case g.Business.Name != "":
		return nil, reqErr("already own a business")
	}
	next := g.Clone()
	next.Money -= biz.StartupCost
	next.TotalSpent += biz.StartupCost
	next.Business = Business{
		Name: biz.Name, Type: biz.Name, Icon: biz.Icon,
		MonthlyRevenue: (biz.RevenueLo + biz.RevenueHi) / 2,
		MonthlyCost:    biz.MonthlyCost,
		Reputation:     50,
		TotalProfit:    -biz.StartupCost,
		WorkerSalary:   800,
		MaxWorkers:     3,
	}
	next.log(fmt.Sprintf("%s Started a %s! Invested %s", biz.Icon, biz.Name, formatMoney(biz.StartupCost)))
	next.notify(fmt.Sprintf("Started %s!", biz.Name))
	stats.Add(&next.Stats.Happiness, 10)
	return next, nil
}

// CloseBusiness sells the business for a reputation-weighted year of
// revenue.
func (s *Sim) CloseBusiness(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Business.Name == "" {
		return nil, reqErr("no business to close")
	}
	next := g.Clone()
	sellValue := next.Business.MonthlyRevenue * 12 * next.Business.Reputation / 100
	if sellValue < 0 {
		sellValue = 0
	}
	next.Money += sellValue
	next.log(fmt.Sprintf("Closed %s. Sold for %s.", next.Business.Name, formatMoney(sellValue)))
	next.notify(fmt.Sprintf("Closed business. Got %s from sale.", formatMoney(sellValue)))
	next.Business = emptyBusiness()
	return next, nil
}

// HireWorker adds a worker up to the business's cap.
func (s *Sim) HireWorker(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Business.Name == "" {
		return nil, reqErr("no business")
	}
	if g.Business.Workers >= g.Business.MaxWorkers {
		return nil, reqErr("max %d workers", g.Business.MaxWorkers)
	}
	next := g.Clone()
	next.Business.Workers++
	next.log(fmt.Sprintf("👷 Hired worker #%d at %s/mo", next.Business.Workers, formatMoney(next.Business.WorkerSalary)))
	next.notify(fmt.Sprintf("Hired a worker! (%d/%d)", next.Business.Workers, next.Business.MaxWorkers))
	return next, nil
}

// FireWorker lets one worker go.
func (s *Sim) FireWorker(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Business.Name == "" || g.Business.Workers <= 0 {
		return nil, reqErr("no workers to fire")
	}
	next := g.Clone()
	next.Business.Workers--
	next.log("Fired a worker.")
	next.notify(fmt.Sprintf("Fired a worker. (%d/%d)", next.Business.Workers, next.Business.MaxWorkers))
	return next, nil
}

// Invest opens a holding in one of the instruments.
func (s *Sim) Invest(g *Game, idx, amount int) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(InvestmentTypes) {
		return nil, ErrNotFound
	}
	inv := InvestmentTypes[idx]
	if g.Money < amount {
		return nil, reqErr("can't afford this investment")
	}
	if amount < inv.MinInvest {
		return nil, reqErr("minimum investment: %s", formatMoney(inv.MinInvest))
	}
	next := g.Clone()
	next.Money -= amount
	next.TotalSpent += amount
	next.Investments = append(next.Investments, Investment{
		ID: s.id(), Name: inv.Name, Icon: inv.Icon, Amount: amount,
		ReturnLo: inv.ReturnLo, ReturnHi: inv.ReturnHi,
	})
	next.log(fmt.Sprintf("%s Invested %s in %s", inv.Icon, formatMoney(amount), inv.Name))
	next.notify(fmt.Sprintf("Invested %s in %s!", formatMoney(amount), inv.Name))
	return next, nil
}

// SellInvestment cashes out a holding at its current value.
func (s *Sim) SellInvestment(g *Game, invID string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	next := g.Clone()
	for i := range next.Investments {
		inv := next.Investments[i]
		if inv.ID != invID {
			continue
		}
		next.Money += inv.Amount
		next.Investments = append(next.Investments[:i], next.Investments[i+1:]...)
		next.log(fmt.Sprintf("Sold %s for %s 📊", inv.Name, formatMoney(inv.Amount)))
		next.notify(fmt.Sprintf("Sold %s for %s!", inv.Name, formatMoney(inv.Amount)))
		return next, nil
	}
	return nil, ErrNotFound
}
