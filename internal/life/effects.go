package life

// Tiny builders for the static effect tables. Keeps the data files
// readable without a sea of struct literals.

type effOpt func(*Effect)

func eff(opts ...effOpt) Effect {
	var e Effect
	for _, o := range opts {
		o(&e)
	}
	return e
}

func hap(n int) effOpt   { return func(e *Effect) { e.Happiness = n } }
func hp(n int) effOpt    { return func(e *Effect) { e.Health = n } }
func sm(n int) effOpt    { return func(e *Effect) { e.Smarts = n } }
func lk(n int) effOpt    { return func(e *Effect) { e.Looks = n } }
func ka(n int) effOpt    { return func(e *Effect) { e.Karma = n } }
func dis(n int) effOpt   { return func(e *Effect) { e.Discipline = n } }
func pop(n int) effOpt   { return func(e *Effect) { e.Popularity = n } }
func money(n int) effOpt { return func(e *Effect) { e.Money = float64(n) } }
func crim(n int) effOpt  { return func(e *Effect) { e.Criminal = n } }
