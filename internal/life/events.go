package life

// Narrative event pools. Age-band pools fire from AgeUp; random and
// school events are queued as pending choices for the player.

// bandEvent is a no-choice narrative beat.
type bandEvent struct {
	text    string
	effects Effect
}

var childhoodEvents = []bandEvent{
	{"You learned to ride a bike! 🚲", eff(hap(8), hp(5))},
	{"You made a new friend at the playground. 🤝", eff(hap(10), pop(5))},
	{"You got sick with the flu. 🤒", eff(hap(-5), hp(-10))},
	{"Your family went on a vacation! ✈️", eff(hap(15))},
	{"You won a spelling bee! 🏆", eff(hap(8), sm(10), pop(3))},
	{"You fell off the swings. 🩹", eff(hap(-3), hp(-5))},
	{"Your parents got you a pet! 🐕", eff(hap(15), ka(5))},
	{"You started reading chapter books. 📖", eff(sm(8))},
	{"You helped an elderly neighbor. 🤝", eff(hap(5), ka(10))},
	{"Your birthday party was amazing! 🎂", eff(hap(15), pop(5))},
}

var teenEvents = []bandEvent{
	{"You got your first smartphone! 📱", eff(hap(10))},
	{"You started working out. 💪", eff(hp(8), lk(5))},
	{"You got your first part-time job. 💼", eff(hap(5), money(500))},
	{"You went to prom! 💃", eff(hap(12), pop(5))},
	{"You got your driver's license! 🚗", eff(hap(10), sm(3))},
	{"You experimented with a new style. ✨", eff(hap(5), lk(3))},
	{"You stayed up all night studying. 📚", eff(hp(-5), sm(8))},
	{"You volunteered at a local shelter. 🤝", eff(hap(8), ka(12))},
}

var adultEvents = []bandEvent{
	{"You attended a networking event and made great connections. 🤝", eff(sm(3), pop(8))},
	{"You discovered a passion for cooking gourmet meals. 👨‍🍳", eff(hap(8), sm(3))},
	{"You ran a half-marathon! 🏃", eff(hap(12), hp(10), lk(3))},
	{"You started a side hustle that's doing well! 💰", eff(hap(8), money(5000))},
	{"You got a speeding ticket. 🚓", eff(hap(-5), money(-300))},
	{"You won a local trivia competition! 🧠", eff(hap(8), sm(5), money(500))},
	{"You renovated your living space. 🔨", eff(hap(10), money(-2000))},
	{"You adopted a rescue pet! 🐱", eff(hap(12), ka(8))},
	{"You learned to invest in stocks! 📈", eff(sm(8), money(3000))},
	{"You had a health scare that was a wake-up call. ⚠️", eff(hap(-8), hp(-10), dis(10))},
	{"You organized a charity event! 🎗️", eff(hap(8), ka(15), pop(10))},
	{"You wrote a blog that went viral! 📝", eff(pop(15), money(2000))},
}

var midlifeEvents = []bandEvent{
	{"You're having a midlife crisis... 😰", eff(hap(-15))},
	{"You bought an expensive sports car on impulse! 🏎️", eff(hap(10), lk(3), money(-35000))},
	{"You started mentoring younger colleagues. 👨‍🏫", eff(hap(8), ka(10), pop(5))},
	{"You began writing your memoirs. 📖", eff(hap(5), sm(5))},
	{"You took up golf and it's surprisingly fun! ⛳", eff(hap(8), hp(3))},
	{"An old friend reconnected with you after years. 🤗", eff(hap(12), pop(5))},
	{"You got a big promotion at work! 📈", eff(hap(12), money(15000))},
	{"Your doctor said to watch your cholesterol. 🩺", eff(hap(-5), hp(-5))},
	{"You started a garden and found peace in it. 🌱", eff(hap(10), hp(5))},
	{"You considered starting your own business. 💡", eff(hap(5), sm(5))},
}

var seniorEvents = []bandEvent{
	{"Your grandchild visited and it was wonderful! 👶", eff(hap(20))},
	{"You started volunteering at the community center. 🏛️", eff(hap(10), ka(12))},
	{"You celebrated a major anniversary! 💍", eff(hap(15))},
	{"You took up painting as a hobby. 🎨", eff(hap(10), sm(3))},
	{"You went on a cruise with your partner. 🚢", eff(hap(15), money(-5000))},
	{"You wrote your will and got affairs in order. 📋", eff(ka(3), dis(5))},
	{"You taught a young neighbor to garden. 🌻", eff(hap(8), ka(10))},
	{"Your health took a downturn. 🏥", eff(hap(-10), hp(-15))},
	{"You received a lifetime achievement award! 🏆", eff(hap(20), pop(15))},
	{"You downsized to a cozier home. 🏡", eff(hap(5), money(50000))},
}

// randomEvent is an age-gated choice event with a per-year trigger
// probability.
type randomEvent struct {
	text        string
	minAge      int
	maxAge      int
	probability float64
	choices     []Choice
}

var randomEvents = []randomEvent{
	{"You found a wallet on the street with $500 in it.", 10, 100, 0.05, []Choice{
		{"Return it", eff(hap(8), ka(15))},
		{"Keep the money", eff(ka(-10), money(500))},
	}},
	{"A stranger offers you a mysterious pill at a party.", 16, 50, 0.04, []Choice{
		{"Take it", eff(hap(10), hp(-15), ka(-5))},
		{"Refuse", eff(ka(5))},
	}},
	{"You won the lottery! 🎉", 18, 100, 0.008, []Choice{
		{"Celebrate!", eff(hap(25), money(100000))},
	}},
	{"You were in a minor car accident.", 16, 100, 0.03, []Choice{
		{"Go to the hospital", eff(hp(-10), money(-2000))},
		{"Walk it off", eff(hp(-20))},
		{"Sue the other driver", eff(ka(-5), money(5000))},
	}},
	{"You received an inheritance from a distant relative.", 18, 100, 0.02, []Choice{
		{"Accept graciously", eff(hap(10), money(25000))},
		{"Donate to charity", eff(hap(15), ka(20))},
	}},
	{"Someone broke into your home!", 18, 100, 0.03, []Choice{
		{"Call the police", eff(hap(-10), money(-1000))},
		{"Confront the burglar", eff(hap(-5), hp(-15), ka(5))},
	}},
	{"A viral video of you goes online!", 12, 100, 0.03, []Choice{
		{"Embrace the fame", eff(hap(8), pop(15))},
		{"Try to remove it", eff(hap(-5))},
		{"Monetize it", eff(pop(10), money(2000))},
	}},
	{"You found a stray dog.", 8, 100, 0.04, []Choice{
		{"Adopt it", eff(hap(12), ka(10), money(-200))},
		{"Take to shelter", eff(ka(8))},
		{"Leave it", eff(ka(-5))},
	}},
	{"A friend invites you to invest in their startup.", 22, 100, 0.04, []Choice{
		{"Invest $5,000", eff(money(-5000))},
		{"Politely decline", eff()},
		{"Invest $1,000", eff(money(-1000))},
	}},
	{"Your investment paid off massively!", 28, 100, 0.04, []Choice{
		{"Reinvest", eff(sm(5), money(20000))},
		{"Cash out and celebrate", eff(hap(15), money(15000))},
	}},
	{"A headhunter offers you an amazing job opportunity.", 25, 60, 0.05, []Choice{
		{"Take the meeting", eff(hap(8), sm(3), money(10000))},
		{"Loyal to current job", eff(ka(5), dis(3))},
	}},
	{"You discovered a talent for public speaking!", 25, 100, 0.03, []Choice{
		{"Start giving talks", eff(hap(8), pop(10), money(3000))},
		{"Keep it to myself", eff(sm(3))},
	}},
	{"Your neighbor wants you to invest in real estate together.", 30, 100, 0.04, []Choice{
		{"Go for it!", eff(sm(5), money(-10000))},
		{"Too risky", eff()},
	}},
	{"You got into a fender bender. The other driver is furious.", 16, 100, 0.03, []Choice{
		{"Apologize sincerely", eff(ka(5), money(-500))},
		{"Argue with them", eff(hap(-5), ka(-3))},
		{"Exchange insurance info calmly", eff(dis(3))},
	}},
	{"You were offered a book deal to write about your life!", 35, 100, 0.02, []Choice{
		{"Write the book!", eff(hap(15), sm(5), pop(10), money(25000))},
		{"Too personal, decline", eff(hap(-3))},
	}},
	{"Your company is downsizing. Layoffs are coming.", 25, 65, 0.04, []Choice{
		{"Work extra hard to stay", eff(hap(-8), hp(-5), dis(8))},
		{"Start looking elsewhere", eff(hap(-3), sm(3))},
		{"Volunteer for the buyout", eff(hap(5), money(20000))},
	}},
	{"An old friend wants to reconnect after years.", 28, 100, 0.05, []Choice{
		{"Meet up with them!", eff(hap(12), pop(5))},
		{"Too much has changed", eff(hap(-3))},
	}},
	{"You found out your credit score is excellent!", 22, 100, 0.04, []Choice{
		{"Apply for better rates", eff(hap(5), money(3000))},
		{"Nice, keep saving", eff(hap(3), dis(3))},
	}},
	{"A pipe burst in your home causing water damage!", 20, 100, 0.03, []Choice{
		{"Call a plumber ASAP", eff(hap(-5), money(-3000))},
		{"Try to fix it yourself", eff(hp(-5), sm(3), money(-500))},
		{"File insurance claim", eff(hap(-3), money(-1000))},
	}},
	{"Your doctor recommends a healthier lifestyle.", 30, 100, 0.05, []Choice{
		{"Join a gym and eat healthy", eff(hap(3), hp(12), lk(5), money(-500))},
		{"Promise to do better", eff(hp(3))},
		{"Ignore the advice", eff(hp(-5), ka(-3))},
	}},
}

// choiceEvent is a situational decision without an age gate; school
// and college pools are drawn by enrollment status instead.
type choiceEvent struct {
	text    string
	choices []Choice
}

var schoolEvents = []choiceEvent{
	{"A classmate is copying your test answers.", []Choice{
		{"Tell the teacher", eff(sm(2), ka(5), pop(-5))},
		{"Let them copy", eff(ka(-3), pop(5))},
		{"Cover your paper", eff(ka(2))},
		{"Give wrong answers", eff(sm(2), ka(-5), pop(-3))},
	}},
	{"You found $20 on the school floor.", []Choice{
		{"Turn it in", eff(hap(3), ka(10))},
		{"Keep it", eff(hap(5), ka(-5), money(20))},
		{"Ask around", eff(ka(8), pop(3))},
	}},
	{"A bully is picking on a younger student.", []Choice{
		{"Stand up to them", eff(hap(5), hp(-5), ka(10), pop(5))},
		{"Get a teacher", eff(ka(5), pop(-2))},
		{"Walk away", eff(ka(-3))},
	}},
	{"Your teacher offers extra credit.", []Choice{
		{"Do the extra work", eff(hap(-3), sm(8), dis(3))},
		{"Decline politely", eff()},
	}},
	{"Someone starts a rumor about you.", []Choice{
		{"Confront them", eff(hap(-5), pop(3))},
		{"Ignore it", eff(hap(-3), ka(3))},
		{"Start a rumor back", eff(ka(-10), pop(-5))},
	}},
	{"A friend asks you to skip class.", []Choice{
		{"Skip with them", eff(hap(5), sm(-5), pop(3), crim(1))},
		{"Stay in class", eff(sm(3), dis(3), pop(-2))},
		{"Convince them to stay", eff(sm(2), ka(5))},
	}},
	{"The school science fair is coming up.", []Choice{
		{"Enter ambitious project", eff(hap(5), sm(10))},
		{"Do the minimum", eff(sm(3))},
		{"Partner with smart kid", eff(sm(5), pop(2))},
	}},
	{"A classmate invites you to their party.", []Choice{
		{"Go with a gift", eff(hap(8), pop(8), money(-25))},
		{"Go empty-handed", eff(hap(5), pop(3))},
		{"Say you're busy", eff(pop(-5))},
	}},
	{"Your gym teacher wants you for sports tryouts.", []Choice{
		{"Try out!", eff(hap(5), hp(8), pop(5))},
		{"Politely decline", eff()},
		{"Fake an injury", eff(hp(-2), ka(-5))},
	}},
	{"You have a chance to join the school play.", []Choice{
		{"Audition!", eff(hap(8), lk(2), pop(5))},
		{"Help backstage", eff(sm(2), ka(3))},
		{"Skip it", eff()},
	}},
}

var collegeEvents = []choiceEvent{
	{"Your professor invited you to a research project.", []Choice{
		{"Accept enthusiastically", eff(hap(5), sm(12), dis(5))},
		{"Too busy partying", eff(hap(5), sm(-3))},
	}},
	{"Your roommate is being really loud at night.", []Choice{
		{"Talk to them about it", eff(hap(2), ka(3), dis(2))},
		{"Report them to RA", eff(hap(3), ka(-2))},
		{"Join the party!", eff(hap(8), sm(-3), pop(5))},
		{"Passive-aggressively slam things", eff(hap(-3), ka(-5))},
	}},
	{"There's a huge college party this weekend.", []Choice{
		{"Party all night!", eff(hap(12), hp(-5), pop(8))},
		{"Go for a bit then study", eff(hap(5), sm(3), pop(3))},
		{"Stay home and study", eff(hap(-3), sm(8), dis(5))},
	}},
	{"Your study group needs help with the final project.", []Choice{
		{"Lead the group", eff(sm(8), dis(3), pop(5))},
		{"Do your part only", eff(sm(5), dis(2))},
		{"Let others carry you", eff(ka(-5), pop(-3))},
	}},
	{"A classmate asked you on a study date.", []Choice{
		{"Say yes!", eff(hap(10), sm(3), pop(3))},
		{"Keep it professional", eff(sm(5), dis(3))},
		{"Awkwardly decline", eff(hap(-3))},
	}},
	{"You got an internship offer at a great company.", []Choice{
		{"Take it!", eff(hap(8), sm(10), dis(5), money(3000))},
		{"Focus on classes instead", eff(sm(5), dis(3))},
	}},
	{"There's a protest on campus about tuition.", []Choice{
		{"Join the protest", eff(hap(3), ka(5), pop(5))},
		{"Observe from afar", eff()},
		{"Post about it online", eff(pop(3))},
	}},
	{"Your professor is offering extra tutoring sessions.", []Choice{
		{"Attend every one", eff(hap(-2), sm(10), dis(5))},
		{"Go occasionally", eff(sm(5), dis(2))},
		{"I'm fine without", eff()},
	}},
}
