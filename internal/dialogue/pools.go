package dialogue

import "github.com/talgya/mini-life/internal/person"

// Vocabulary pools. These are the word and phrase fragments the engine
// stitches into sentences. Temperament-keyed pools always carry all
// five temperaments; topic-keyed pools fall back to "general".

var openers = map[person.Temperament][]string{
	person.Cheerful: {"omg", "haha", "ooh", "aww", "yay", "ooo", "wow", "lol", "honestly", "ngl", "yayyy", "eee", "ahhh"},
	person.Calm:     {"hmm", "well", "honestly", "yeah", "i think", "you know", "true", "fair enough", "alright", "sure", "so"},
	person.Moody:    {"ugh", "idk", "meh", "whatever", "i mean", "honestly", "look", "sigh", "hmph", "great", "bleh"},
	person.Serious:  {"indeed", "well", "i believe", "frankly", "to be honest", "in my view", "consider this", "notably", "essentially", "objectively"},
	person.Wild:     {"YOOO", "BRO", "LMAO", "dude", "okay but", "listen", "no cap", "deadass", "lowkey", "SHEESH", "HOLD UP", "OMG"},
}

var connectors = map[person.Temperament][]string{
	person.Cheerful: {"and like", "but also", "plus", "and honestly", "which is why", "but hey", "anyway", "regardless tho"},
	person.Calm:     {"and", "but", "although", "still", "that said", "however", "meanwhile", "on top of that"},
	person.Moody:    {"but like", "idk tho", "not that it matters but", "i guess", "whatever tho", "as if", "even though"},
	person.Serious:  {"furthermore", "however", "that being said", "in addition", "nevertheless", "moreover", "consequently", "as a result"},
	person.Wild:     {"AND", "but like", "also tho", "NO BUT WAIT", "and then", "plus", "BUT ALSO", "on another note tho"},
}

var closers = map[person.Temperament][]string{
	person.Cheerful: {"😄", "💕", "🥰", "✨", "😂", "💪", "🌟", "!! hehe", "! love it", "😊", "🎉", "!! yay"},
	person.Calm:     {".", "...", ". just saying.", ". that's how i see it.", ". take it easy.", ". thats just me.", ". if that makes sense."},
	person.Moody:    {"...", ". whatever.", ". idk.", ". not like it matters.", ". ugh.", ". i guess.", ". figures.", ". shocker."},
	person.Serious:  {".", ". think about it.", ". consider that carefully.", ". that's my take.", ". reflect on that.", ". mark my words."},
	person.Wild:     {"!! 🔥", "!! 💀", " LMAO", "!! no cap", "!!! 😈", "!! lets gooo 🚀", " hahaha 😂", "!! SHEESH 🔥", "!! IM DEAD 💀"},
}

var topicVerbs = map[string][]string{
	"work":     {"can be so draining", "keeps us busy", "pays the bills at least", "is important for growth", "takes up so much time", "builds character", "can be rewarding", "stresses me out sometimes", "requires so much patience", "defines our adult life"},
	"school":   {"teaches us a lot", "can be overwhelming", "is worth the effort", "opens doors", "takes dedication", "challenges us", "shapes who we become", "tests our patience", "prepares us for the future", "can be surprisingly fun"},
	"love":     {"makes everything better", "is complicated", "takes real effort", "is worth fighting for", "changes people", "means being vulnerable", "brings out the best in us", "can be scary", "teaches us about ourselves", "requires trust and honesty"},
	"family":   {"means everything", "can be complicated", "keeps us grounded", "shapes who we are", "is always there", "drives us crazy sometimes", "teaches us patience", "gives us strength", "creates lasting memories", "can be both a blessing and a challenge"},
	"money":    {"comes and goes", "causes so much stress", "opens up options", "isn't everything", "takes discipline", "grows when invested wisely", "changes relationships", "is just a tool", "requires careful planning", "can make or break things"},
	"food":     {"brings people together", "is my comfort", "hits different when you're hungry", "is basically therapy", "is an art form", "fuels everything we do", "makes any day better", "nourishes the soul", "is always a good topic"},
	"fun":      {"keeps us sane", "is so necessary", "creates the best memories", "is what life's about", "recharges our energy", "brings people closer", "makes time fly", "helps us decompress", "should never be underestimated"},
	"health":   {"should always come first", "affects everything else", "requires consistency", "is easy to neglect", "is our greatest asset", "needs daily attention", "impacts our mood", "determines our quality of life", "is worth investing in"},
	"feelings": {"are totally valid", "come in waves", "deserve to be expressed", "can be overwhelming", "teach us about ourselves", "need processing time", "shape our decisions", "are part of being human", "shouldnt be bottled up"},
	"general":  {"is interesting to think about", "depends on perspective", "matters more than we realize", "is worth discussing", "has many angles", "comes down to priorities", "reveals a lot about a person", "keeps things interesting"},
}

var topicNouns = map[string][]string{
	"work":     {"your career", "the workload", "that job situation", "office life", "work-life balance", "your boss", "the whole work thing", "the daily grind", "professional growth"},
	"school":   {"your studies", "the coursework", "education", "classes", "that school stuff", "the whole academic thing", "learning", "the curriculum", "student life"},
	"love":     {"your relationship", "love stuff", "that connection", "romance", "being with someone", "the heart", "dating life", "the spark", "emotional intimacy"},
	"family":   {"your fam", "family life", "home stuff", "the family dynamic", "those bonds", "family ties", "the household", "our roots"},
	"money":    {"finances", "the budget", "savings", "the money situation", "financial stability", "your wallet", "the bank account", "the paycheck", "financial freedom"},
	"food":     {"a good meal", "that food", "something tasty", "comfort food", "a nice dinner", "some good eats", "a home cooked meal", "trying new dishes"},
	"fun":      {"having a good time", "the vibes", "a fun night", "adventures", "good times", "making memories", "weekend plans", "a spontaneous outing"},
	"health":   {"your wellbeing", "taking care of yourself", "staying healthy", "your body", "mental health", "self-care", "a healthy lifestyle", "recovery time"},
	"feelings": {"how you feel", "your emotions", "that feeling", "your mental state", "the mood", "inner peace", "our headspace", "emotional wellbeing"},
	"general":  {"that", "this whole thing", "what you said", "this topic", "that point", "the situation", "the bigger picture", "our perspective"},
}

var adjectives = map[person.Temperament][]string{
	person.Cheerful: {"amazing", "wonderful", "super", "exciting", "beautiful", "lovely", "fantastic", "cute", "awesome", "delightful", "precious", "magical"},
	person.Calm:     {"decent", "reasonable", "fair", "okay", "fine", "normal", "steady", "solid", "good", "adequate", "moderate", "stable"},
	person.Moody:    {"exhausting", "annoying", "whatever", "boring", "lame", "tiring", "basic", "draining", "mediocre", "forgettable", "pointless"},
	person.Serious:  {"important", "significant", "crucial", "notable", "substantial", "critical", "valuable", "fundamental", "paramount", "essential"},
	person.Wild:     {"insane", "crazy", "epic", "wild", "legendary", "nuts", "unreal", "fire", "lit", "bonkers", "absurd", "godly"},
}

var opinionStarters = map[person.Temperament][]string{
	person.Cheerful: {"i love that", "i totally think", "i feel like", "you know what i think", "honestly i believe", "omg i just realized", "you know what i love"},
	person.Calm:     {"i think", "in my opinion", "i'd say", "it seems like", "from what i can tell", "if i had to guess", "generally speaking"},
	person.Moody:    {"i guess", "i suppose", "like", "not gonna lie", "idk but maybe", "cant say i care but", "eh i mean"},
	person.Serious:  {"i firmly believe", "it's clear that", "logically speaking", "i've concluded that", "evidence suggests", "upon reflection", "from an analytical perspective"},
	person.Wild:     {"okay but hear me out", "i SWEAR", "im telling you", "trust me on this", "real talk", "NO BUT SERIOUSLY", "this might sound crazy but"},
}

var reactions = map[person.Temperament][]string{
	person.Cheerful: {"thats so true", "i totally agree", "i feel the same way", "right?!", "exactly what i was thinking", "youre so right", "omg yes", "couldnt agree more"},
	person.Calm:     {"i see what you mean", "that makes sense", "i can understand that", "fair point", "i get that", "you have a point", "thats reasonable", "i hear you"},
	person.Moody:    {"i mean sure", "if you say so", "i guess thats true", "whatever you think", "sure why not", "hmm ok", "ok fine maybe", "thats one way to see it"},
	person.Serious:  {"that's a valid perspective", "i can see the merit in that", "you raise a good point", "that's worth considering", "an astute observation", "precisely my thinking"},
	person.Wild:     {"FACTS", "no literally", "say it louder", "ON GOD", "youre spitting rn", "thats real", "big facts", "LITERALLY", "im screaming"},
}

var followUpTemplates = map[person.Temperament][]string{
	person.Cheerful: {"what do you think about [noun]?", "how does [noun] make you feel?", "whats the best part about [noun]?", "do you enjoy [noun]?", "ooh but tell me more about [noun]!", "wait what happened with [noun]??"},
	person.Calm:     {"how do you feel about [noun]?", "what are your thoughts on [noun]?", "how is [noun] going for you?", "any updates on [noun]?", "curious about your take on [noun]", "is [noun] still an issue?"},
	person.Moody:    {"do you even care about [noun]?", "what about [noun] tho?", "and [noun]... how's that?", "you worried about [noun]?", "so what now with [noun]", "does [noun] even matter to you"},
	person.Serious:  {"what's your stance on [noun]?", "have you considered [noun] carefully?", "how do you plan to handle [noun]?", "what outcome do you expect with [noun]?", "how would you evaluate [noun]?", "what data supports your view on [noun]?"},
	person.Wild:     {"but what about [noun] tho??", "you ever go crazy thinking about [noun]?", "imagine if [noun] just went totally sideways", "whats the wildest thing about [noun]?", "SPILL about [noun] right now", "okay but rate [noun] out of ten"},
}

var anecdoteTemplates = map[person.Temperament][]string{
	person.Cheerful: {"i had the best experience with [noun] recently", "i was just thinking about [noun] the other day", "i always get so excited about [noun]", "[noun] always puts me in a good mood", "[noun] reminded me of the best day ever", "i get butterflies thinking about [noun]"},
	person.Calm:     {"i've been dealing with [noun] myself lately", "i had a similar experience with [noun]", "i've thought about [noun] quite a bit", "[noun] has been on my mind too", "ive been reflecting on [noun] more than usual", "[noun] crossed my mind earlier today"},
	person.Moody:    {"i had a terrible time with [noun] honestly", "i don't even wanna think about [noun]", "[noun] has been a disaster for me", "don't get me started on [noun]", "[noun] has been nothing but a headache", "every time [noun] comes up i cringe"},
	person.Serious:  {"i've done extensive research on [noun]", "my experience with [noun] taught me a lot", "i've given [noun] considerable thought", "[noun] is something i take very seriously", "[noun] warrants further examination in my opinion", "my analysis of [noun] suggests its complex"},
	person.Wild:     {"dude my story about [noun] is INSANE", "you won't believe what happened with [noun]", "i literally went ALL IN on [noun]", "[noun] almost got me in so much trouble lol", "i literally LOST IT over [noun] last week", "[noun] had me going absolutely feral"},
}

var adviceVerbs = map[person.Temperament][]string{
	person.Cheerful: {"you should totally", "maybe try to", "i'd love for you to", "it might help if you", "you could always", "it would be so great if you"},
	person.Calm:     {"you might want to", "consider trying to", "it could help to", "perhaps you should", "i'd suggest you", "one approach would be to"},
	person.Moody:    {"you could try to", "maybe just", "idk you might wanna", "it wouldn't hurt to", "at least try to", "you do you but maybe"},
	person.Serious:  {"i recommend you", "you must", "it's essential that you", "you should prioritize", "i strongly advise you to", "the optimal course is to"},
	person.Wild:     {"just GO and", "PLEASE for the love of everything", "you GOTTA", "literally just", "do yourself a favor and", "straight up just"},
}

var adviceActions = map[string][]string{
	"work":     {"take a break sometimes", "set boundaries", "negotiate your worth", "focus on what matters", "build good relationships with coworkers", "update your resume", "find a mentor at your workplace", "celebrate small wins"},
	"school":   {"study a little every day", "ask questions in class", "form study groups", "stay organized", "take good notes", "get enough sleep before exams", "review material right after class", "dont compare yourself to others"},
	"love":     {"communicate openly", "be honest about your feelings", "make time for each other", "listen more", "show appreciation", "be patient", "surprise them once in a while", "respect their boundaries"},
	"family":   {"call them more often", "be patient with them", "show up when it counts", "forgive old grudges", "make new memories together", "create family traditions", "listen without judging"},
	"money":    {"start a budget", "save before spending", "avoid impulse buying", "invest early", "live below your means", "track your expenses", "set up an emergency fund", "automate your savings"},
	"food":     {"try cooking at home", "explore new cuisines", "eat more veggies", "meal prep on sundays", "drink more water", "learn one signature dish", "dont skip breakfast"},
	"fun":      {"make time for yourself", "try something new", "plan a trip", "reconnect with old friends", "pick up a hobby", "say yes more often", "create a bucket list"},
	"health":   {"get a checkup", "exercise regularly", "sleep 8 hours", "drink water", "take mental health days", "stretch every morning", "practice mindfulness daily", "limit screen time before bed"},
	"feelings": {"talk to someone you trust", "journal your thoughts", "take it one day at a time", "be kind to yourself", "take deep breaths", "name your emotions out loud", "practice gratitude daily"},
	"general":  {"think it through", "take your time", "trust your gut", "keep going", "stay positive", "embrace change", "set clear boundaries", "celebrate progress"},
}

var greetWords = map[person.Temperament][]string{
	person.Cheerful: {"heyyy", "hiii", "omg hey", "hiiii", "ayy hello"},
	person.Calm:     {"hey", "hi there", "hello", "hey how are you"},
	person.Moody:    {"oh hey", "hi i guess", "hey...", "sup"},
	person.Serious:  {"hello", "greetings", "hi there", "good to hear from you"},
	person.Wild:     {"YOOO", "AYYY", "WHATS GOOD", "yooo whats poppin"},
}

var greetFollowUps = map[person.Temperament][]string{
	person.Cheerful: {"how have you been?? i missed talking to you", "so happy to hear from you", "whats going on tell me everything"},
	person.Calm:     {"how's everything going", "what's new with you", "how have you been"},
	person.Moody:    {"what do you want", "everything ok or", "haven't heard from you in a while"},
	person.Serious:  {"i hope all is well", "what can i do for you", "how are things on your end"},
	person.Wild:     {"its been TOO LONG", "where have you BEEN", "okay okay lets catch up right now"},
}

var goodbyes = map[person.Temperament][]string{
	person.Cheerful: {"byeee talk soon", "okay see you later", "ttyl love chatting with you", "byeee take care"},
	person.Calm:     {"alright take care", "see you later", "bye for now", "talk soon"},
	person.Moody:    {"k bye", "later i guess", "yeah okay bye", "sure bye"},
	person.Serious:  {"farewell take care", "goodbye until next time", "stay well", "take care of yourself"},
	person.Wild:     {"PEACE OUT", "laterrr dont miss me too much", "BYE dont do anything i wouldnt do", "TTYL LEGEND"},
}

var insultShock = map[person.Temperament][]string{
	person.Cheerful: {"that really hurt", "ouch i wasnt expecting that", "wow okay that stings"},
	person.Calm:     {"that was unnecessary", "i dont appreciate that", "lets keep things civil please"},
	person.Moody:    {"wow nice real nice", "cool thanks for that", "ok and i care because"},
	person.Serious:  {"that is completely unacceptable", "i wont tolerate that kind of language", "that crossed a line"},
	person.Wild:     {"OH SO THATS HOW WE DOING THIS", "LMAO okay keep that same energy", "hahaha you really went there"},
}

var insultFollow = map[person.Temperament][]string{
	person.Cheerful: {"i thought we were friends", "did i do something wrong", "can we not do this"},
	person.Calm:     {"i'd prefer we talk respectfully", "there's no need for that", "let's move past this"},
	person.Moody:    {"see if i care", "not like your opinion matters anyway", "whatever"},
	person.Serious:  {"words have consequences remember that", "i expect better from you", "reflect on what you just said"},
	person.Wild:     {"you think that bothers me", "try harder next time", "thats actually funny ngl"},
}

var complimentThanks = map[person.Temperament][]string{
	person.Cheerful: {"awww thats so sweet of you", "omg you just made my day", "stoppp youre too kind"},
	person.Calm:     {"thats really kind thank you", "i appreciate that", "thanks that means a lot"},
	person.Moody:    {"heh thanks i needed that", "you really think so", "thats actually nice to hear"},
	person.Serious:  {"i genuinely appreciate that", "thank you for saying that", "those words mean a lot"},
	person.Wild:     {"YOURE THE GOAT", "NO YOU", "okay okay i see you being all nice"},
}

var complimentReflect = map[person.Temperament][]string{
	person.Cheerful: {"right back at you honestly", "youre pretty amazing yourself", "we both rock lets be real"},
	person.Calm:     {"you're a good person too", "likewise honestly", "the feeling is mutual"},
	person.Moody:    {"dont make me blush or whatever", "ok maybe youre not so bad either", "fine youre cool too"},
	person.Serious:  {"i value our connection as well", "the respect is mutual", "i hold you in high regard too"},
	person.Wild:     {"we are literally the greatest duo ever", "best compliment ive gotten all WEEK", "i love this energy keep it coming"},
}

var coldResponses = map[person.Temperament][]string{
	person.Cheerful: {"um we dont really talk that much", "oh hey... didnt expect to hear from you", "haha yeah anyway"},
	person.Calm:     {"we're not that close", "i'm a bit busy right now", "hmm okay"},
	person.Moody:    {"why are you texting me", "k", "do i know you that well", "mhm sure"},
	person.Serious:  {"i don't believe we're close enough for this conversation", "let's keep things professional"},
	person.Wild:     {"lol random but ok", "uhhh ok sure i guess", "do we even talk like that"},
}

var sadPrefixes = []string{
	"im not in a great mood but ",
	"sorry if im being weird but ",
	"having a rough day but ",
}

var friendlyTags = []string{
	" btw i love our convos",
	" youre always fun to talk to",
	" glad you texted me",
}

var jokeTags = []string{" lol", " haha", " 😂", " im half joking but not really"}

var smartTags = []string{
	" from a logical standpoint at least",
	" statistically speaking",
	" based on what ive read",
	" if you think about it critically",
}
