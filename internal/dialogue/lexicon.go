// Package dialogue implements the procedural chat engine: spell
// correction, topic extraction, and temperament-driven sentence
// assembly from vocabulary pools.
package dialogue

// topicEntry keeps the registry ordered. Topic scanning and main-topic
// selection depend on this order, so it is a slice, not a map.
type topicEntry struct {
	name     string
	keywords []string
}

var topicRegistry = []topicEntry{
	{"work", []string{"work", "job", "boss", "office", "career", "salary", "fired", "hired", "coworker", "promotion", "meeting", "resume", "overtime", "deadline", "shift"}},
	{"school", []string{"school", "class", "teacher", "homework", "exam", "test", "grade", "study", "college", "university", "professor", "lecture", "assignment", "quiz", "tutor"}},
	{"love", []string{"love", "date", "dating", "boyfriend", "girlfriend", "crush", "relationship", "married", "wedding", "kiss", "romantic", "partner", "flirt", "breakup", "ex"}},
	{"family", []string{"family", "mom", "dad", "parent", "brother", "sister", "kid", "child", "baby", "son", "daughter", "grandma", "grandpa", "uncle", "aunt", "cousin"}},
	{"money", []string{"money", "cash", "rich", "poor", "broke", "bank", "buy", "expensive", "cheap", "afford", "debt", "invest", "savings", "wallet", "loan", "payment"}},
	{"food", []string{"food", "eat", "hungry", "lunch", "dinner", "breakfast", "restaurant", "cook", "pizza", "burger", "coffee", "snack", "meal", "recipe", "bake"}},
	{"fun", []string{"fun", "party", "game", "movie", "music", "concert", "trip", "vacation", "travel", "beach", "hangout", "chill", "festival", "hobby", "adventure"}},
	{"health", []string{"health", "sick", "doctor", "hospital", "gym", "exercise", "tired", "sleep", "headache", "medicine", "fit", "pain", "workout", "diet", "injury"}},
	{"feelings", []string{"happy", "sad", "angry", "upset", "worried", "scared", "excited", "bored", "lonely", "stressed", "anxious", "depressed", "frustrated", "grateful", "jealous"}},
	{"greeting", []string{"hi", "hey", "hello", "sup", "yo", "what's up", "how are you", "how r u", "wassup", "hows it going", "howdy", "greetings", "morning"}},
	{"goodbye", []string{"bye", "goodbye", "later", "gotta go", "see you", "cya", "ttyl", "goodnight", "gn", "night", "peace", "farewell", "brb"}},
	{"question", []string{"why", "how", "what", "where", "when", "who", "which", "do you", "are you", "can you", "would you", "should", "shall", "is it"}},
	{"compliment", []string{"nice", "awesome", "cool", "great", "amazing", "beautiful", "smart", "funny", "best", "love you", "miss you", "talented", "gorgeous", "incredible"}},
	{"insult", []string{"hate", "stupid", "ugly", "dumb", "idiot", "loser", "worst", "suck", "terrible", "annoying", "shut up", "pathetic", "lame", "trash"}},
}

// allKeywords is the flat registry used by fuzzy matching, built in
// registry order so the first-best match is stable.
var allKeywords = func() []string {
	var out []string
	for _, e := range topicRegistry {
		out = append(out, e.keywords...)
	}
	return out
}()

// spellMap is the direct misspelling dictionary checked before any
// fuzzy matching.
var spellMap = map[string]string{
	// work
	"wrk": "work", "wrok": "work", "worl": "work", "wirk": "work", "wokr": "work", "owrk": "work",
	"jbo": "job", "jab": "job", "jop": "job", "joob": "job",
	"bos": "boss", "boos": "boss", "bross": "boss", "bss": "boss",
	"ofice": "office", "offce": "office", "offfice": "office", "offica": "office",
	"carreer": "career", "carier": "career", "carer": "career", "carear": "career",
	"salry": "salary", "sallary": "salary", "salaray": "salary", "salery": "salary",
	"fird": "fired", "fierd": "fired", "firedd": "fired",
	"hird": "hired", "hierd": "hired", "hirred": "hired",
	"promtion": "promotion", "promosion": "promotion", "promoton": "promotion", "prmotion": "promotion",
	"meating": "meeting", "metting": "meeting", "meetign": "meeting",
	"coworker": "coworker", "cowrker": "coworker", "cowoker": "coworker",
	// school
	"scool": "school", "shool": "school", "schol": "school", "schoool": "school", "shcool": "school", "skool": "school", "skewl": "school",
	"clas": "class", "calss": "class", "classs": "class", "clss": "class",
	"techer": "teacher", "teachr": "teacher", "teecher": "teacher", "techr": "teacher", "teacer": "teacher",
	"homwork": "homework", "homewrok": "homework", "hmework": "homework", "homewerk": "homework",
	"exma": "exam", "eaxm": "exam", "exaam": "exam", "ecam": "exam",
	"tets": "test", "tset": "test", "testt": "test",
	"gade": "grade", "graed": "grade", "grde": "grade", "garde": "grade",
	"stuyd": "study", "sutdy": "study", "stdy": "study", "studdy": "study",
	"colege": "college", "collge": "college", "colledge": "college", "collage": "college", "colleg": "college",
	"univrsity": "university", "univeristy": "university", "unversity": "university", "univercity": "university",
	"profeser": "professor", "proffessor": "professor", "professer": "professor", "proffesor": "professor",
	// love
	"lov": "love", "luv": "love", "loev": "love", "lovee": "love", "lve": "love",
	"dat": "date", "daet": "date", "dtae": "date",
	"datign": "dating", "dateing": "dating", "datin": "dating",
	"boyfrend": "boyfriend", "boyfreind": "boyfriend", "boifriend": "boyfriend", "boyfirend": "boyfriend",
	"girlfrend": "girlfriend", "girlfreind": "girlfriend", "girlfirend": "girlfriend", "grilfriend": "girlfriend",
	"cruch": "crush", "crussh": "crush", "cursh": "crush", "chrush": "crush",
	"realtionship": "relationship", "relasionship": "relationship", "relatonship": "relationship", "realationship": "relationship",
	"marred": "married", "maried": "married", "marride": "married", "marriad": "married",
	"weding": "wedding", "weddin": "wedding", "weddign": "wedding",
	"romatic": "romantic", "romantc": "romantic", "romanitc": "romantic",
	"parner": "partner", "partnar": "partner", "parter": "partner", "partnre": "partner",
	// family
	"famly": "family", "famliy": "family", "faimly": "family", "familiy": "family", "familly": "family",
	"moem": "mom", "momm": "mom", "mum": "mom", "maam": "mom",
	"dda": "dad", "dadd": "dad", "dahd": "dad",
	"parnet": "parent", "parant": "parent", "parrent": "parent",
	"brothr": "brother", "broter": "brother", "brotehr": "brother", "bruther": "brother",
	"siter": "sister", "sistr": "sister", "siser": "sister", "sistre": "sister",
	"chidl": "child", "chlid": "child", "childd": "child",
	"daugther": "daughter", "dauhgter": "daughter", "daugher": "daughter", "daugter": "daughter",
	// money
	"mony": "money", "moeny": "money", "muney": "money", "monye": "money", "monney": "money",
	"csh": "cash", "cassh": "cash", "cahs": "cash",
	"rch": "rich", "rihc": "rich", "riich": "rich",
	"por": "poor", "pooor": "poor", "poorr": "poor",
	"brok": "broke", "broek": "broke", "brokee": "broke",
	"bnk": "bank", "baank": "bank", "bakn": "bank",
	"expensve": "expensive", "expenisve": "expensive", "expensiv": "expensive",
	"dept": "debt", "dbet": "debt", "deabt": "debt",
	"invst": "invest", "invets": "invest", "invsest": "invest",
	"savigns": "savings", "savins": "savings", "saivngs": "savings",
	// food
	"fod": "food", "foood": "food", "foof": "food", "foud": "food",
	"aet": "eat", "eet": "eat", "eatt": "eat",
	"hungyr": "hungry", "hunrgy": "hungry", "hungray": "hungry", "hungy": "hungry",
	"lnch": "lunch", "lucnh": "lunch", "lunhc": "lunch",
	"dinr": "dinner", "dinnr": "dinner", "diner": "dinner", "dinenr": "dinner",
	"brekfast": "breakfast", "breakfest": "breakfast", "brakfast": "breakfast", "breafast": "breakfast",
	"restraunt": "restaurant", "restarant": "restaurant", "resturant": "restaurant", "resteraunt": "restaurant",
	"coffe": "coffee", "cofee": "coffee", "coffie": "coffee", "cofeee": "coffee",
	"piza": "pizza", "piazza": "pizza", "pizzza": "pizza",
	// fun
	"funn": "fun", "fnu": "fun",
	"prty": "party", "partty": "party", "pary": "party", "parti": "party",
	"gme": "game", "gaem": "game", "gmae": "game",
	"moive": "movie", "movei": "movie", "moovie": "movie", "mvie": "movie",
	"muisc": "music", "muscic": "music", "musc": "music", "muisic": "music",
	"cocnert": "concert", "conert": "concert", "concet": "concert",
	"trp": "trip", "tirp": "trip", "triip": "trip",
	"vacaton": "vacation", "vacaion": "vacation", "vacasion": "vacation", "vacashion": "vacation",
	"travl": "travel", "traevl": "travel", "travle": "travel",
	// health
	"helth": "health", "heatlh": "health", "haelth": "health", "healht": "health",
	"sck": "sick", "scik": "sick", "siick": "sick",
	"doctr": "doctor", "docter": "doctor", "doctro": "doctor", "docotr": "doctor",
	"hosptal": "hospital", "hosptial": "hospital", "hospitl": "hospital", "hopsital": "hospital",
	"exrcise": "exercise", "exercse": "exercise", "excercise": "exercise", "exersise": "exercise",
	"tird": "tired", "tierd": "tired", "tiread": "tired",
	"slep": "sleep", "slepe": "sleep", "slepp": "sleep", "sleeep": "sleep",
	"headach": "headache", "hedache": "headache", "headace": "headache",
	"medicne": "medicine", "medecine": "medicine", "medicin": "medicine",
	// feelings
	"hapy": "happy", "hapyp": "happy", "happpy": "happy", "hppy": "happy",
	"sda": "sad", "sadd": "sad",
	"anrgy": "angry", "angyr": "angry", "angy": "angry", "agry": "angry",
	"upst": "upset", "uspet": "upset", "uppset": "upset",
	"woried": "worried", "worred": "worried", "worreid": "worried", "worrid": "worried",
	"scred": "scared", "scaerd": "scared", "scarred": "scared",
	"exicted": "excited", "excied": "excited", "exited": "excited", "ecxited": "excited",
	"bord": "bored", "boerd": "bored", "borred": "bored",
	"lonley": "lonely", "lonly": "lonely", "loneyl": "lonely",
	"stresed": "stressed", "streesed": "stressed", "stressd": "stressed",
	"anxous": "anxious", "anixous": "anxious", "anxius": "anxious", "ancsious": "anxious",
	"depresed": "depressed", "depressd": "depressed", "deppressed": "depressed",
	// greeting
	"helo": "hello", "helllo": "hello", "hllo": "hello",
	"heey": "hey", "hye": "hey",
	"hii": "hi", "hiii": "hi",
	"wasup": "wassup", "whatsup": "what's up", "watsup": "what's up", "whasup": "what's up",
	// goodbye
	"byee": "bye", "bey": "bye", "byye": "bye",
	"godbye": "goodbye", "goodby": "goodbye", "gooodbye": "goodbye",
	"latr": "later", "lter": "later", "laterr": "later",
	"goodnite": "goodnight", "gdnight": "goodnight", "goodngiht": "goodnight",
	// common general misspellings
	"teh": "the", "taht": "that", "waht": "what", "whta": "what", "wehn": "when",
	"becuase": "because", "becasue": "because", "becuz": "because", "cuz": "because", "bcuz": "because",
	"poeple": "people", "pepole": "people", "peple": "people", "ppl": "people",
	"freind": "friend", "frend": "friend", "frined": "friend", "freand": "friend", "firend": "friend",
	"dont": "don't", "doesnt": "doesn't", "didnt": "didn't", "cant": "can't", "wont": "won't",
	"im": "i'm", "ive": "i've", "youre": "you're", "theyre": "they're", "thier": "their",
	"realy": "really", "relly": "really", "relaly": "really", "rlly": "really", "rly": "really",
	"thnk": "think", "thnik": "think", "thiink": "think",
	"abuot": "about", "abut": "about", "abotu": "about",
	"somthing": "something", "somethign": "something", "smething": "something",
	"evrything": "everything", "everthing": "everything", "evreything": "everything",
	"defintely": "definitely", "definately": "definitely", "defiantly": "definitely", "definetly": "definitely",
	"beautful": "beautiful", "beutiful": "beautiful", "beatiful": "beautiful", "beautifull": "beautiful",
	"intresting": "interesting", "intersting": "interesting", "intresing": "interesting",
	"tommorow": "tomorrow", "tomorow": "tomorrow", "tomorrw": "tomorrow", "tmrw": "tomorrow",
	"tongiht": "tonight", "tonite": "tonight", "tnoight": "tonight",
	"proably": "probably", "probaly": "probably", "prolly": "probably", "prbably": "probably",
}

// stopWords are dropped when reflecting the player's subject words.
var stopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "you": {}, "your": {}, "the": {}, "a": {}, "an": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "can": {}, "may": {}, "might": {},
	"to": {}, "of": {}, "in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {},
	"from": {}, "it": {}, "its": {}, "this": {}, "that": {}, "but": {}, "and": {},
	"or": {}, "so": {}, "if": {}, "just": {}, "not": {}, "no": {}, "yes": {},
	"yeah": {}, "ok": {}, "lol": {}, "like": {}, "really": {}, "very": {}, "about": {},
	"im": {}, "i'm": {}, "dont": {}, "don't": {}, "got": {}, "get": {}, "going": {},
	"go": {}, "being": {}, "think": {}, "know": {}, "want": {},
	"some": {}, "all": {}, "them": {}, "they": {}, "there": {}, "here": {},
	"what": {}, "when": {}, "where": {}, "how": {}, "why": {}, "who": {},
}
