// Package person provides the people model: identity, personality
// traits, temperament, and the social bonds a life accumulates.
package person

// Gender is used for name generation and relative descriptions.
type Gender uint8

const (
	Male   Gender = 0
	Female Gender = 1
)

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// Temperament colors every sentence an NPC produces and several
// interaction outcomes.
type Temperament uint8

const (
	Calm Temperament = iota
	Moody
	Cheerful
	Serious
	Wild
)

var temperamentNames = [...]string{"calm", "moody", "cheerful", "serious", "wild"}

func (t Temperament) String() string {
	if int(t) < len(temperamentNames) {
		return temperamentNames[t]
	}
	return "calm"
}

// Temperaments lists every value, in declaration order.
var Temperaments = [...]Temperament{Calm, Moody, Cheerful, Serious, Wild}

// RelationType classifies a bond to the player character.
type RelationType uint8

const (
	RelParent RelationType = iota
	RelSibling
	RelFriend
	RelPartner
	RelSpouse
	RelChild
	RelEx
	RelClassmate
	RelCoworker
	RelSchoolmate
)

var relationNames = [...]string{
	"parent", "sibling", "friend", "partner", "spouse",
	"child", "ex", "classmate", "coworker", "schoolmate",
}

func (r RelationType) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return "friend"
}

// Traits holds the five personality axes plus temperament.
// All numeric traits are 0-100.
type Traits struct {
	Friendliness int         `json:"friendliness"`
	Humor        int         `json:"humor"`
	Loyalty      int         `json:"loyalty"`
	Intelligence int         `json:"intelligence"`
	Ambition     int         `json:"ambition"`
	Temperament  Temperament `json:"temperament"`
}

// Relationship is a social bond between the player and one NPC.
// Level runs 0-100.
type Relationship struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   RelationType `json:"type"`
	Gender Gender       `json:"gender"`
	Age    int          `json:"age"`
	Level  int          `json:"level"`
	Alive  bool         `json:"alive"`
	Traits Traits       `json:"traits"`
}

// IDGen produces unique identifiers for NPCs and owned objects.
// The default implementation wraps uuid.NewString; tests substitute
// a deterministic counter.
type IDGen func() string
