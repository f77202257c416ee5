package mages

import "fmt"

type Element int

const (
	Fire Element = iota + 1
	Water
	Earth
)

type descriptor struct {
	name       string
	multiplier int
	verb       string
}

var elements = map[Element]descriptor{
	Fire:  {"Fire", 10, "casts a fireball at"},
	Water: {"Water", 8, "casts a water blast at"},
	Earth: {"Earth", 12, "casts an earth spike at"},
}

func (e Element) String() string {
	if d, ok := elements[e]; ok {
		return d.name
	}
	return "Unknown"
}

// Multiplier is the damage dealt per magic level. Unknown elements deal none.
func (e Element) Multiplier() int {
	return elements[e].multiplier
}

func (e Element) attackMsg(attacker, target string, dmg int) string {
	verb := elements[e].verb
	if verb == "" {
		verb = "flails at"
	}
	return fmt.Sprintf("%s %s %s dealing %d damage.", attacker, verb, target, dmg)
}

// RosterEntry is one line of the mage selection menu.
type RosterEntry struct {
	Choice  int
	Element Element
	Label   string
}

var Roster = []RosterEntry{
	{1, Fire, "Fire Mage"},
	{2, Water, "Water Mage"},
	{3, Earth, "Earth Mage"},
}

func ElementForChoice(n int) (Element, bool) {
	for _, v := range Roster {
		if v.Choice == n {
			return v.Element, true
		}
	}
	return 0, false
}
