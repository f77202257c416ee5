package combat

// This exists so that mages and anything else that fights can refer to it, and
// then also implement it, in order to interact with each other in a duel.

type Combatant interface {
	Attack(target Combatant) error
	Defend(dmg int)
	GetName() string
	GetHP() int
	IsAlive() bool
}
