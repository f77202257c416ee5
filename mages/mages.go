package mages

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lpbeast/mageduel/combat"
	"github.com/lpbeast/mageduel/notify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const StartingHealth = 100

var ErrDefeated = errors.New("already defeated")

type Mage struct {
	ID         string  `json:"ID"`
	Name       string  `json:"Name"`
	Element    Element `json:"Element"`
	MagicLevel int     `json:"MagicLevel"`
	Health     int     `json:"Health"`

	events notify.Channel
}

func New(name string, el Element, level int) *Mage {
	return &Mage{
		ID:         uuid.New().String(),
		Name:       cases.Title(language.English).String(name),
		Element:    el,
		MagicLevel: level,
		Health:     StartingHealth,
	}
}

func (m *Mage) Damage() int {
	return m.Element.Multiplier() * m.MagicLevel
}

// Attack refuses to do anything if either side is already down. The target
// defends before the attack itself is announced, so its message comes first.
func (m *Mage) Attack(target combat.Combatant) error {
	if !m.IsAlive() {
		return fmt.Errorf("%s cannot attack: %w", m.Name, ErrDefeated)
	}
	if target == nil {
		return combat.ErrNoCombatant
	}
	if !target.IsAlive() {
		return fmt.Errorf("%s cannot be attacked: %w", target.GetName(), ErrDefeated)
	}
	dmg := m.Damage()
	target.Defend(dmg)
	m.events.Publish(notify.Event{
		Kind:    notify.Attack,
		Source:  m.ID,
		Name:    m.Name,
		Message: m.Element.attackMsg(m.Name, target.GetName(), dmg),
	})
	return nil
}

// Defend takes the full hit. Health is not clamped and may go below zero.
func (m *Mage) Defend(dmg int) {
	m.Health -= dmg
	m.events.Publish(notify.Event{
		Kind:    notify.Defend,
		Source:  m.ID,
		Name:    m.Name,
		Message: fmt.Sprintf("%s takes %d damage. Health is now %d.", m.Name, dmg, m.Health),
	})
}

func (m *Mage) IsAlive() bool {
	return m.Health > 0
}

func (m *Mage) GetName() string {
	return m.Name
}

func (m *Mage) GetHP() int {
	return m.Health
}

func (m *Mage) OnAttack(o notify.Observer) {
	m.events.Subscribe(notify.Attack, o)
}

func (m *Mage) OnDefend(o notify.Observer) {
	m.events.Subscribe(notify.Defend, o)
}
