package combat

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoCombatant = errors.New("duel needs two combatants")
	ErrFinished    = errors.New("duel already finished")
	ErrStalemate   = errors.New("neither combatant can deal damage")
)

type State int

const (
	Ongoing State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Damager is implemented by combatants that can report the damage of their
// next attack. It is only used to refuse duels that could never end.
type Damager interface {
	Damage() int
}

type Result struct {
	Winner Combatant
	Loser  Combatant
	Turns  int
}

// Duel alternates attacks between two combatants until one of them is down.
// The player always swings first.
type Duel struct {
	Player   Combatant
	Opponent Combatant
	// Pause is waited between turns for pacing only; zero means no wait.
	Pause time.Duration
	Sleep func(ctx context.Context, d time.Duration) error

	state    State
	attacker Combatant
	defender Combatant
	turns    int
	winner   Combatant
}

func NewDuel(player, opponent Combatant, pause time.Duration) *Duel {
	return &Duel{
		Player:   player,
		Opponent: opponent,
		Pause:    pause,
		Sleep:    sleep,
		attacker: player,
		defender: opponent,
	}
}

func (d *Duel) State() State {
	return d.state
}

func (d *Duel) Turns() int {
	return d.turns
}

// Step has the current attacker hit the defender once. If the defender goes
// down the duel is over and the retaliation never happens; otherwise the
// roles swap and the pause is waited out.
func (d *Duel) Step(ctx context.Context) error {
	if d.Player == nil || d.Opponent == nil {
		return ErrNoCombatant
	}
	if d.state == Finished {
		return ErrFinished
	}
	if d.attacker == nil || d.defender == nil {
		d.attacker, d.defender = d.Player, d.Opponent
	}

	d.turns++
	if err := d.attacker.Attack(d.defender); err != nil {
		return fmt.Errorf("turn %d: %w", d.turns, err)
	}
	if !d.defender.IsAlive() {
		d.state = Finished
		d.winner = d.attacker
		return nil
	}

	d.attacker, d.defender = d.defender, d.attacker
	wait := d.Sleep
	if wait == nil {
		wait = sleep
	}
	if err := wait(ctx, d.Pause); err != nil {
		return fmt.Errorf("pause after turn %d: %w", d.turns, err)
	}
	return nil
}

// Run steps the duel until it is finished and reports who won.
func (d *Duel) Run(ctx context.Context) (Result, error) {
	if d.Player == nil || d.Opponent == nil {
		return Result{}, ErrNoCombatant
	}
	if stalemate(d.Player, d.Opponent) {
		return Result{}, ErrStalemate
	}
	for d.state == Ongoing {
		if err := d.Step(ctx); err != nil {
			return Result{}, err
		}
	}
	return d.Result(), nil
}

// Result is only meaningful once the duel is finished.
func (d *Duel) Result() Result {
	r := Result{Winner: d.winner, Turns: d.turns}
	switch d.winner {
	case nil:
	case d.Player:
		r.Loser = d.Opponent
	default:
		r.Loser = d.Player
	}
	return r
}

func stalemate(a, b Combatant) bool {
	da, ok := a.(Damager)
	if !ok {
		return false
	}
	db, ok := b.(Damager)
	if !ok {
		return false
	}
	return da.Damage() <= 0 && db.Damage() <= 0
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
