package entity

import (
	"errors"
	"fmt"
)

// ActivePartyLimit is the most members that can be active at once.
const ActivePartyLimit = 6

// ErrPartyFull is returned when adding an active member to a full party.
var ErrPartyFull = errors.New("active party is full")

// Party is the ordered roster of every caught creature.
type Party struct {
	Members []*Member
}

// NewParty creates a party from members in order.
func NewParty(members ...*Member) *Party {
	return &Party{Members: members}
}

// Add appends a member. Active members are rejected once the party is full.
// Nicknames need not be unique.
func (p *Party) Add(m *Member) error {
	if m.IsActive() && p.ActiveCount() >= ActivePartyLimit {
		return fmt.Errorf("add %s: %w", m.Nickname, ErrPartyFull)
	}
	p.Members = append(p.Members, m)
	return nil
}

// Active returns the active members in roster order.
func (p *Party) Active() []*Member {
	active := make([]*Member, 0, ActivePartyLimit)
	for _, m := range p.Members {
		if m.IsActive() {
			active = append(active, m)
		}
	}
	return active
}

// ActiveCount returns the number of active members.
func (p *Party) ActiveCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsActive() {
			count++
		}
	}
	return count
}

// Find returns the first member with the given nickname, or nil.
func (p *Party) Find(nickname string) *Member {
	for _, m := range p.Members {
		if m.Nickname == nickname {
			return m
		}
	}
	return nil
}
