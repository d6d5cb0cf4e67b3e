package domain

import "slices"

// Segment is one leg of the movement trail.
type Segment struct {
	Start LatLng `json:"start"`
	End   LatLng `json:"end"`
}

// Player is the single player of a session.
type Player struct {
	Position  LatLng
	Inventory []Coin
	Trail     []Segment
}

// NewPlayer creates a player standing at pos with nothing collected.
func NewPlayer(pos LatLng) *Player {
	return &Player{Position: pos}
}

// MoveTo relocates the player and records the leg on the trail.
func (p *Player) MoveTo(pos LatLng) {
	p.Trail = append(p.Trail, Segment{Start: p.Position, End: pos})
	p.Position = pos
}

// Take appends coin to the inventory.
func (p *Player) Take(coin Coin) {
	p.Inventory = append(p.Inventory, coin)
}

// Drain empties the inventory and returns what it held.
func (p *Player) Drain() []Coin {
	coins := p.Inventory
	p.Inventory = nil
	return coins
}

// InventoryTotal sums the values of the carried coins.
func (p *Player) InventoryTotal() int {
	return TotalValue(p.Inventory)
}

// TrailPoints returns the visited positions: the start of the first leg
// followed by the end of every leg.
func (p *Player) TrailPoints() []LatLng {
	if len(p.Trail) == 0 {
		return nil
	}
	points := make([]LatLng, 0, len(p.Trail)+1)
	points = append(points, p.Trail[0].Start)
	for _, s := range p.Trail {
		points = append(points, s.End)
	}
	return points
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	return &Player{
		Position:  p.Position,
		Inventory: slices.Clone(p.Inventory),
		Trail:     slices.Clone(p.Trail),
	}
}
