package state

// UnitInstance is a live, owned unit on the board. card id refers to a
// catalog.UnitCard; hp and per-turn bonuses are mutable match state, the
// card itself never is.
type UnitInstance struct {
	ID     InstanceID
	CardID string
	Owner  Seat
	TileID TileID
	HP     int

	// Per-turn flags, cleared at the owner's Standby.
	HasMoved        bool
	HasAttacked     bool
	DevelopmentRest bool

	// Per-turn bonuses, cleared at the owner's Standby.
	SpeedBonus   int
	DefenseBonus int
	MeleeBonus   int

	// CannotBeRangedTargeted is a standing flag (card-derived or granted
	// by an ability), not a per-turn bonus.
	CannotBeRangedTargeted bool

	// TerraformUsed is a per-instance "once per game" flag.
	TerraformUsed bool
}

// ResetTurnFlags clears the per-turn action flags and bonuses. Called on
// every unit belonging to the active seat at the start of that seat's
// Standby. DevelopmentRest is left untouched here; the dispatcher's
// Standby step clears it separately.
func (u *UnitInstance) ResetTurnFlags() {
	u.HasMoved = false
	u.HasAttacked = false
	u.SpeedBonus = 0
	u.DefenseBonus = 0
	u.MeleeBonus = 0
}

// EffectiveSpeed returns the card's base speed plus this turn's bonus.
func (u *UnitInstance) EffectiveSpeed(cardSpeed int) int {
	return cardSpeed + u.SpeedBonus
}

// EffectiveDefense returns the card's base defense plus this turn's bonus.
func (u *UnitInstance) EffectiveDefense(cardDefense int) int {
	return cardDefense + u.DefenseBonus
}

// EffectiveMelee returns the card's base melee attack plus this turn's bonus.
func (u *UnitInstance) EffectiveMelee(cardMelee int) int {
	return cardMelee + u.MeleeBonus
}

// IsDestroyed reports whether the unit's hp has dropped to or below zero.
// A destroyed unit is removed from the match, never left in this state.
func (u *UnitInstance) IsDestroyed() bool {
	return u.HP <= 0
}
