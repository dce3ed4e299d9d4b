package rules

// Trigger identifies a fixed hook point in a match's lifecycle where
// registered ability/effect hooks are evaluated. This is how the free-form
// ability ids named on unit cards and the behavior/effect ids named on
// blitz and structure cards are actually implemented: each known id
// registers one or more hooks here, instead of an `if card.Ability == "X"`
// chain scattered through the resolvers.
type Trigger int

const (
	BeforeAttack Trigger = iota
	AfterAttack
	BeforeMove
	AfterMove
	OnPhaseStart
	OnPhaseEnd
	OnUnitDestroyed
)

// Context carries everything a hook needs to evaluate its condition and
// apply its effect. Not every field is populated for every trigger — only
// the ones relevant to the current event.
type Context struct {
	ActorID      string // acting unit instance id
	ActorAbility string // the actor's card Ability/BehaviorID/EffectID
	TargetID     string // target instance id or empire token, if applicable
	Phase        string

	Modifiers Modifiers

	Blocked      bool
	BlockMessage string
}

// Modifiers accumulates numeric adjustments hooks contribute; the resolver
// reads these after every hook for the trigger has run.
type Modifiers struct {
	MeleeMod   int
	RangedMod  int
	DefenseMod int
	DamageMod  int // bonus damage applied on top of the base hit, e.g. burn
}

// Merge adds other into m in place.
func (m *Modifiers) Merge(other Modifiers) {
	m.MeleeMod += other.MeleeMod
	m.RangedMod += other.RangedMod
	m.DefenseMod += other.DefenseMod
	m.DamageMod += other.DamageMod
}

// Hook is one registered ability/effect implementation.
type Hook struct {
	AbilityID string // matches a card's Ability/BehaviorID/EffectID field
	Trigger   Trigger
	Condition func(ctx *Context) bool // nil = always applies
	Apply     func(ctx *Context)
}

// Engine stores registered hooks and evaluates them at their trigger
// point. The zero value is not usable; construct with NewEngine.
type Engine struct {
	hooks map[Trigger][]Hook
}

// NewEngine creates an empty hook engine.
func NewEngine() *Engine {
	return &Engine{hooks: make(map[Trigger][]Hook)}
}

// Register adds a hook to the engine.
func (e *Engine) Register(h Hook) {
	e.hooks[h.Trigger] = append(e.hooks[h.Trigger], h)
}

// Evaluate runs every hook registered for trigger whose condition matches
// (or has none) against ctx, returning the same, now-mutated ctx.
func (e *Engine) Evaluate(trigger Trigger, ctx *Context) *Context {
	for _, h := range e.hooks[trigger] {
		if h.Condition != nil && !h.Condition(ctx) {
			continue
		}
		h.Apply(ctx)
	}
	return ctx
}

// HasHooksFor reports whether any hook is registered for trigger.
func (e *Engine) HasHooksFor(trigger Trigger) bool {
	return len(e.hooks[trigger]) > 0
}
