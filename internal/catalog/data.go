package catalog

// seedCards is the built-in card set, used when no catalog file is
// configured and as the default deck contents in tests. A real deployment
// is expected to supply its own file via LoadFile; this set only needs to
// be rich enough to exercise every rule in the engine (tiny/large sizes,
// ranged units, all three blitz timings, a capturable structure).

var seedCards = []Card{
	UnitCard{
		base:         base{CardID: "scout", CardName: "Scout", CardCost: 1, CardCostElement: ElementNeutral},
		HP:           2,
		Defense:      3,
		MeleeAttack:  1,
		RangedAttack: 0,
		RangedRange:  0,
		Size:         SizeTiny,
		Speed:        3,
		Element:      ElementNeutral,
		Ability:      "",
	},
	UnitCard{
		base:         base{CardID: "footman", CardName: "Footman", CardCost: 2, CardCostElement: ElementNeutral},
		HP:           4,
		Defense:      5,
		MeleeAttack:  3,
		RangedAttack: 0,
		RangedRange:  0,
		Size:         SizeNormal,
		Speed:        2,
		Element:      ElementNeutral,
		Ability:      "",
	},
	UnitCard{
		base:         base{CardID: "archer", CardName: "Archer", CardCost: 2, CardCostElement: ElementNeutral},
		HP:           3,
		Defense:      3,
		MeleeAttack:  1,
		RangedAttack: 2,
		RangedRange:  2,
		Size:         SizeNormal,
		Speed:        2,
		Element:      ElementNeutral,
		Ability:      "",
	},
	UnitCard{
		base:         base{CardID: "fire_elemental", CardName: "Fire Elemental", CardCost: 3, CardCostElement: ElementFire},
		HP:           6,
		Defense:      4,
		MeleeAttack:  4,
		RangedAttack: 3,
		RangedRange:  2,
		Size:         SizeLarge,
		Speed:        2,
		Element:      ElementFire,
		Ability:      "burn_on_hit",
	},
	UnitCard{
		base:         base{CardID: "tide_colossus", CardName: "Tide Colossus", CardCost: 5, CardCostElement: ElementWater},
		HP:           12,
		Defense:      6,
		MeleeAttack:  6,
		RangedAttack: 0,
		RangedRange:  0,
		Size:         SizeExtraLarge,
		Speed:        1,
		Element:      ElementWater,
		Ability:      "cannot_be_ranged_targeted",
	},
	UnitCard{
		base:         base{CardID: "geomancer", CardName: "Geomancer", CardCost: 3, CardCostElement: ElementNeutral},
		HP:           4,
		Defense:      3,
		MeleeAttack:  1,
		RangedAttack: 0,
		RangedRange:  0,
		Size:         SizeNormal,
		Speed:        2,
		Element:      ElementNeutral,
		Ability:      "terraform",
	},
	BlitzCard{
		base:       base{CardID: "fireball", CardName: "Fireball", CardCost: 2, CardCostElement: ElementFire},
		Timing:     TimingInstant,
		BehaviorID: "deal_damage",
	},
	BlitzCard{
		base:       base{CardID: "counterspell", CardName: "Counterspell", CardCost: 1, CardCostElement: ElementNeutral},
		Timing:     TimingReaction,
		BehaviorID: "negate_blitz",
	},
	BlitzCard{
		base:       base{CardID: "hurricane", CardName: "Hurricane", CardCost: 4, CardCostElement: ElementWater},
		Timing:     TimingSlow,
		BehaviorID: "convert_region_to_water",
	},
	StructureCard{
		base:             base{CardID: "watchtower", CardName: "Watchtower", CardCost: 3, CardCostElement: ElementNeutral},
		EffectID:         "vision",
		PlacementElement: ElementNeutral,
		HP:               10,
		CaptureThreshold: 2,
	},
	StructureCard{
		base:             base{CardID: "forge", CardName: "Forge", CardCost: 3, CardCostElement: ElementFire},
		EffectID:         "essence_income",
		PlacementElement: ElementFire,
		HP:               10,
		CaptureThreshold: 2,
	},
}

// Load builds the process-wide registry: the built-in seed set, optionally
// overlaid with a deployment-supplied JSON file. Call once at start-up;
// the returned Registry is read-only from then on.
func Load(path string) (*Registry, error) {
	if path == "" {
		reg := NewRegistry()
		if err := reg.MergeSeed(); err != nil {
			return nil, err
		}
		return reg, nil
	}
	return LoadFile(path)
}
