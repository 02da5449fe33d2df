package effect

// Kind identifies a stackable modifier carried by a creature.
type Kind uint8

const (
	KindGlamour Kind = iota
	KindPride
	KindDiscipline
	KindGrace
	KindPossession
	KindPolymorph
	KindSync
	KindCharm
	KindMeltdown
	KindOpenDoor
	KindAssignedPatient
	KindStun
)

// Trigger is an event that may gain or decay an effect.
type Trigger uint8

const (
	Never Trigger = iota
	EachTurn
	DealDamage
	TakeDamage
	Move
	CastSoul
)

// Rule fixes how a Kind reacts to triggers and how low it may decay.
type Rule struct {
	Name    string
	Floor   int
	DecayOn Trigger
	GainOn  Trigger
}

// rules is the dispatch table for every Kind. The four virtues are each fed
// by one trigger and drained by another.
var rules = map[Kind]Rule{
	KindDiscipline: {Name: "discipline", Floor: 1, DecayOn: Move, GainOn: TakeDamage},
	KindGlamour:    {Name: "glamour", Floor: 1, DecayOn: DealDamage, GainOn: CastSoul},
	KindGrace:      {Name: "grace", Floor: 1, DecayOn: CastSoul, GainOn: Move},
	KindPride:      {Name: "pride", Floor: 1, DecayOn: TakeDamage, GainOn: DealDamage},

	KindPossession:      {Name: "possession", DecayOn: Never, GainOn: Never},
	KindPolymorph:       {Name: "polymorph", DecayOn: Never, GainOn: Never},
	KindSync:            {Name: "sync", DecayOn: Never, GainOn: Never},
	KindCharm:           {Name: "charm", DecayOn: EachTurn, GainOn: Never},
	KindMeltdown:        {Name: "meltdown", DecayOn: Never, GainOn: EachTurn},
	KindOpenDoor:        {Name: "open-door", DecayOn: Never, GainOn: Never},
	KindAssignedPatient: {Name: "assigned-patient", DecayOn: Never, GainOn: Never},
	KindStun:            {Name: "stun", DecayOn: EachTurn, GainOn: Never},
}

// RuleFor returns the rule for k. Unknown kinds never change and floor at 0.
func RuleFor(k Kind) Rule {
	if r, ok := rules[k]; ok {
		return r
	}
	return Rule{Name: "unknown"}
}

func (k Kind) String() string { return RuleFor(k).Name }

// IsVirtue reports whether k is one of the four floored virtues.
func (k Kind) IsVirtue() bool { return RuleFor(k).Floor > 0 }

// ParseKind maps a config name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, r := range rules {
		if r.Name == name {
			return k, true
		}
	}
	return 0, false
}

// ReduceDownTo subtracts by from current without going below floor.
// A current value already under floor is returned unchanged.
func ReduceDownTo(floor, current, by int) int {
	if current <= floor {
		return current
	}
	if current-by < floor {
		return floor
	}
	return current - by
}
