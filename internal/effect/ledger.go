package effect

// Effect is one kind of modifier and its stack count.
type Effect struct {
	Kind   Kind
	Stacks int
}

// Change reports a stack count that moved during Fire.
type Change struct {
	Kind   Kind
	Before int
	After  int
}

// Ledger is the ordered list of effects on one creature.
type Ledger struct {
	Active []Effect
}

// NewLedger returns a ledger holding effects in the given order.
func NewLedger(effects ...Effect) *Ledger {
	return &Ledger{Active: append([]Effect(nil), effects...)}
}

func (l *Ledger) find(k Kind) int {
	for i, e := range l.Active {
		if e.Kind == k {
			return i
		}
	}
	return -1
}

// Stacks returns the stack count of k, or 0 when absent.
func (l *Ledger) Stacks(k Kind) int {
	if i := l.find(k); i >= 0 {
		return l.Active[i].Stacks
	}
	return 0
}

// Has reports whether the ledger carries k with at least one stack.
func (l *Ledger) Has(k Kind) bool { return l.Stacks(k) > 0 }

// Add stacks n more of k, appending it when absent. Virtues are raised to
// their floor on first application.
func (l *Ledger) Add(k Kind, n int) int {
	if n <= 0 {
		return l.Stacks(k)
	}
	i := l.find(k)
	if i < 0 {
		l.Active = append(l.Active, Effect{Kind: k, Stacks: max(n, RuleFor(k).Floor)})
		return l.Active[len(l.Active)-1].Stacks
	}
	l.Active[i].Stacks += n
	return l.Active[i].Stacks
}

// Gain adds one stack to k if the creature already carries it. There is no
// ceiling.
func (l *Ledger) Gain(k Kind) int {
	i := l.find(k)
	if i < 0 {
		return 0
	}
	l.Active[i].Stacks++
	return l.Active[i].Stacks
}

// Decay removes one stack from k, clamped to the kind's floor. Kinds with a
// floor of zero are dropped from the ledger once they reach it.
func (l *Ledger) Decay(k Kind) int {
	i := l.find(k)
	if i < 0 {
		return 0
	}
	floor := RuleFor(k).Floor
	l.Active[i].Stacks = ReduceDownTo(floor, l.Active[i].Stacks, 1)
	n := l.Active[i].Stacks
	if n == 0 {
		l.Active = append(l.Active[:i], l.Active[i+1:]...)
	}
	return n
}

// Fire applies trigger t to every carried effect that listens for it and
// returns the stack counts that changed, in ledger order.
func (l *Ledger) Fire(t Trigger) []Change {
	if t == Never {
		return nil
	}
	var changes []Change
	// Snapshot kinds first: Decay may remove entries.
	kinds := make([]Kind, len(l.Active))
	for i, e := range l.Active {
		kinds[i] = e.Kind
	}
	for _, k := range kinds {
		r := RuleFor(k)
		before := l.Stacks(k)
		var after int
		switch t {
		case r.GainOn:
			after = l.Gain(k)
		case r.DecayOn:
			after = l.Decay(k)
		default:
			continue
		}
		if after != before {
			changes = append(changes, Change{Kind: k, Before: before, After: after})
		}
	}
	return changes
}
