package jointstate

import (
	"fmt"
)

// EventKind classifies a transition by the IGC term it receives.
type EventKind int

const (
	// EventIncompatible is not a single admissible event.
	EventIncompatible EventKind = iota
	// EventMutation changes one coordinate that IGC cannot produce.
	EventMutation
	// EventIGCOrigin changes one coordinate to the other paralog's value
	// while the source paralog differs across the two sites: only a tract
	// excluding the other site explains it (ExcludesN).
	EventIGCOrigin
	// EventIGCHomogeneous changes one coordinate to the other paralog's value
	// while the source paralog is homogeneous across the two sites: any tract
	// starting at the site explains it (ExcludesN + IncludesN).
	EventIGCHomogeneous
	// EventTwoSiteCopy rewrites both sites of one paralog (IncludesN only).
	EventTwoSiteCopy
)

var eventNames = [...]string{
	EventIncompatible:   "incompatible",
	EventMutation:       "mutation",
	EventIGCOrigin:      "igc-origin",
	EventIGCHomogeneous: "igc-homogeneous",
	EventTwoSiteCopy:    "two-site-copy",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}

	return eventNames[k]
}

// classify returns the event kind and, for single-coordinate events, the
// changed position.
func classify(t Transition) (EventKind, int) {
	from, to := t.From, t.To
	pos, n := diffPositions(from, to)
	switch n {
	case 1:
		p := pos[0]
		nb := OtherPositions(p)
		copied := to[p] == from[nb.OtherParalogSameSite]
		homogeneous := from[nb.SameParalogOtherSite] == from[nb.OtherParalogOtherSite]
		switch {
		case copied && homogeneous:
			return EventIGCHomogeneous, p
		case copied && !homogeneous:
			return EventIGCOrigin, p
		default:
			return EventMutation, p
		}
	case 2:
		if isTractCopy(from, to, pos[0], pos[1]) {
			return EventTwoSiteCopy, -1
		}
	}

	return EventIncompatible, -1
}

// Classify returns the event kind of t. Incompatible transitions classify as
// EventIncompatible.
func Classify(t Transition) EventKind {
	k, _ := classify(t)
	return k
}

// checkSymbols validates every coordinate of t against the alphabet.
func (m *Model) checkSymbols(t Transition) error {
	for i := 0; i < NumCoords; i++ {
		if t.From[i] < 0 || t.From[i] >= m.alphabet || t.To[i] < 0 || t.To[i] >= m.alphabet {
			return fmt.Errorf("%v: %w", t, ErrSymbolOutOfRange)
		}
	}

	return nil
}

// TractRates returns the closed-form IGC rates at separation n.
//
// Errors:
//   - ErrInvalidSeparation when n < 1.
//   - ConfigError with ErrUnsupportedIGC when the parameterization has no rates.
func (m *Model) TractRates(n int) (TractRates, error) {
	if n < 1 {
		return TractRates{}, fmt.Errorf("TractRates(%d): %w", n, ErrInvalidSeparation)
	}
	spec, ok := igcModels[m.igcModel]
	if !ok {
		return TractRates{}, configErrorf("TractRates", ErrUnsupportedIGC, "%q", string(m.igcModel))
	}

	return spec.tract(m.theta, n), nil
}

// TransitionRate returns the rate of the compatible transition t at site
// separation n, or its IGC-attributable proportion when proportion is set.
//
// Single-coordinate change at pos: q_mut(from[pos] → to[pos]) plus
//   - ExcludesN + IncludesN when the new value copies the other paralog at the
//     same site and the source paralog is homogeneous across both sites,
//   - ExcludesN when it copies the other paralog but the source paralog is
//     heterogeneous,
//   - nothing otherwise.
//
// Two-coordinate tract copy: IncludesN, with no mutation term; proportion 1.
//
// A single-coordinate transition with zero total rate has proportion 0.
//
// Errors:
//   - ErrInvalidSeparation, ErrSymbolOutOfRange, ErrIncompatibleTransition,
//     ConfigError with ErrUnsupportedIGC.
func (m *Model) TransitionRate(t Transition, n int, proportion bool) (float64, error) {
	if err := m.checkSymbols(t); err != nil {
		return 0, err
	}
	tr, err := m.TractRates(n)
	if err != nil {
		return 0, err
	}
	kind, pos := classify(t)

	var qMut, qIGC float64
	switch kind {
	case EventTwoSiteCopy:
		if proportion {
			return 1.0, nil
		}
		return tr.IncludesN, nil
	case EventIGCHomogeneous:
		qIGC = tr.ExcludesN + tr.IncludesN
	case EventIGCOrigin:
		qIGC = tr.ExcludesN
	case EventMutation:
		qIGC = 0
	default:
		return 0, fmt.Errorf("TransitionRate %v: %w", t, ErrIncompatibleTransition)
	}
	if qMut, err = m.pm.Rate(t.From[pos], t.To[pos]); err != nil {
		return 0, fmt.Errorf("TransitionRate %v: %w", t, err)
	}
	if !proportion {
		return qMut + qIGC, nil
	}
	if total := qMut + qIGC; total > 0 {
		return qIGC / total, nil
	}

	return 0, nil
}

// Rate is TransitionRate without the proportion flag.
func (m *Model) Rate(t Transition, n int) (float64, error) {
	return m.TransitionRate(t, n, false)
}

// Proportion is TransitionRate with the proportion flag.
func (m *Model) Proportion(t Transition, n int) (float64, error) {
	return m.TransitionRate(t, n, true)
}
