package jointstate

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/psjs/pointmut"
)

// Model is an immutable parameter snapshot of the pair-site joint-state model
// of two paralogs. It owns the combined log-scale vector, its two slices and
// the point-mutation collaborator built from the point-mutation slice.
type Model struct {
	pmModel  string
	igcModel IGCModel
	igc      igcSpec

	x     []float64 // combined vector as given
	xPM   []float64 // point-mutation slice (before force)
	xIGC  []float64 // IGC slice (after force)
	theta []float64 // exp(xIGC)

	force    ForceMap // global constraints (nil when none)
	igcForce ForceMap // IGC part re-indexed from 0 (nil when none)

	pm       *pointmut.Model
	shape    StateSpaceShape
	alphabet int

	logger zerolog.Logger
}

// New builds a model snapshot from the combined log-scale vector x.
// Implementation:
//   - Stage 1: partition x and the force map into point-mutation and IGC parts.
//   - Stage 2: build the point-mutation collaborator and the homogeneous
//     four-coordinate state space shape.
//   - Stage 3: re-apply x through Update so the stored slices and the
//     collaborator rates are derived from one vector.
//
// Errors:
//   - ConfigError (ErrConfiguration) with ErrUnsupportedPointMutation,
//     ErrUnsupportedIGC, ErrParamLength or ErrForceIndex.
//   - ErrInvalidParameter / pointmut.ErrInvalidParameter for out-of-domain values.
func New(x []float64, pmModel string, igcModel IGCModel, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)

	xPM, _, err := Partition(x, pmModel, igcModel)
	if err != nil {
		return nil, err
	}
	igc := igcModels[igcModel]
	pmForce, igcForce := PartitionForce(o.force, len(xPM))
	for key := range igcForce {
		if key >= igc.numParams {
			return nil, configErrorf("New", ErrForceIndex, "index %d >= %d", key+len(xPM), len(x))
		}
	}
	pm, err := pointmut.New(pmModel, xPM, pmForce)
	if err != nil {
		if errors.Is(err, pointmut.ErrForceIndex) {
			return nil, configErrorf("New", ErrForceIndex, "%v", err)
		}
		return nil, fmt.Errorf("New: %w", err)
	}
	shape := NewShape(pm.Alphabet())
	alphabet, err := shape.Alphabet()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	base := &Model{
		pmModel:  pmModel,
		igcModel: igcModel,
		igc:      igc,
		force:    o.force,
		igcForce: igcForce,
		pm:       pm,
		shape:    shape,
		alphabet: alphabet,
		logger:   o.logger,
	}

	return base.Update(x)
}

// Update returns a new snapshot for the combined vector x and rebuilds the
// point-mutation collaborator. The receiver is never modified, so callers
// holding it keep observing the old parameters.
//
// Errors:
//   - ConfigError with ErrParamLength.
//   - ErrInvalidParameter for IGC values outside their domain.
//   - pointmut errors for invalid point-mutation values.
func (m *Model) Update(x []float64) (*Model, error) {
	xPM, xIGC, err := Partition(x, m.pmModel, m.igcModel)
	if err != nil {
		return nil, err
	}
	for key, v := range m.igcForce {
		xIGC[key] = v
	}
	theta := make([]float64, len(xIGC))
	for i, v := range xIGC {
		theta[i] = math.Exp(v)
	}
	if !m.igc.validate(theta) {
		return nil, fmt.Errorf("Update: %s %v: %w", m.igcModel, theta, ErrInvalidParameter)
	}
	pm, err := m.pm.Update(xPM)
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}

	next := *m
	next.x = slices.Clone(x)
	next.xPM = xPM
	next.xIGC = xIGC
	next.theta = theta
	next.pm = pm
	next.logger.Debug().
		Str("point_mutation", m.pmModel).
		Str("igc", string(m.igcModel)).
		Floats64("x", next.x).
		Msg("joint-state model updated")

	return &next, nil
}

// PointMutationModel returns the point-mutation model name.
func (m *Model) PointMutationModel() string { return m.pmModel }

// IGCModel returns the IGC parameterization name.
func (m *Model) IGCModel() IGCModel { return m.igcModel }

// Params returns a copy of the combined log-scale vector.
func (m *Model) Params() []float64 { return slices.Clone(m.x) }

// PointMutationParams returns a copy of the point-mutation slice.
func (m *Model) PointMutationParams() []float64 { return slices.Clone(m.xPM) }

// IGCParams returns a copy of the effective (forced) IGC slice.
func (m *Model) IGCParams() []float64 { return slices.Clone(m.xIGC) }

// IGCForce returns a copy of the IGC force map, nil when unconstrained.
func (m *Model) IGCForce() ForceMap {
	if m.igcForce == nil {
		return nil
	}
	out := make(ForceMap, len(m.igcForce))
	for k, v := range m.igcForce {
		out[k] = v
	}

	return out
}

// PointMutation returns the point-mutation collaborator of this snapshot.
func (m *Model) PointMutation() *pointmut.Model { return m.pm }

// Shape returns a copy of the state space shape.
func (m *Model) Shape() StateSpaceShape { return slices.Clone(m.shape) }

// Alphabet returns the common alphabet size of all four coordinates.
func (m *Model) Alphabet() int { return m.alphabet }
