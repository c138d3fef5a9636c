package jointstate

import (
	"github.com/katalvlaran/psjs/pointmut"
)

// paramSizes resolves the slice sizes of both submodels.
func paramSizes(op, pmModel string, igcModel IGCModel) (numPM, numIGC int, err error) {
	spec, err := pointmut.Lookup(pmModel)
	if err != nil {
		return 0, 0, configErrorf(op, ErrUnsupportedPointMutation, "%q", pmModel)
	}
	igc, ok := igcModels[igcModel]
	if !ok {
		return 0, 0, configErrorf(op, ErrUnsupportedIGC, "%q", string(igcModel))
	}

	return spec.NumParams, igc.numParams, nil
}

// Partition splits the combined log-scale vector into its point-mutation and
// IGC slices. The returned slices are copies.
//
// Errors (all match ErrConfiguration):
//   - ErrUnsupportedPointMutation, ErrUnsupportedIGC for unknown names.
//   - ErrParamLength when len(x) differs from the sum of both slice sizes.
func Partition(x []float64, pmModel string, igcModel IGCModel) (xPM, xIGC []float64, err error) {
	numPM, numIGC, err := paramSizes("Partition", pmModel, igcModel)
	if err != nil {
		return nil, nil, err
	}
	if len(x) != numPM+numIGC {
		return nil, nil, configErrorf("Partition", ErrParamLength,
			"got %d, want %d (%s) + %d (%s)", len(x), numPM, pmModel, numIGC, igcModel)
	}
	xPM = append([]float64(nil), x[:numPM]...)
	xIGC = append([]float64(nil), x[numPM:]...)

	return xPM, xIGC, nil
}

// PartitionForce splits a global force map at offset numPM. Keys below the
// offset go to the point-mutation map unchanged; the rest are re-indexed by
// subtracting numPM. An empty side is returned as nil.
func PartitionForce(force ForceMap, numPM int) (pmForce, igcForce ForceMap) {
	for key, v := range force {
		if key < numPM {
			if pmForce == nil {
				pmForce = ForceMap{}
			}
			pmForce[key] = v
			continue
		}
		if igcForce == nil {
			igcForce = ForceMap{}
		}
		igcForce[key-numPM] = v
	}

	return pmForce, igcForce
}
