// Package settings builds the camera and simulation settings table for the
// KITTI dataset.
package settings

import (
	"sort"

	"github.com/golang/geo/r3"

	"kitti-paths/models"
)

const (
	// SimModeSteps drives the simulation from per-frame step curves.
	SimModeSteps = "steps"
	// CamMotion is the step curve holding forward speed in km/h.
	CamMotion = "cam_motion"

	// DataObject is the override applied to the object detection set.
	DataObject = "data_object"
	Drive0032  = "raw_data/2011_09_26/2011_09_26_drive_0032_sync"
	Drive0056  = "raw_data/2011_09_26/2011_09_26_drive_0056_sync"
	Drive0071  = "raw_data/2011_09_26/2011_09_26_drive_0071_sync"
	Drive0117  = "raw_data/2011_09_26/2011_09_26_drive_0117_sync"
)

// KITTI returns the settings table for the KITTI camera. Each call returns
// an independent value; callers may mutate it freely.
func KITTI() models.Settings {
	return models.Settings{
		CamHz:         10,
		CamCCDWH:      [2]int{1242, 375},
		CamCCDPixSize: 4.65,
		CamWH:         [2]int{1242, 375},
		CamFocal:      6,
		CamGain:       20,
		CamFNumber:    6.0,
		CamFocusPlane: 6.0,
		CamExposure:   2,

		CamPos:    r3.Vector{X: 1.5, Y: 1.5, Z: 0.3},
		CamLookAt: r3.Vector{X: 1.5, Y: 1.5, Z: -1.},
		CamUp:     r3.Vector{X: 0., Y: 1., Z: 0.},

		Sequences: map[string]models.SequenceOverride{
			// The object set has no speed data; assume a ramp from 100 km/h down to 0.
			DataObject: steps(ramp(100, 0, -1)),
			Drive0032:  steps(drive0032Motion[:]),
			Drive0056:  steps(drive0056Motion[:]),
			Drive0071:  steps(drive0071Motion[:]),
			Drive0117:  steps(drive0117Motion[:]),
		},
	}
}

// SequenceIDs returns the ids that carry an override, sorted.
func SequenceIDs() []string {
	ids := make([]string, 0, 5)
	for id := range KITTI().Sequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func steps(motion []float64) models.SequenceOverride {
	return models.SequenceOverride{
		SimMode: SimModeSteps,
		SimSteps: map[string][]float64{
			CamMotion: append([]float64(nil), motion...),
		},
	}
}

// ramp returns start, start+step, ... down to and including stop.
func ramp(start, stop, step float64) []float64 {
	var out []float64
	for v := start; (step < 0 && v >= stop) || (step > 0 && v <= stop); v += step {
		out = append(out, v)
	}
	return out
}
