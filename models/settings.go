package models

import "github.com/golang/geo/r3"

// Top-level keys of the settings mapping consumed by the simulation
// pipeline. The names are a contract and must not change.
const (
	KeyCamHz         = "cam_hz"
	KeyCamCCDWH      = "cam_CCD_WH"
	KeyCamCCDPixSize = "cam_CCD_pixsize"
	KeyCamWH         = "cam_WH"
	KeyCamFocal      = "cam_focal"
	KeyCamGain       = "cam_gain"
	KeyCamFNumber    = "cam_f_number"
	KeyCamFocusPlane = "cam_focus_plane"
	KeyCamExposure   = "cam_exposure"
	KeyCamPos        = "cam_pos"
	KeyCamLookAt     = "cam_lookat"
	KeyCamUp         = "cam_up"
	KeySequences     = "sequences"

	KeySimMode  = "sim_mode"
	KeySimSteps = "sim_steps"
)

// SettingsKeys lists the top-level keys in declaration order.
var SettingsKeys = []string{
	KeyCamHz, KeyCamCCDWH, KeyCamCCDPixSize, KeyCamWH, KeyCamFocal,
	KeyCamGain, KeyCamFNumber, KeyCamFocusPlane, KeyCamExposure,
	KeyCamPos, KeyCamLookAt, KeyCamUp, KeySequences,
}

// Settings holds the camera model and per-sequence simulation overrides.
//
// Intrinsics:
//   - CamHz: frame rate (FPS)
//   - CamCCDWH: sensor width and height (pixels)
//   - CamCCDPixSize: sensor pixel pitch (µm)
//   - CamWH: output image width and height (pixels)
//   - CamFocal: focal length (mm)
//   - CamFNumber, CamFocusPlane (m), CamExposure (ms), CamGain
//
// Extrinsics use a right-handed frame, in meters.
type Settings struct {
	CamHz         int
	CamCCDWH      [2]int
	CamCCDPixSize float64
	CamWH         [2]int
	CamFocal      int
	CamGain       int
	CamFNumber    float64
	CamFocusPlane float64
	CamExposure   int

	CamPos    r3.Vector
	CamLookAt r3.Vector
	CamUp     r3.Vector

	Sequences map[string]SequenceOverride
}

// SequenceOverride replaces any top-level setting for one sequence.
// SimSteps maps a step name to one value per simulated frame.
type SequenceOverride struct {
	SimMode  string
	SimSteps map[string][]float64
}

// Map renders the override with its contract key names.
func (o SequenceOverride) Map() map[string]any {
	steps := make(map[string]any, len(o.SimSteps))
	for name, values := range o.SimSteps {
		steps[name] = append([]float64(nil), values...)
	}
	return map[string]any{
		KeySimMode:  o.SimMode,
		KeySimSteps: steps,
	}
}

// Clone returns a deep copy of the override.
func (o SequenceOverride) Clone() SequenceOverride {
	c := SequenceOverride{SimMode: o.SimMode}
	if o.SimSteps != nil {
		c.SimSteps = make(map[string][]float64, len(o.SimSteps))
		for name, values := range o.SimSteps {
			c.SimSteps[name] = append([]float64(nil), values...)
		}
	}
	return c
}

// Clone returns a deep copy, safe to mutate.
func (s Settings) Clone() Settings {
	c := s
	if s.Sequences != nil {
		c.Sequences = make(map[string]SequenceOverride, len(s.Sequences))
		for id, o := range s.Sequences {
			c.Sequences[id] = o.Clone()
		}
	}
	return c
}

// Map renders the settings as the nested mapping handed to the simulation
// pipeline. Every call allocates a fresh mapping.
func (s Settings) Map() map[string]any {
	m := s.defaults()
	seqs := make(map[string]any, len(s.Sequences))
	for id, o := range s.Sequences {
		seqs[id] = o.Map()
	}
	m[KeySequences] = seqs
	return m
}

// ForSequence returns the top-level settings with the override for id laid
// over them. The sequences table is not part of the result. ok is false
// when id has no override, in which case the defaults are returned.
func (s Settings) ForSequence(id string) (m map[string]any, ok bool) {
	m = s.defaults()
	o, ok := s.Sequences[id]
	if !ok {
		return m, false
	}
	for k, v := range o.Map() {
		m[k] = v
	}
	return m, true
}

func (s Settings) defaults() map[string]any {
	return map[string]any{
		KeyCamHz:         s.CamHz,
		KeyCamCCDWH:      []int{s.CamCCDWH[0], s.CamCCDWH[1]},
		KeyCamCCDPixSize: s.CamCCDPixSize,
		KeyCamWH:         []int{s.CamWH[0], s.CamWH[1]},
		KeyCamFocal:      s.CamFocal,
		KeyCamGain:       s.CamGain,
		KeyCamFNumber:    s.CamFNumber,
		KeyCamFocusPlane: s.CamFocusPlane,
		KeyCamExposure:   s.CamExposure,
		KeyCamPos:        vec(s.CamPos),
		KeyCamLookAt:     vec(s.CamLookAt),
		KeyCamUp:         vec(s.CamUp),
	}
}

func vec(v r3.Vector) []float64 { return []float64{v.X, v.Y, v.Z} }
