package models

import "strconv"

// MotionSample is one frame of a sequence's simulated step curve.
type MotionSample struct {
	Sequence string  `json:"sequence"`
	Step     string  `json:"step"`
	Frame    int     `json:"frame"`
	Value    float64 `json:"value"`
}

// CSVHeader returns the ordered column names for the motion CSV.
func (MotionSample) CSVHeader() []string {
	return []string{"sequence", "step", "frame", "value"}
}

// CSVRow serialises one sample into a CSV-compatible string slice.
func (m *MotionSample) CSVRow() []string {
	return []string{
		m.Sequence,
		m.Step,
		strconv.Itoa(m.Frame),
		ftoa(m.Value),
	}
}

// MotionSamples flattens every step curve of s into samples, ordered by
// sequence id, then step name, then frame.
func MotionSamples(s Settings) []*MotionSample {
	var out []*MotionSample
	for _, id := range sortedKeys(s.Sequences) {
		o := s.Sequences[id]
		for _, step := range sortedKeys(o.SimSteps) {
			for i, v := range o.SimSteps[step] {
				out = append(out, &MotionSample{Sequence: id, Step: step, Frame: i, Value: v})
			}
		}
	}
	return out
}
