package models

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/smartystreets/goconvey/convey"
)

func sample() Settings {
	return Settings{
		CamHz:    10,
		CamCCDWH: [2]int{4, 3},
		CamWH:    [2]int{4, 3},
		CamPos:   r3.Vector{X: 1, Y: 2, Z: 3},
		CamUp:    r3.Vector{Y: 1},
		Sequences: map[string]SequenceOverride{
			"seq_b": {SimMode: "steps", SimSteps: map[string][]float64{"cam_motion": {2, 1}}},
			"seq_a": {SimMode: "steps", SimSteps: map[string][]float64{"cam_motion": {5}}},
		},
	}
}

func TestSettingsMap(t *testing.T) {
	convey.Convey("Settings.Map", t, func() {
		m := sample().Map()

		convey.So(m[KeyCamHz], convey.ShouldEqual, 10)
		convey.So(m[KeyCamCCDWH], convey.ShouldResemble, []int{4, 3})
		convey.So(m[KeyCamPos], convey.ShouldResemble, []float64{1, 2, 3})
		convey.So(m[KeyCamUp], convey.ShouldResemble, []float64{0, 1, 0})

		seqs := m[KeySequences].(map[string]any)
		convey.So(seqs, convey.ShouldHaveLength, 2)
		a := seqs["seq_a"].(map[string]any)
		convey.So(a[KeySimMode], convey.ShouldEqual, "steps")
		convey.So(a[KeySimSteps], convey.ShouldResemble, map[string]any{"cam_motion": []float64{5}})
	})
}

func TestSettingsForSequence(t *testing.T) {
	convey.Convey("Settings.ForSequence", t, func() {
		s := sample()

		convey.Convey("lays the override over the defaults", func() {
			m, ok := s.ForSequence("seq_b")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(m[KeyCamHz], convey.ShouldEqual, 10)
			convey.So(m[KeySimMode], convey.ShouldEqual, "steps")
			convey.So(m, convey.ShouldNotContainKey, KeySequences)
		})

		convey.Convey("returns the defaults for an unknown id", func() {
			m, ok := s.ForSequence("nope")
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(m, convey.ShouldNotContainKey, KeySimMode)
			convey.So(m, convey.ShouldContainKey, KeyCamWH)
		})

		convey.Convey("does not share slices with the table", func() {
			m, _ := s.ForSequence("seq_b")
			steps := m[KeySimSteps].(map[string]any)["cam_motion"].([]float64)
			steps[0] = 99
			convey.So(s.Sequences["seq_b"].SimSteps["cam_motion"][0], convey.ShouldEqual, 2.0)
		})
	})
}

func TestSettingsClone(t *testing.T) {
	convey.Convey("Settings.Clone is deep", t, func() {
		s := sample()
		c := s.Clone()
		c.Sequences["seq_a"].SimSteps["cam_motion"][0] = 0
		delete(c.Sequences, "seq_b")

		convey.So(s.Sequences["seq_a"].SimSteps["cam_motion"][0], convey.ShouldEqual, 5.0)
		convey.So(s.Sequences, convey.ShouldContainKey, "seq_b")
	})
}

func TestMotionSamples(t *testing.T) {
	convey.Convey("MotionSamples flattens in id order", t, func() {
		got := MotionSamples(sample())
		convey.So(got, convey.ShouldHaveLength, 3)
		convey.So(got[0].CSVRow(), convey.ShouldResemble, []string{"seq_a", "cam_motion", "0", "5"})
		convey.So(got[1].CSVRow(), convey.ShouldResemble, []string{"seq_b", "cam_motion", "0", "2"})
		convey.So(got[2].CSVRow(), convey.ShouldResemble, []string{"seq_b", "cam_motion", "1", "1"})
	})
}
