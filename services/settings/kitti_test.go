package settings

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/smartystreets/goconvey/convey"

	"kitti-paths/models"
)

func TestKITTI(t *testing.T) {
	convey.Convey("KITTI settings table", t, func() {
		s := KITTI()

		convey.Convey("carries the camera defaults", func() {
			convey.So(s.CamHz, convey.ShouldEqual, 10)
			convey.So(s.CamCCDWH, convey.ShouldResemble, [2]int{1242, 375})
			convey.So(s.CamWH, convey.ShouldResemble, [2]int{1242, 375})
			convey.So(s.CamCCDPixSize, convey.ShouldEqual, 4.65)
			convey.So(s.CamFocal, convey.ShouldEqual, 6)
			convey.So(s.CamGain, convey.ShouldEqual, 20)
			convey.So(s.CamFNumber, convey.ShouldEqual, 6.0)
			convey.So(s.CamFocusPlane, convey.ShouldEqual, 6.0)
			convey.So(s.CamExposure, convey.ShouldEqual, 2)
			convey.So(s.CamPos, convey.ShouldResemble, r3.Vector{X: 1.5, Y: 1.5, Z: 0.3})
			convey.So(s.CamLookAt, convey.ShouldResemble, r3.Vector{X: 1.5, Y: 1.5, Z: -1})
			convey.So(s.CamUp, convey.ShouldResemble, r3.Vector{X: 0, Y: 1, Z: 0})
		})

		convey.Convey("has one steps override per known sequence", func() {
			want := map[string]int{
				DataObject: 101,
				Drive0032:  389,
				Drive0056:  293,
				Drive0071:  1058,
				Drive0117:  659,
			}
			convey.So(s.Sequences, convey.ShouldHaveLength, len(want))
			for id, n := range want {
				o, ok := s.Sequences[id]
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(o.SimMode, convey.ShouldEqual, SimModeSteps)
				convey.So(o.SimSteps[CamMotion], convey.ShouldHaveLength, n)
			}
		})

		convey.Convey("ramps the object set from 100 down to 0", func() {
			motion := s.Sequences[DataObject].SimSteps[CamMotion]
			convey.So(motion[0], convey.ShouldEqual, 100.0)
			convey.So(motion[50], convey.ShouldEqual, 50.0)
			convey.So(motion[len(motion)-1], convey.ShouldEqual, 0.0)
		})

		convey.Convey("keeps the recorded curves verbatim", func() {
			convey.So(s.Sequences[Drive0032].SimSteps[CamMotion][0], convey.ShouldEqual, 75.4540)
			convey.So(s.Sequences[Drive0032].SimSteps[CamMotion][388], convey.ShouldEqual, 79.1114)
			convey.So(s.Sequences[Drive0071].SimSteps[CamMotion][0], convey.ShouldEqual, 3.5558)
			convey.So(s.Sequences[Drive0117].SimSteps[CamMotion][0], convey.ShouldEqual, 28.1944)
			convey.So(s.Sequences[Drive0117].SimSteps[CamMotion][658], convey.ShouldEqual, 29.7281)
		})

		convey.Convey("returns an independent value each call", func() {
			s.CamHz = 30
			s.Sequences[Drive0056].SimSteps[CamMotion][0] = -1
			delete(s.Sequences, DataObject)

			fresh := KITTI()
			convey.So(fresh.CamHz, convey.ShouldEqual, 10)
			convey.So(fresh.Sequences[Drive0056].SimSteps[CamMotion][0], convey.ShouldEqual, 61.4892)
			convey.So(fresh.Sequences, convey.ShouldContainKey, DataObject)
		})

		convey.Convey("renders the same top-level keys every call", func() {
			for i := 0; i < 2; i++ {
				m := KITTI().Map()
				convey.So(m, convey.ShouldHaveLength, len(models.SettingsKeys))
				for _, k := range models.SettingsKeys {
					convey.So(m, convey.ShouldContainKey, k)
				}
			}
		})

		convey.Convey("lists override ids sorted", func() {
			convey.So(SequenceIDs(), convey.ShouldResemble, []string{
				DataObject, Drive0032, Drive0056, Drive0071, Drive0117,
			})
		})
	})
}

func TestRamp(t *testing.T) {
	convey.Convey("ramp includes both ends", t, func() {
		convey.So(ramp(3, 0, -1), convey.ShouldResemble, []float64{3, 2, 1, 0})
		convey.So(ramp(0, 2, 1), convey.ShouldResemble, []float64{0, 1, 2})
		convey.So(ramp(0, 1, -1), convey.ShouldBeEmpty)
	})
}
