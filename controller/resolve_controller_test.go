package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"kitti-paths/services/resolve"
	"kitti-paths/services/settings"
	"kitti-paths/utils"
)

func dataset(t *testing.T) string {
	root := t.TempDir()
	for _, d := range []string{
		"data_object/image_2",
		"data_object/calib",
		"raw_data/2011_09_26/2011_09_26_drive_0056_sync/image_02/data",
		"raw_data/2011_09_26/2011_09_26_drive_0071_sync/image_02/data",
	} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "data_object", "calib", "000000.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestResolveController(t *testing.T) {
	convey.Convey("resolve and export", t, func() {
		root := dataset(t)
		out := t.TempDir()

		cfg := utils.DefaultDatasetConfig()
		cfg.Dataset.ImagesRoot = root
		cfg.Dataset.DatasetRoot = root
		cfg.Output.Dir = out

		convey.Convey("writes every output", func() {
			rc := NewResolveController(cfg)
			p, err := rc.Resolve()
			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Sequences, convey.ShouldHaveLength, 3)
			convey.So(rc.Params(), convey.ShouldPointTo, p)

			convey.So(rc.Export(), convey.ShouldBeNil)
			for _, name := range []string{"sequences.csv", "motion.csv", "settings.yaml"} {
				_, err := os.Stat(filepath.Join(out, name))
				convey.So(err, convey.ShouldBeNil)
			}
		})

		convey.Convey("applies the allow-list", func() {
			cfg.Dataset.Sequences = []string{settings.Drive0056}
			rc := NewResolveController(cfg)
			p, err := rc.Resolve()
			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Sequences, convey.ShouldResemble, []string{settings.Drive0056})
		})

		convey.Convey("fails when the allow-list matches nothing", func() {
			cfg.Dataset.Sequences = []string{"raw_data/2011_09_26/2011_09_26_drive_0001_sync"}
			_, err := NewResolveController(cfg).Resolve()
			convey.So(err, convey.ShouldEqual, resolve.ErrNoSequences)
		})

		convey.Convey("skips outputs with empty names", func() {
			cfg.Output.MotionCSV = ""
			cfg.Output.SettingsYAML = ""
			rc := NewResolveController(cfg)
			_, err := rc.Resolve()
			convey.So(err, convey.ShouldBeNil)
			convey.So(rc.Export(), convey.ShouldBeNil)
			_, err = os.Stat(filepath.Join(out, "motion.csv"))
			convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
		})

		convey.Convey("hands out a copy of the settings table", func() {
			rc := NewResolveController(cfg)
			s := rc.Settings()
			s.Sequences[settings.Drive0056].SimSteps[settings.CamMotion][0] = -1
			delete(s.Sequences, settings.DataObject)

			again := rc.Settings()
			convey.So(again.Sequences, convey.ShouldContainKey, settings.DataObject)
			convey.So(again.Sequences[settings.Drive0056].SimSteps[settings.CamMotion][0], convey.ShouldEqual, 61.4892)
		})

		convey.Convey("refuses to export a manifest before resolving", func() {
			convey.So(NewResolveController(cfg).Export(), convey.ShouldNotBeNil)
		})
	})
}
