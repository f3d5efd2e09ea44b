package views

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"

	"kitti-paths/models"
	"kitti-paths/services/settings"
)

func TestSchemaMatchesModels(t *testing.T) {
	convey.Convey("schema columns agree with model headers", t, func() {
		convey.So(SchemaColumns[OutputManifest], convey.ShouldResemble, models.SequenceEntry{}.CSVHeader())
		convey.So(SchemaColumns[OutputMotion], convey.ShouldResemble, models.MotionSample{}.CSVHeader())
		convey.So(OutputSettings.String(), convey.ShouldEqual, "settings")
		convey.So(OutputKind(9).String(), convey.ShouldEqual, "unknown")
	})
}

func TestWriteCSV(t *testing.T) {
	convey.Convey("WriteCSV", t, func() {
		path := filepath.Join(t.TempDir(), "nested", "sequences.csv")
		entries := []*models.SequenceEntry{
			{Sequence: "data_object", Images: "/d/image_2", Calib: []string{"/d/calib/0.txt", "/d/calib/1.txt"}, Depth: "/d/image_2/depth"},
			{Sequence: "raw_data/a/b_sync", Raw: true, Images: "/r/image_02/data", Calib: []string{"/r/../calib_cam_to_cam.txt"}, Depth: "/r/image_02/data/depth"},
		}

		n, err := WriteCSV(path, 0, true, models.SequenceEntry{}.CSVHeader(), entries)
		convey.So(err, convey.ShouldBeNil)
		convey.So(n, convey.ShouldEqual, 2)

		f, err := os.Open(path)
		convey.So(err, convey.ShouldBeNil)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		convey.So(err, convey.ShouldBeNil)
		convey.So(rows, convey.ShouldHaveLength, 3)
		convey.So(rows[0], convey.ShouldResemble, SchemaColumns[OutputManifest])
		convey.So(rows[1][3], convey.ShouldEqual, "/d/calib/0.txt;/d/calib/1.txt")
		convey.So(rows[2][1], convey.ShouldEqual, "raw")
	})

	convey.Convey("NewCSVWriter without header", t, func() {
		path := filepath.Join(t.TempDir(), "motion.csv")
		w, err := NewCSVWriter(path, 16, false, []string{"a"})
		convey.So(err, convey.ShouldBeNil)
		w.WriteRow([]string{"x", "1"})
		convey.So(w.Close(), convey.ShouldBeNil)
		convey.So(w.Rows(), convey.ShouldEqual, 1)

		data, err := os.ReadFile(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "x,1\n")
	})
}

func TestWriteSettingsYAML(t *testing.T) {
	convey.Convey("settings YAML keeps the contract keys", t, func() {
		var buf bytes.Buffer
		convey.So(WriteSettingsYAML(&buf, settings.KITTI()), convey.ShouldBeNil)

		var decoded map[string]any
		convey.So(yaml.Unmarshal(buf.Bytes(), &decoded), convey.ShouldBeNil)
		for _, k := range models.SettingsKeys {
			convey.So(decoded, convey.ShouldContainKey, k)
		}
		convey.So(decoded["cam_hz"], convey.ShouldEqual, 10)
		convey.So(decoded["cam_CCD_pixsize"], convey.ShouldEqual, 4.65)

		seqs := decoded["sequences"].(map[string]any)
		drive := seqs[settings.Drive0071].(map[string]any)
		convey.So(drive["sim_mode"], convey.ShouldEqual, "steps")
		motion := drive["sim_steps"].(map[string]any)["cam_motion"].([]any)
		convey.So(motion, convey.ShouldHaveLength, 1058)
	})

	convey.Convey("settings YAML keeps whole-valued floats as floats", t, func() {
		var buf bytes.Buffer
		convey.So(WriteSettingsYAML(&buf, settings.KITTI()), convey.ShouldBeNil)

		var decoded map[string]any
		convey.So(yaml.Unmarshal(buf.Bytes(), &decoded), convey.ShouldBeNil)
		convey.So(decoded["cam_f_number"], convey.ShouldHaveSameTypeAs, float64(0))
		convey.So(decoded["cam_f_number"], convey.ShouldEqual, 6.0)
		convey.So(decoded["cam_focus_plane"], convey.ShouldHaveSameTypeAs, float64(0))
		convey.So(decoded["cam_focal"], convey.ShouldHaveSameTypeAs, 0)
		convey.So(decoded["cam_up"], convey.ShouldResemble, []any{0.0, 1.0, 0.0})
		convey.So(decoded["cam_lookat"], convey.ShouldResemble, []any{1.5, 1.5, -1.0})

		seqs := decoded["sequences"].(map[string]any)
		ramp := seqs[settings.DataObject].(map[string]any)["sim_steps"].(map[string]any)["cam_motion"].([]any)
		convey.So(ramp, convey.ShouldHaveLength, 101)
		convey.So(ramp[0], convey.ShouldHaveSameTypeAs, float64(0))
		convey.So(ramp[0], convey.ShouldEqual, 100.0)
		convey.So(ramp[100], convey.ShouldEqual, 0.0)
	})

	convey.Convey("SaveSettingsYAML creates the file", t, func() {
		path := filepath.Join(t.TempDir(), "out", "settings.yaml")
		convey.So(SaveSettingsYAML(path, settings.KITTI()), convey.ShouldBeNil)
		info, err := os.Stat(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(info.Size(), convey.ShouldBeGreaterThan, 0)
	})
}
