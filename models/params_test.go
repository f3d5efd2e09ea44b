package models

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParamsEntries(t *testing.T) {
	convey.Convey("Params.Entries", t, func() {
		raw := "raw_data/2011_09_26/x_sync"
		p := NewParams("/img", "/ds")
		p.Sequences = []string{"data_object", raw}
		p.Images = map[string]string{"data_object": "/ds/data_object/image_2", raw: "/ds/" + raw + "/image_02/data"}
		p.Calib = map[string][]string{"data_object": {"/c/0.txt", "/c/1.txt"}, raw: {"/ds/" + raw + "/../calib_cam_to_cam.txt"}}
		p.Depth = map[string]string{"data_object": "/ds/data_object/image_2/depth", raw: "/ds/" + raw + "/image_02/data/depth"}

		entries := p.Entries()
		convey.So(entries, convey.ShouldHaveLength, 2)

		convey.So(entries[0].Style(), convey.ShouldEqual, "object")
		convey.So(entries[0].CSVRow(), convey.ShouldResemble, []string{
			"data_object", "object", "/ds/data_object/image_2", "/c/0.txt;/c/1.txt", "/ds/data_object/image_2/depth",
		})
		convey.So(entries[1].Style(), convey.ShouldEqual, "raw")
		convey.So(p.IsSharedCalib(raw), convey.ShouldBeTrue)
		convey.So(p.IsSharedCalib("foo_sync"), convey.ShouldBeFalse)
		convey.So(len(entries[0].CSVRow()), convey.ShouldEqual, len(SequenceEntry{}.CSVHeader()))
	})
}
