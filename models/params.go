package models

import "strings"

// RawDataPrefix marks a sequence identifier that lives under the KITTI raw
// drive tree. Only path construction looks at it; detection does not.
const RawDataPrefix = "raw_data"

// Params is the dataset configuration shared by the pipeline stages.
// The caller fills ImagesRoot and DatasetRoot; the resolver fills the rest
// in place.
type Params struct {
	ImagesRoot  string `yaml:"images_root"`
	DatasetRoot string `yaml:"dataset_root"`

	Sequences []string            `yaml:"sequences,omitempty"`
	Images    map[string]string   `yaml:"images,omitempty"`
	Calib     map[string][]string `yaml:"calib,omitempty"`
	Depth     map[string]string   `yaml:"depth,omitempty"`
}

// NewParams returns a Params ready to be resolved.
func NewParams(imagesRoot, datasetRoot string) *Params {
	return &Params{ImagesRoot: imagesRoot, DatasetRoot: datasetRoot}
}

// IsRawPrefixed reports whether seq is built with the raw drive layout.
func IsRawPrefixed(seq string) bool {
	return strings.HasPrefix(seq, RawDataPrefix)
}

// CalibFiles returns the calibration file(s) resolved for seq.
func (p *Params) CalibFiles(seq string) []string {
	return p.Calib[seq]
}

// IsSharedCalib reports whether seq points at the single per-day
// calib_cam_to_cam.txt rather than a folder of per-frame files.
func (p *Params) IsSharedCalib(seq string) bool {
	return IsRawPrefixed(seq)
}

// Entries returns one manifest row per resolved sequence, in order.
func (p *Params) Entries() []*SequenceEntry {
	out := make([]*SequenceEntry, 0, len(p.Sequences))
	for _, seq := range p.Sequences {
		out = append(out, &SequenceEntry{
			Sequence: seq,
			Raw:      p.IsSharedCalib(seq),
			Images:   p.Images[seq],
			Calib:    p.Calib[seq],
			Depth:    p.Depth[seq],
		})
	}
	return out
}
