// Package resolve finds KITTI sequence folders on disk and builds the
// image, calibration and depth paths for each of them.
package resolve

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"kitti-paths/models"
	"kitti-paths/utils"
)

// Folder and file names of the KITTI layouts.
const (
	ObjectImageDir = "image_2"
	ObjectCalibDir = "calib"
	RawImageDir    = "image_02"
	RawImageData   = "data"
	RawSyncSuffix  = "_sync"
	RawCalibFile   = "calib_cam_to_cam.txt"
	DepthDir       = "depth"
	CalibExt       = ".txt"
)

var (
	// ErrNoSequences is returned when no folder under the images root
	// looks like a KITTI sequence.
	ErrNoSequences = errors.New("no valid sequence folder in the dataset root, maybe the calibration files were not downloaded")
	// ErrMissingRoot is returned when Params lacks a root path.
	ErrMissingRoot = errors.New("images_root and dataset_root must be set")
)

// Sequences walks imagesRoot and returns the identifiers of every folder
// holding an object-style or raw-style sequence, in walk order.
// Identifiers are slash-separated and relative to imagesRoot; the root
// itself is ".". A symlinked imagesRoot is followed; links below it are not.
func Sequences(imagesRoot string) ([]string, error) {
	root, err := filepath.EvalSymlinks(imagesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", imagesRoot)
	}
	var seqs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		// The root's own name never counts as a _sync suffix.
		if IsObjectStyle(path) || (rel != "." && IsRawStyle(path)) {
			seqs = append(seqs, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", imagesRoot)
	}
	return seqs, nil
}

// IsObjectStyle reports whether dir has both image_2 and calib entries.
func IsObjectStyle(dir string) bool {
	return exists(filepath.Join(dir, ObjectImageDir)) && exists(filepath.Join(dir, ObjectCalibDir))
}

// IsRawStyle reports whether dir has an image_02 entry and its name ends
// with _sync. It does not look for the raw_data prefix.
func IsRawStyle(dir string) bool {
	return strings.HasSuffix(filepath.ToSlash(dir), RawSyncSuffix) && exists(filepath.Join(dir, RawImageDir))
}

// Resolve detects the sequences under p.ImagesRoot and fills p.Sequences,
// p.Images, p.Calib and p.Depth. p is modified in place and returned.
func Resolve(p *models.Params) (*models.Params, error) {
	return ResolveOnly(p, nil)
}

// ResolveOnly is Resolve restricted to the detected sequences listed in
// allow. An empty allow list keeps every sequence.
func ResolveOnly(p *models.Params, allow []string) (*models.Params, error) {
	if p.ImagesRoot == "" || p.DatasetRoot == "" {
		return nil, ErrMissingRoot
	}
	seqs, err := Sequences(p.ImagesRoot)
	if err != nil {
		return nil, err
	}
	return Build(p, Filter(seqs, allow))
}

// Build fills p with the paths of seqs under p.DatasetRoot. It fails with
// ErrNoSequences when seqs is empty. p is left untouched on error.
func Build(p *models.Params, seqs []string) (*models.Params, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	images := make(map[string]string, len(seqs))
	calib := make(map[string][]string, len(seqs))
	depth := make(map[string]string, len(seqs))

	for _, seq := range seqs {
		base := filepath.Join(p.DatasetRoot, filepath.FromSlash(seq))
		if models.IsRawPrefixed(seq) {
			images[seq] = filepath.Join(base, RawImageDir, RawImageData)
			// One calibration file per recording day, next to the drive folders.
			calib[seq] = []string{base + string(filepath.Separator) + ".." + string(filepath.Separator) + RawCalibFile}
		} else {
			if strings.HasSuffix(seq, RawSyncSuffix) {
				utils.L().Warn("resolve: %s looks like a raw drive but lacks the %s prefix; using object layout", seq, models.RawDataPrefix)
			}
			images[seq] = filepath.Join(base, ObjectImageDir)
			files, err := calibFiles(filepath.Join(base, ObjectCalibDir))
			if err != nil {
				return nil, errors.Wrapf(err, "sequence %s", seq)
			}
			calib[seq] = files
		}
		depth[seq] = filepath.Join(images[seq], DepthDir)
	}

	p.Sequences = seqs
	p.Images = images
	p.Calib = calib
	p.Depth = depth
	return p, nil
}

// Filter keeps the identifiers of seqs listed in allow, in seqs order.
// An empty allow list keeps everything.
func Filter(seqs, allow []string) []string {
	if len(allow) == 0 {
		return seqs
	}
	keep := make(map[string]bool, len(allow))
	for _, a := range allow {
		keep[strings.Trim(filepath.ToSlash(a), "/")] = true
	}
	var out []string
	for _, s := range seqs {
		if keep[s] {
			out = append(out, s)
		}
	}
	return out
}

func calibFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), CalibExt) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
