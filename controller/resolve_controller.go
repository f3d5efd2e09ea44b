package controller

import (
	"github.com/pkg/errors"

	"kitti-paths/models"
	"kitti-paths/services/resolve"
	"kitti-paths/services/settings"
	"kitti-paths/utils"
	"kitti-paths/views"
)

// ResolveController runs one resolution pass over a dataset and writes
// the manifest, motion and settings outputs.
type ResolveController struct {
	cfg      *utils.DatasetConfig
	params   *models.Params
	settings models.Settings
}

// NewResolveController prepares a pass for cfg. Roots must already be set.
func NewResolveController(cfg *utils.DatasetConfig) *ResolveController {
	return &ResolveController{
		cfg:      cfg,
		params:   cfg.Params(),
		settings: settings.KITTI(),
	}
}

// Params returns the configuration object, resolved once Resolve succeeds.
func (rc *ResolveController) Params() *models.Params { return rc.params }

// Settings returns a copy of the settings table written by Export.
func (rc *ResolveController) Settings() models.Settings { return rc.settings.Clone() }

// Resolve detects the sequences, applies the optional allow-list and
// fills in their paths.
func (rc *ResolveController) Resolve() (*models.Params, error) {
	allow := rc.cfg.Dataset.Sequences
	p, err := resolve.ResolveOnly(rc.params, allow)
	if err != nil {
		return nil, err
	}
	if len(allow) > 0 {
		utils.L().Info("allow-list of %d kept %d sequence(s)", len(allow), len(p.Sequences))
	}
	utils.L().Info("resolved %d sequence(s) under %s", len(p.Sequences), p.ImagesRoot)

	for _, seq := range p.Sequences {
		merged, ok := rc.settings.ForSequence(seq)
		if ok {
			utils.L().Debug("%s -> images=%s calib=%d file(s) sim_mode=%v", seq, p.Images[seq], len(p.Calib[seq]), merged[models.KeySimMode])
		} else {
			utils.L().Debug("%s -> images=%s calib=%d file(s), no settings override", seq, p.Images[seq], len(p.Calib[seq]))
		}
	}
	for _, id := range settings.SequenceIDs() {
		if _, ok := p.Images[id]; !ok {
			utils.L().Debug("settings override %s has no matching folder", id)
		}
	}
	return p, nil
}

// Export writes every configured output. Empty output names are skipped.
func (rc *ResolveController) Export() error {
	out := rc.cfg.Output
	bufSize := out.BufferSizeKB * 1024

	if path := rc.cfg.OutputPath(out.ManifestCSV); path != "" {
		if len(rc.params.Sequences) == 0 {
			return errors.New("export manifest: params not resolved")
		}
		n, err := views.WriteCSV(path, bufSize, out.WriteHeader, views.SchemaColumns[views.OutputManifest], rc.params.Entries())
		if err != nil {
			return errors.Wrap(err, "export manifest")
		}
		utils.L().Info("%s: %d row(s) -> %s", views.OutputManifest, n, path)
	}

	if path := rc.cfg.OutputPath(out.MotionCSV); path != "" {
		n, err := views.WriteCSV(path, bufSize, out.WriteHeader, views.SchemaColumns[views.OutputMotion], models.MotionSamples(rc.settings))
		if err != nil {
			return errors.Wrap(err, "export motion")
		}
		utils.L().Info("%s: %d row(s) -> %s", views.OutputMotion, n, path)
	}

	if path := rc.cfg.OutputPath(out.SettingsYAML); path != "" {
		if err := views.SaveSettingsYAML(path, rc.settings); err != nil {
			return errors.Wrap(err, "export settings")
		}
		utils.L().Info("%s: %d override(s) -> %s", views.OutputSettings, len(rc.settings.Sequences), path)
	}
	return nil
}
