package views

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"kitti-paths/models"
)

// WriteSettingsYAML encodes the settings mapping with its contract keys.
// Float settings stay floats on the wire, so 6.0 is written as 6.0, not 6.
func WriteSettingsYAML(w io.Writer, s models.Settings) error {
	node, err := settingsNode(s.Map())
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return errors.Wrap(enc.Close(), "encode settings")
}

// SaveSettingsYAML writes the settings mapping to path.
func SaveSettingsYAML(path string, s models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "settings mkdir %s", filepath.Dir(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "settings create %s", path)
	}
	if err := WriteSettingsYAML(f, s); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "settings close")
}

func settingsNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			val, err := settingsNode(v[k])
			if err != nil {
				return nil, errors.Wrapf(err, "key %s", k)
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, val)
		}
		return n, nil
	case []float64:
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, f := range v {
			n.Content = append(n.Content, floatNode(f))
		}
		return n, nil
	case float64:
		return floatNode(v), nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		if n.Kind == yaml.SequenceNode {
			n.Style = yaml.FlowStyle
		}
		return n, nil
	}
}

// floatNode always carries a decimal point so readers decode a float.
func floatNode(f float64) *yaml.Node {
	var s string
	switch {
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	case math.IsNaN(f):
		s = ".nan"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}
