package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame      int     `json:"frame"`
	Angle      float64 `json:"angle"`
	Image      string  `json:"image"`
	Triangles  int     `json:"triangles"`
	Drawn      int     `json:"drawn"`
	Degenerate int     `json:"degenerate"`
	ZeroW      int     `json:"zero_w"`
	Pixels     int     `json:"pixels"`
}

// WriteManifest writes the successful frames of results to path as JSON.
// Image paths are stored relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Path
		if rel, err := filepath.Rel(dir, r.Path); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Frame:      r.Frame,
			Angle:      r.Angle,
			Image:      img,
			Triangles:  r.Stats.Triangles,
			Drawn:      r.Stats.Drawn,
			Degenerate: r.Stats.Degenerate,
			ZeroW:      r.Stats.ZeroW,
			Pixels:     r.Stats.Pixels,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
