package pubspec

import (
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the pub package manifest present in every Dart project.
const ManifestName = "pubspec.yaml"

// Either marker identifies a Flutter dependency declaration.
var flutterMarkers = []string{"sdk: flutter", "flutter:"}

// Detector recognizes Flutter project roots by their manifest
type Detector struct{}

// NewDetector creates a new manifest detector
func NewDetector() *Detector {
	return &Detector{}
}

// IsFlutterProject reports whether dir directly contains a pubspec.yaml
// declaring a Flutter dependency. The check is a plain substring scan, not
// a YAML decode: false positives are cheap because projects without build
// output are filtered out downstream. Unreadable or absent manifests are
// simply not projects.
func (d *Detector) IsFlutterProject(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return false
	}
	content := string(data)
	for _, marker := range flutterMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}
