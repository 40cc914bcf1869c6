package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseFileMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name:    "complete-metadata.json",
			content: `{"name": "Two Spheres", "description": "Side by side", "group": "Samples", "width": 4, "height": 4}`,
			expected: SceneInfo{
				ID:          "complete-metadata",
				Name:        "Two Spheres",
				DisplayName: "Two Spheres",
				Description: "Side by side",
				Group:       "Samples",
				Type:        TypeFile,
			},
		},
		{
			name:    "no_metadata.json",
			content: `{"width": 4, "height": 4}`,
			expected: SceneInfo{
				ID:          "no_metadata",
				Name:        "No Metadata", // From filename
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        TypeFile,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseFileMetadata(path)
			if err != nil {
				t.Fatalf("ParseFileMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseFileMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseFileMetadata_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if _, err := ParseFileMetadata(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := ParseFileMetadata(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestListFileScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListFileScenes(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Errorf("ListFileScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListScenes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-scene.json": `{"name": "Beta", "group": "Samples"}`,
		"a-scene.json": `{"name": "Alpha", "group": "Samples"}`,
		"broken.json":  `{`,
		"notes.txt":    `ignored`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	response, err := ListScenes(dir)
	if err != nil {
		t.Fatalf("ListScenes() error: %v", err)
	}

	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
	}

	builtIn := response.Groups[0]
	if builtIn.Name != "Built-in Scenes" {
		t.Errorf("Expected built-in group first, got %q", builtIn.Name)
	}
	names := BuiltinNames()
	if len(builtIn.Scenes) != len(names) {
		t.Errorf("Built-in scenes count = %d, want %d", len(builtIn.Scenes), len(names))
	}
	for i, info := range builtIn.Scenes {
		if info.ID != names[i] {
			t.Errorf("Built-in scene %d = %q, want %q", i, info.ID, names[i])
		}
		if info.Type != TypeBuiltin || info.DisplayName == "" {
			t.Errorf("Built-in scene %q has incomplete metadata: %+v", info.ID, info)
		}
	}

	samples := response.Groups[1]
	if samples.Name != "Samples" {
		t.Errorf("Expected Samples group, got %q", samples.Name)
	}
	if len(samples.Scenes) != 2 {
		t.Fatalf("Expected 2 file scenes, got %d", len(samples.Scenes))
	}
	if samples.Scenes[0].DisplayName != "Alpha" || samples.Scenes[1].DisplayName != "Beta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q",
			samples.Scenes[0].DisplayName, samples.Scenes[1].DisplayName)
	}
	if samples.Scenes[0].ID != "a-scene" {
		t.Errorf("Expected ID from filename, got %q", samples.Scenes[0].ID)
	}
}
