package ingest

import (
	"path/filepath"
	"testing"
)

func TestUserForMapsSubdirectoryToUser(t *testing.T) {
	d := NewDropFolder(nil, []string{"/scans"}, "front-desk", nil)

	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("/scans", "receipt.pdf"), "front-desk"},
		{filepath.Join("/scans", "jdoe", "receipt.pdf"), "jdoe"},
		{filepath.Join("/scans", "jdoe", "2024", "receipt.pdf"), "jdoe"},
		{filepath.Join("/elsewhere", "receipt.pdf"), "front-desk"},
	}
	for _, tc := range tests {
		if got := d.userFor(tc.path); got != tc.want {
			t.Errorf("userFor(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestClassifiable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"scan.pdf", true},
		{"scan.PNG", true},
		{"scan.jpeg", true},
		{"scan.tiff", true},
		{"scan.docx", false},
		{"scan", false},
		{".hidden", false},
	}
	for _, tc := range tests {
		if got := classifiable(tc.path); got != tc.want {
			t.Errorf("classifiable(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
