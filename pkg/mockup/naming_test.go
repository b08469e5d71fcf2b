package mockup

import (
	"path/filepath"
	"testing"
)

func TestNaming(t *testing.T) {
	if got := MockupFileName("mens_tshirt", "FAB-101"); got != "SRX Mockup_mens_tshirt_FAB-101.png" {
		t.Errorf("unexpected mockup file name: %q", got)
	}
	if got := TechpackFileName("mens_tshirt", "FAB-101"); got != "SRX Techpack_mens_tshirt_FAB-101.pdf" {
		t.Errorf("unexpected techpack file name: %q", got)
	}
	want := filepath.Join("out", "SRX Mockup_tee_F.png")
	if got := MockupPath("out", "tee", "F"); got != want {
		t.Errorf("MockupPath = %q, want %q", got, want)
	}
}
