package theme

import "testing"

func TestFallbackPalette(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() || Current() != nil {
		t.Fatal("theming should be disabled for an empty name")
	}

	r, g, b, _ := DesktopBg().RGBA()
	if r>>8 != 0x00 || g>>8 != 0x80 || b>>8 != 0x80 {
		t.Errorf("desktop background = %02x%02x%02x, want 008080", r>>8, g>>8, b>>8)
	}
	bg, fg := TitleActive()
	if bg == nil || fg == nil {
		t.Error("title colors must not be nil")
	}
}

func TestUnknownThemeFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { _ = Initialize("") })

	if err := Initialize("definitely-not-a-theme"); err != nil {
		t.Fatal(err)
	}
	if !IsEnabled() || Current() == nil {
		t.Fatal("expected the default tint to be active")
	}
	if SurfaceBg() == nil || ContentFg() == nil {
		t.Error("themed colors must not be nil")
	}
}
