package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Countdown} {
		if !Loaded(name) {
			t.Errorf("font %s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("font %s has nil face", name)
		}
	}

	big := Countdown.Get().Metrics().Height
	small := HUD.Get().Metrics().Height
	if big <= small {
		t.Errorf("countdown face height %v not larger than HUD %v", big, small)
	}
}

func TestLoadFontWithSize_Invalid(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Error("LoadFontWithSize accepted garbage bytes")
	}
	if Loaded("broken") {
		t.Error("broken font was registered")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
