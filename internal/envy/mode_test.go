package envy

import "testing"

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeIntegrated, "integrated"},
		{ModeHybrid, "hybrid"},
		{ModeNvidia, "nvidia"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String(): expected %s, got %s", tt.mode, tt.want, got)
		}
	}
}

func TestMode_Label(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeIntegrated, "Integrated"},
		{ModeHybrid, "Hybrid"},
		{ModeNvidia, "Nvidia"},
	}

	for _, tt := range tests {
		if got := tt.mode.Label(); got != tt.want {
			t.Errorf("Mode(%d).Label(): expected %s, got %s", tt.mode, tt.want, got)
		}
	}
}

func TestMode_Descriptions(t *testing.T) {
	for _, mode := range AllModes() {
		if mode.Description() == "" {
			t.Errorf("Mode %s has no description", mode)
		}
	}
}

func TestAllModes_Order(t *testing.T) {
	modes := AllModes()

	if len(modes) != 3 {
		t.Fatalf("Expected 3 modes, got %d", len(modes))
	}
	if modes[0] != ModeIntegrated || modes[1] != ModeHybrid || modes[2] != ModeNvidia {
		t.Errorf("Expected order Integrated, Hybrid, Nvidia, got %v", modes)
	}
}

func TestMode_Options(t *testing.T) {
	if opts := ModeIntegrated.Options(); len(opts) != 0 {
		t.Errorf("Expected no options for Integrated, got %v", opts)
	}

	hybrid := ModeHybrid.Options()
	if len(hybrid) != 1 || hybrid[0] != OptionRTD3 {
		t.Errorf("Expected [RTD3] for Hybrid, got %v", hybrid)
	}

	nvidia := ModeNvidia.Options()
	if len(nvidia) != 2 || nvidia[0] != OptionForceComp || nvidia[1] != OptionCoolbits {
		t.Errorf("Expected [ForceComp, Coolbits] for Nvidia, got %v", nvidia)
	}
}

func TestOptionFlag_Metadata(t *testing.T) {
	flags := []OptionFlag{OptionRTD3, OptionForceComp, OptionCoolbits}

	for _, f := range flags {
		if f.Label() == "" {
			t.Errorf("OptionFlag(%d) has no label", f)
		}
		if f.Description() == "" {
			t.Errorf("OptionFlag(%d) has no description", f)
		}
	}
}

func TestRTD3Level_Next_Wraps(t *testing.T) {
	level := RTD3FineGrainedAmpere
	if got := level.Next(); got != RTD3Disabled {
		t.Errorf("Expected wrap to Disabled, got %v", got)
	}

	// Cycling four times returns to the start
	level = RTD3Disabled
	for i := 0; i < 4; i++ {
		level = level.Next()
	}
	if level != RTD3Disabled {
		t.Errorf("Expected Disabled after four cycles, got %v", level)
	}
}

func TestRTD3Level_Strings(t *testing.T) {
	for level := RTD3Disabled; level <= RTD3FineGrainedAmpere; level++ {
		if level.String() == "" {
			t.Errorf("RTD3Level(%d) has no display string", level)
		}
	}
}
