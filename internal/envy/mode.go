package envy

// Mode is one of the three mutually exclusive graphics configurations
// envycontrol can switch between.
type Mode int

const (
	ModeIntegrated Mode = iota
	ModeHybrid
	ModeNvidia
)

// String returns the CLI token envycontrol expects for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIntegrated:
		return "integrated"
	case ModeHybrid:
		return "hybrid"
	case ModeNvidia:
		return "nvidia"
	}
	return "unknown"
}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeIntegrated:
		return "Integrated"
	case ModeHybrid:
		return "Hybrid"
	case ModeNvidia:
		return "Nvidia"
	}
	return "Unknown"
}

// Description returns a one-line explanation shown in the mode list.
func (m Mode) Description() string {
	switch m {
	case ModeIntegrated:
		return "Use Intel/AMD iGPU exclusively. Nvidia GPU is turned off for power saving."
	case ModeHybrid:
		return "Enable PRIME render offloading. GPU can be dynamically turned off when not in use."
	case ModeNvidia:
		return "Use Nvidia dGPU exclusively. Higher performance, higher power consumption."
	}
	return ""
}

// AllModes returns the modes in selection order.
func AllModes() []Mode {
	return []Mode{ModeIntegrated, ModeHybrid, ModeNvidia}
}

// Options returns the option flags that apply to the mode.
// Integrated has none.
func (m Mode) Options() []OptionFlag {
	switch m {
	case ModeHybrid:
		return []OptionFlag{OptionRTD3}
	case ModeNvidia:
		return []OptionFlag{OptionForceComp, OptionCoolbits}
	}
	return nil
}

// OptionFlag is a mode-scoped toggle that affects the constructed
// envycontrol command.
type OptionFlag int

const (
	OptionRTD3 OptionFlag = iota
	OptionForceComp
	OptionCoolbits
)

// Label returns the display name for the option.
func (o OptionFlag) Label() string {
	switch o {
	case OptionRTD3:
		return "RTD3 Power Management"
	case OptionForceComp:
		return "Force Composition Pipeline"
	case OptionCoolbits:
		return "Coolbits"
	}
	return ""
}

// Description returns a one-line explanation shown in the options panel.
func (o OptionFlag) Description() string {
	switch o {
	case OptionRTD3:
		return "Enables Runtime D3 power management so the dGPU can enter a low-power state when idle."
	case OptionForceComp:
		return "Forces the full composition pipeline. Fixes screen tearing but may cost some performance."
	case OptionCoolbits:
		return "Enables advanced GPU features like overclocking, fan control and voltage adjustment."
	}
	return ""
}

// RTD3Level is the aggressiveness of RTD3 power management, passed as the
// numeric argument to --rtd3.
type RTD3Level int

const (
	RTD3Disabled RTD3Level = iota
	RTD3CoarseGrained
	RTD3FineGrained
	RTD3FineGrainedAmpere
)

// String returns the display form of the level.
func (l RTD3Level) String() string {
	switch l {
	case RTD3Disabled:
		return "0 - Disabled"
	case RTD3CoarseGrained:
		return "1 - Coarse-grained"
	case RTD3FineGrained:
		return "2 - Fine-grained"
	case RTD3FineGrainedAmpere:
		return "3 - Fine-grained (Ampere+)"
	}
	return ""
}

// Next cycles to the following level, wrapping after the last.
func (l RTD3Level) Next() RTD3Level {
	return (l + 1) % 4
}

// DefaultCoolbitsValue enables fan control and overclocking without
// voltage adjustment (4 + 8 + 16).
const DefaultCoolbitsValue = 28
