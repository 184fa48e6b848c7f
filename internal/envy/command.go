package envy

import (
	"strconv"
	"strings"
)

// SwitchOptions describes a requested mode switch. Only the fields
// relevant to Mode are consulted when building the command.
type SwitchOptions struct {
	Mode          Mode
	RTD3          bool
	RTD3Level     RTD3Level
	ForceComp     bool
	Coolbits      bool
	CoolbitsValue int
}

// DefaultSwitchOptions returns a SwitchOptions for the mode with every
// flag off and sensible values for the parameterized options.
func DefaultSwitchOptions(mode Mode) SwitchOptions {
	return SwitchOptions{
		Mode:          mode,
		RTD3Level:     RTD3FineGrained,
		CoolbitsValue: DefaultCoolbitsValue,
	}
}

// SwitchArgs builds the envycontrol argument list for a mode switch.
// Pure: no process is spawned and no state is read.
func SwitchArgs(opts SwitchOptions) []string {
	args := []string{"-s", opts.Mode.String()}

	switch opts.Mode {
	case ModeIntegrated:
		// no options
	case ModeHybrid:
		if opts.RTD3 {
			args = append(args, "--rtd3", strconv.Itoa(int(opts.RTD3Level)))
		}
	case ModeNvidia:
		if opts.ForceComp {
			args = append(args, "--force-comp")
		}
		if opts.Coolbits {
			args = append(args, "--coolbits", strconv.Itoa(opts.CoolbitsValue))
		}
	}

	return append(args, "--verbose")
}

// ResetArgs builds the argument list that reverts envycontrol's changes.
// Independent of any selection state.
func ResetArgs() []string {
	return []string{"--reset", "--verbose"}
}

// CommandLine renders the privileged command a user could run by hand
// for the given envycontrol arguments.
func CommandLine(args []string) string {
	return "sudo envycontrol " + strings.Join(args, " ")
}
