package rat

// Flags holds the display flags as given on the command line.
type Flags struct {
	ShowAll         bool `yaml:"show_all"`         // -A, --show-all
	NumberNonBlank  bool `yaml:"number_nonblank"`  // -b, --number-nonblank
	VE              bool `yaml:"v_e"`              // -e
	ShowEnds        bool `yaml:"show_ends"`        // -E, --show-ends
	Number          bool `yaml:"number"`           // -n, --number
	SqueezeBlank    bool `yaml:"squeeze_blank"`    // -s, --squeeze-blank
	VT              bool `yaml:"v_t"`              // -t
	ShowTabs        bool `yaml:"show_tabs"`        // -T, --show_tabs
	Ignore          bool `yaml:"ignore"`           // -u
	ShowNonPrinting bool `yaml:"show_nonprinting"` // -v, --show-nonprinting
}

// Merge returns the flags set in either f or other.
func (f Flags) Merge(other Flags) Flags {
	return Flags{
		ShowAll:         f.ShowAll || other.ShowAll,
		NumberNonBlank:  f.NumberNonBlank || other.NumberNonBlank,
		VE:              f.VE || other.VE,
		ShowEnds:        f.ShowEnds || other.ShowEnds,
		Number:          f.Number || other.Number,
		SqueezeBlank:    f.SqueezeBlank || other.SqueezeBlank,
		VT:              f.VT || other.VT,
		ShowTabs:        f.ShowTabs || other.ShowTabs,
		Ignore:          f.Ignore || other.Ignore,
		ShowNonPrinting: f.ShowNonPrinting || other.ShowNonPrinting,
	}
}

// OptionSet is the canonical set of display options of a run.
//
// NumberNonBlank and Number may both be set; NumberNonBlank wins when the text is numbered.
// ShowNonPrinting and SqueezeBlank are carried for compatibility and do not change the output.
type OptionSet struct {
	NumberNonBlank  bool
	Number          bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonPrinting bool
	SqueezeBlank    bool
}

// Resolve expands the compound flags: -A is -vET, -e is -vE and -t is -vT.
// -u is accepted and ignored.
func Resolve(f Flags) OptionSet {
	opts := OptionSet{
		NumberNonBlank:  f.NumberNonBlank,
		Number:          f.Number,
		ShowEnds:        f.ShowEnds,
		ShowTabs:        f.ShowTabs,
		ShowNonPrinting: f.ShowNonPrinting,
		SqueezeBlank:    f.SqueezeBlank,
	}

	if f.ShowAll {
		opts.ShowNonPrinting = true
		opts.ShowEnds = true
		opts.ShowTabs = true
	}
	if f.VE {
		opts.ShowNonPrinting = true
		opts.ShowEnds = true
	}
	if f.VT {
		opts.ShowNonPrinting = true
		opts.ShowTabs = true
	}

	return opts
}
