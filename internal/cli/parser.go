package cli

import (
	"fmt"
	"io"

	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"

	"github.com/askiada/go-rat/pkg/rat"
)

// DefaultProgram is the program name used when the process has no argument zero.
const DefaultProgram = "rat"

// Version is the version printed by -V.
var Version = "0.1.0"

// Control flow errors returned by ParseArgs.
var (
	ErrShowHelp    = errors.New("show help")
	ErrShowVersion = errors.New("show version")
)

// Config holds the parsed command line.
type Config struct {
	Flags rat.Flags
	Paths []string // positional arguments, "-" is the standard input
	Stats bool     // --stats: log the stage timings at the end of the run
	Graph string   // --graph: write the stage graph to this file
}

// Program returns the name diagnostics are prefixed with.
func Program(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return DefaultProgram
	}

	return args[0]
}

func newFlagSet(program string, config *Config, output io.Writer) (*flag.FlagSet, *bool, *bool) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(output)

	f := &config.Flags
	fs.BoolVarP(&f.ShowAll, "show-all", "A", false, "equivalent to -vET")
	fs.BoolVarP(&f.NumberNonBlank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	fs.BoolVarP(&f.VE, "show-ends-nonprinting", "e", false, "equivalent to -vE")
	fs.BoolVarP(&f.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	fs.BoolVarP(&f.Number, "number", "n", false, "number all output lines")
	fs.BoolVarP(&f.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	fs.BoolVarP(&f.VT, "show-tabs-nonprinting", "t", false, "equivalent to -vT")
	fs.BoolVarP(&f.ShowTabs, "show_tabs", "T", false, "display TAB characters as ^I")
	fs.BoolVarP(&f.Ignore, "unbuffered", "u", false, "(ignored)")
	fs.BoolVarP(&f.ShowNonPrinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")

	fs.BoolVar(&config.Stats, "stats", false, "log the time spent in each stage")
	fs.StringVar(&config.Graph, "graph", "", "write the stage graph in DOT format to this file")

	var showHelp, showVersion bool
	fs.BoolVarP(&showHelp, "help", "h", false, "print help")
	fs.BoolVarP(&showVersion, "version", "V", false, "print version")

	fs.Usage = func() {
		writeUsage(program, fs, output)
	}

	return fs, &showHelp, &showVersion
}

// ParseArgs parses the arguments following the program name. Flag errors are
// reported on output together with the usage.
func ParseArgs(program string, args []string, output io.Writer) (*Config, error) {
	var config Config

	fs, showHelp, showVersion := newFlagSet(program, &config, output)

	err := fs.Parse(args)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse arguments")
	}

	if *showHelp {
		return nil, ErrShowHelp
	}
	if *showVersion {
		return nil, ErrShowVersion
	}

	config.Paths = fs.Args()

	return &config, nil
}

// PrintUsage writes the help text to output.
func PrintUsage(program string, output io.Writer) {
	fs, _, _ := newFlagSet(program, &Config{}, output)
	writeUsage(program, fs, output)
}

// PrintVersion writes the version line to output.
func PrintVersion(program string, output io.Writer) {
	fmt.Fprintf(output, "%s %s\n", program, Version)
}

func writeUsage(program string, fs *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, "Usage: %s [OPTION]... [FILE]...\n", program)
	fmt.Fprintln(output, "Concatenate FILE(s) to standard output. A FILE of - reads and discards standard input.")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	fs.PrintDefaults()
}
