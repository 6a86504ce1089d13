// Program augyang translates Augeas lens modules into YANG 1.1
// schema modules.
//
// Usage: augyang [OPTIONS] MODULE...
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pborman/getopt"
	"github.com/sirupsen/logrus"

	"github.com/cesnet/augyang/pkg/augerr"
	"github.com/cesnet/augyang/pkg/augyang"
	"github.com/cesnet/augyang/pkg/lens"
)

// LoadModule resolves an Augeas module name (plus the search path
// built from -I/-e) to a compiled lens tree. The real Augeas parser
// and lens compiler are an external collaborator (spec §1) this core
// never implements; a full build links this against a real binding
// (e.g. a cgo wrapper over libaugeas) at the call site. The default
// set here fails loudly rather than silently producing an empty module.
var LoadModule = func(name string, includeDirs []string, explicit bool) (*lens.Module, error) {
	return nil, augerr.Newf(augerr.ErrParseFailed, "no Augeas lens loader wired into this build for module %q", name)
}

var stop = os.Exit

func main() {
	var explicit bool
	var includeDirs []string
	var outdir string
	var show bool
	var verboseHex string
	var help bool
	var logLevel string
	log := logrus.New()

	getopt.BoolVarLong(&explicit, "explicit", 'e', "do not add the built-in lens directory to the search path")
	getopt.ListVarLong(&includeDirs, "include", 'I', "add DIR to lens search path; repeatable", "DIR")
	getopt.StringVarLong(&outdir, "outdir", 'O', "write <MODULE>.yang into DIR (default: CWD)", "DIR")
	getopt.BoolVarLong(&show, "show", 's', "write YANG text to stdout instead of a file")
	getopt.StringVarLong(&verboseHex, "verbose", 'v', "set the internal dump vercode", "HEX")
	getopt.StringVarLong(&logLevel, "log-level", 0, "logrus level: debug, info, warn (default), error", "LEVEL")
	getopt.BoolVarLong(&help, "help", 'h', "display help")
	getopt.SetParameters("MODULE...")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	if help {
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	if show && outdir != "" {
		fmt.Fprintln(os.Stderr, "augyang: --show and --outdir are mutually exclusive")
		stop(1)
		return
	}

	if logLevel != "" {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "augyang: invalid --log-level %q: %v\n", logLevel, err)
			stop(1)
			return
		}
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	vercode := augyang.VerCode(0)
	if verboseHex != "" {
		n, err := strconv.ParseUint(strings.TrimPrefix(verboseHex, "0x"), 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "augyang: invalid --verbose value %q: %v\n", verboseHex, err)
			stop(1)
			return
		}
		vercode = augyang.VerCode(n)
	}

	args := getopt.Args()
	modules := expandArgs(args)
	if len(modules) == 0 {
		fmt.Fprintln(os.Stderr, "augyang: no MODULE given")
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	exitCode := 0
	for _, name := range modules {
		if err := compileOne(name, includeDirs, explicit, outdir, show, vercode, log); err != nil {
			fmt.Fprintf(os.Stderr, "augyang: %s: %s\n", name, err)
			exitCode = exitCodeFor(err)
		}
	}
	stop(exitCode)
}

// expandArgs implements the SPEC_FULL §10.2 directory-batch mode: an
// argument naming a directory is expanded to every ".aug" module
// stem found directly inside it, so `augyang /etc/augeas/lenses/dist`
// compiles the whole directory in one invocation.
func expandArgs(args []string) []string {
	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || !info.IsDir() {
			out = append(out, a)
			continue
		}
		entries, err := os.ReadDir(a)
		if err != nil {
			out = append(out, a)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".aug") {
				out = append(out, strings.TrimSuffix(e.Name(), ".aug"))
			}
		}
	}
	return out
}

func compileOne(name string, includeDirs []string, explicit bool, outdir string, show bool, vercode augyang.VerCode, log logrus.FieldLogger) error {
	mod, err := LoadModule(name, includeDirs, explicit)
	if err != nil {
		return err
	}

	dumps, err := augyang.PrintYang(mod, vercode, log)
	if err != nil {
		return augerr.New(augerr.CodeOf(err), "")
	}

	for checkpoint, text := range dumps.Named {
		fmt.Fprintf(os.Stderr, "--- %s ---\n%s\n", checkpoint, text)
	}

	if show {
		fmt.Print(dumps.Yang)
		return nil
	}

	dir := outdir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name+".yang")
	return os.WriteFile(path, []byte(dumps.Yang), 0644)
}

// exitCodeFor maps a pipeline failure to the exit codes of spec
// §6.2: out-of-memory gets 2, everything else gets 1.
func exitCodeFor(err error) int {
	if augerr.CodeOf(err) == augerr.ErrMemory {
		return 2
	}
	return 1
}
