package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/term"

	"github.com/wippyai/textcodec/errors"
	"github.com/wippyai/textcodec/utf16x"
)

func main() {
	var (
		text        = flag.String("text", "", "Text to encode (converted to UTF-16 code units first)")
		unitsArg    = flag.String("units", "", "Code units, comma/space separated (0xD83D,0xDE00 or D83D DE00)")
		raw         = flag.Bool("raw", false, "Write raw UTF-8 bytes to stdout instead of a hex dump")
		strict      = flag.Bool("strict", false, "Substitute U+FFFD for lone low surrogates too")
		native      = flag.Bool("native", false, "Prefer the x/text native transcoder")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(*strict, *native); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *text == "" && *unitsArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: transcode -text <string> | -units <hex list> [-strict] [-native] [-raw]")
		fmt.Fprintln(os.Stderr, "       transcode -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*text, *unitsArg, *raw, *strict, *native); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(text, unitsArg string, raw, strict, native bool) error {
	units, err := resolveUnits(text, unitsArg)
	if err != nil {
		return err
	}

	var opts []utf16x.Option
	if strict {
		opts = append(opts, utf16x.WithStrict())
	}
	if native {
		opts = append(opts, utf16x.WithNative(utf16x.Native()))
	}
	out := utf16x.NewEncoder(opts...).Encode(units)

	if raw {
		// Raw bytes can contain control sequences; keep them off interactive
		// terminals.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.Unsupported(errors.PhaseEncode,
				"refusing to write raw bytes to a terminal, redirect stdout")
		}
		_, err := os.Stdout.Write(out)
		return err
	}

	fmt.Printf("Code units: %d\n", len(units))
	fmt.Printf("UTF-8 bytes: %d\n", len(out))
	fmt.Printf("Hex: % X\n", out)
	fmt.Printf("Text: %s\n", out)
	return nil
}

// resolveUnits picks the input source: -units wins when both are given.
func resolveUnits(text, unitsArg string) ([]uint16, error) {
	if unitsArg != "" {
		return parseUnits(unitsArg)
	}
	return utf16.Encode([]rune(text)), nil
}

// parseUnits parses a comma/space separated list of 16-bit code units.
// Values parse per strconv base rules (0x prefix, decimal, octal); bare
// hex like D83D is accepted as a fallback.
func parseUnits(s string) ([]uint16, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.InvalidInput(errors.PhaseParse, "empty code unit list", s)
	}

	units := make([]uint16, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 16)
		if err != nil {
			v, err = strconv.ParseUint(f, 16, 16)
		}
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path("units", strconv.Itoa(i)).
				Value(f).
				Detail("%q is not a 16-bit code unit", f).
				Build()
		}
		units = append(units, uint16(v))
	}
	return units, nil
}
