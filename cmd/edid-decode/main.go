package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	edid "github.com/thyge/edidbase"
	"github.com/thyge/edidbase/pkg/eedid"
)

var (
	format   = flag.String("format", "json", "output format: json or yaml")
	checksum = flag.Bool("checksum", false, "fail when the base block checksum does not match")
	baseOnly = flag.Bool("base", false, "decode the base block only, ignoring extension blocks")
	dump     = flag.Bool("dump", false, "print each input as hex before decoding it")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("edid-decode: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: edid-decode [flags] [file ...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Reads binary or hex text EDID dumps, from stdin when no file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	inputs, err := readInputs(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatal("Unable to read input: ", err)
	}

	var opts []edid.Option
	if *checksum {
		opts = append(opts, edid.WithChecksum())
	}

	results, err := decodeAll(inputs, *baseOnly, opts...)
	if err != nil {
		log.Fatal("Unable to decode EDID: ", err)
	}

	if *dump {
		for _, in := range inputs {
			fmt.Printf("# %s\n%s\n\n", in.Name, eedid.FormatHex(in.Data))
		}
	}
	if err := render(os.Stdout, *format, results); err != nil {
		log.Fatal(err)
	}
}

type input struct {
	Name string
	Data []byte
}

type result struct {
	File string
	EDID interface{}
}

// readInputs loads every path, or stdin when there are none and stdin is
// not a terminal.
func readInputs(paths []string, stdin *os.File) ([]input, error) {
	if len(paths) == 0 {
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, errors.New("no input files and stdin is a terminal")
		}
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		data, err := parseDump("stdin", raw)
		if err != nil {
			return nil, err
		}
		return []input{{Name: "stdin", Data: data}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data, err := parseDump(path, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		inputs = append(inputs, input{Name: path, Data: data})
	}
	return inputs, nil
}

// parseDump accepts raw bytes or a hex dump. Files named .txt or .hex are
// always treated as hex; anything else is sniffed.
func parseDump(name string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".hex":
		return GetBytesFromString(string(raw))
	}
	if looksLikeHex(raw) {
		return GetBytesFromString(string(raw))
	}
	return raw, nil
}

// looksLikeHex reports whether raw holds only hex digits and white space.
// A binary EDID always contains 0x00 and 0xFF so it never qualifies.
func looksLikeHex(raw []byte) bool {
	digits := 0
	for _, b := range raw {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
			digits++
		case b == ' ', b == '\t', b == '\r', b == '\n':
		default:
			return false
		}
	}
	return digits > 0
}

func GetBytesFromString(str string) ([]byte, error) {
	str = strings.Replace(str, " ", "", -1)
	str = strings.Replace(str, "\t", "", -1)
	str = strings.Replace(str, "\r\n", "", -1)
	str = strings.Replace(str, "\n", "", -1)
	str = strings.TrimSpace(str)
	return hex.DecodeString(str)
}

// decodeAll decodes the inputs in parallel and returns the results in
// input order.
func decodeAll(inputs []input, baseOnly bool, opts ...edid.Option) ([]result, error) {
	results := make([]result, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			var decoded interface{}
			if baseOnly {
				e, _, err := edid.Decode(in.Data, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				decoded = e
			} else {
				e, err := eedid.DecodeEDID(in.Data, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				decoded = e
			}
			results[i] = result{File: in.Name, EDID: decoded}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// render prints a single result bare and several as a list.
func render(w io.Writer, format string, results []result) error {
	var v interface{} = results
	if len(results) == 1 {
		v = results[0].EDID
	}
	switch format {
	case "json":
		// pretty print json version of edid structure
		pretty, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(pretty))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
