package x86_64

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corvid-systems/x64asm/architecture/x86_64"
	"github.com/corvid-systems/x64asm/internal/asm"
	"github.com/corvid-systems/x64asm/internal/keurnel_asm/lexer"
	"github.com/spf13/cobra"
)

var outPath string
var listing bool

var AssembleFileCmd = &cobra.Command{
	Use:     "assemble <assembly-file>",
	GroupID: "file-operations",
	Short:   "Assemble an x86-64 assembly file into a flat binary file.",
	Long: `Assemble an x86-64 assembly file into a flat binary file.

Each instruction line is lexed and dispatched independently through the
x86-64 Form Table (blank, comment, directive and label lines produce no
bytes); the resulting instruction bytes are
concatenated in source order and written to --out.`,
	RunE: runAssembleFile,
}

func init() {
	AssembleFileCmd.Flags().StringVarP(&outPath, "out", "o", "", "output binary path (default: input path with its extension replaced by .bin)")
	AssembleFileCmd.Flags().BoolVarP(&listing, "listing", "l", false, "print a source-line/byte-offset listing to stdout")
}

// runAssembleFile resolves the input file, assembles it line by line
// through the x86-64 encoding engine, and writes the concatenated machine
// code to the output path.
func runAssembleFile(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	source, err := readSourceFile(fullPath)
	if err != nil {
		return err
	}
	source = asm.PreProcessingRemoveComments(source)
	source = asm.PreProcessingTrimWhitespace(source)

	arch := x86_64.New(source)

	out, labels, listingLines, err := assembleSource(arch, source)
	if err != nil {
		return err
	}

	dest := outPath
	if dest == "" {
		dest = strings.TrimSuffix(fullPath, filepath.Ext(fullPath)) + ".bin"
	}

	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if listing {
		for _, label := range labels {
			cmd.Printf("       %s: ; offset 0x%x\n", label.Identifier, label.Offset)
		}
		for _, line := range listingLines {
			cmd.Println(line)
		}
	}

	cmd.Printf("assembled %d byte(s) to %s\n", len(out), dest)
	return nil
}

// assembleSource classifies and dispatches source one line at a time, in
// order, returning the concatenated instruction bytes, the labels it
// recorded, and, for --listing, one "line: source ; offset" line per
// assembled instruction.
//
// A blank line, a comment-only line, or a directive line (asm.LineAnalyze)
// contributes no bytes and is skipped. A label definition (asm.IsLabel)
// is recorded against the current output offset and also contributes no
// bytes — it names a position rather than an instruction. Any other line
// is lexed and dispatched through the Form Table; a line that fails to
// dispatch aborts the whole assembly with its line number attached.
func assembleSource(arch *x86_64.Assembler, source string) ([]byte, []asm.Label, []string, error) {
	var out []byte
	var labels []asm.Label
	var listingLines []string

	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1

		chars := asm.LineAnalyze(raw)
		if chars.IsEmpty || chars.IsComment || chars.IsDirective {
			continue
		}

		if asm.IsLabel(raw, arch) {
			labels = append(labels, asm.Label{
				Identifier: strings.TrimSuffix(strings.TrimSpace(raw), ":"),
				Offset:     len(out),
			})
			continue
		}

		tokens := lexer.Scan(raw)
		if len(tokens) == 0 {
			continue
		}

		buf, err := arch.Assemble(tokens)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		offset := len(out)
		out = append(out, buf.Bytes()...)
		listingLines = append(listingLines, fmt.Sprintf("%6d: %-40s ; offset 0x%x", lineNo, strings.TrimSpace(raw), offset))
	}

	return out, labels, listingLines, nil
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the assembly file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no assembly file provided")
	}
	if args[0] == "" {
		return "", fmt.Errorf("assembly file path is empty")
	}

	fullPath := args[0]
	if !filepath.IsAbs(fullPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get current working directory: %w", err)
		}
		fullPath = filepath.Join(cwd, fullPath)
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("assembly file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// readSourceFile reads the assembly source file and returns its content.
func readSourceFile(path string) (string, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read assembly file: %w", err)
	}
	return string(sourceBytes), nil
}
