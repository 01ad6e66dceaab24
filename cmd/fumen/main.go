// Command fumen is a small CLI around the fumen codec: decode a v115
// string and print each page's contents (flags, piece, cells, field),
// or build a fumen from a per-line page spec on stdin and print the
// resulting encoded string.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/bdwalton/fumen"
	"github.com/bdwalton/fumen/internal/jsescape"
)

const maxCommentBytes = 4095

var (
	decode  = flag.String("decode", "", "A v115 fumen string to decode and describe.")
	build   = flag.Bool("build", false, "Read a per-line page spec from stdin and print the encoded fumen.")
	verbose = flag.BoolP("verbose", "v", false, "Log decode/build progress to stderr.")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if !*verbose {
		logger.SetLevel(log.WarnLevel)
	}

	switch {
	case *build:
		if err := buildFromStdin(logger); err != nil {
			logger.Fatal("build failed", "err", err)
		}
	case *decode != "":
		if err := describe(logger, *decode); err != nil {
			logger.Fatal("decode failed", "err", err)
		}
	default:
		logger.Fatal("nothing to do", "hint", "pass --decode=<fumen string>, or --build and pipe a page spec to stdin")
	}
}

// describe decodes s and prints a page-by-page summary to stdout.
func describe(logger *log.Logger, s string) error {
	f, err := fumen.Decode(s)
	if err != nil {
		return err
	}

	logger.Info("decoded fumen", "pages", len(f.Pages), "guideline", f.Guideline)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for i, p := range f.Pages {
		fmt.Fprintf(w, "page %d: lock=%t rise=%t mirror=%t\n", i, p.Lock, p.Rise, p.Mirror)
		if p.Piece != nil {
			fmt.Fprintf(w, "  piece: %s %s center=(%d,%d)\n",
				p.Piece.Kind, p.Piece.Rotation, p.Piece.X, p.Piece.Y)
			for _, c := range p.Piece.Cells() {
				fmt.Fprintf(w, "    cell: (%d,%d)\n", c[0], c[1])
			}
		}
		if p.Comment != nil {
			if n := len(jsescape.Escape(*p.Comment)); n > maxCommentBytes {
				logger.Warn("comment would be truncated on re-encode", "page", i, "escaped_bytes", n)
			}
			fmt.Fprintf(w, "  comment: %q\n", *p.Comment)
		}
		printField(w, p)
	}

	return nil
}

// printField dumps p's raw field and garbage row, one row of cell
// values per line, from the top visible row down to the bottom.
func printField(w *bufio.Writer, p *fumen.Page) {
	fmt.Fprintf(w, "  field:\n")
	for y := 22; y >= 0; y-- {
		fmt.Fprintf(w, "    row %2d:", y)
		for x := 0; x < 10; x++ {
			fmt.Fprintf(w, " %d", p.Field[y][x])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "    garbage:")
	for x := 0; x < 10; x++ {
		fmt.Fprintf(w, " %d", p.GarbageRow[x])
	}
	fmt.Fprintln(w)
}

// buildFromStdin reads a per-line page spec from stdin, builds a
// Fumen from it, and prints the encoded string to stdout.
//
// The first line may be exactly "guideline=false" to clear the
// stream-wide guideline flag (it defaults to true, as fumen.New()
// does); any other line describes one page as whitespace-separated
// key=value fields:
//
//	piece=<KIND>,<ROTATION>,<X>,<Y>  lock=false  rise=true  mirror=true
//	comment="free text"  cell=<x>,<y>=<COLOR>  garbage=<x>=<COLOR>
//
// cell and garbage fields may repeat on one line to set more than one
// coordinate. Blank lines are skipped.
func buildFromStdin(logger *log.Logger) error {
	f := fumen.New()

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "guideline=false" && len(f.Pages) == 0 {
			f.Guideline = false
			continue
		}

		p := f.AddPage()
		if err := applyPageSpec(p, line); err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	logger.Info("built fumen", "pages", len(f.Pages), "guideline", f.Guideline)

	fmt.Println(f.Encode())
	return nil
}

// applyPageSpec parses one whitespace-separated key=value line and
// applies it to p.
func applyPageSpec(p *fumen.Page, line string) error {
	for _, field := range splitFields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("malformed field %q", field)
		}

		switch key {
		case "piece":
			piece, err := parsePiece(value)
			if err != nil {
				return err
			}
			p.Piece = piece
		case "lock":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("lock: %w", err)
			}
			p.Lock = b
		case "rise":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("rise: %w", err)
			}
			p.Rise = b
		case "mirror":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("mirror: %w", err)
			}
			p.Mirror = b
		case "comment":
			c := value
			p.Comment = &c
		case "cell":
			x, y, color, err := parseCoordColor(value)
			if err != nil {
				return fmt.Errorf("cell: %w", err)
			}
			if y < 0 || y >= 23 || x < 0 || x >= 10 {
				return fmt.Errorf("cell: (%d,%d) out of range", x, y)
			}
			p.Field[y][x] = color
		case "garbage":
			xs, colorStr, ok := strings.Cut(value, "=")
			if !ok {
				return fmt.Errorf("garbage: malformed %q", value)
			}
			x, err := strconv.Atoi(xs)
			if err != nil {
				return fmt.Errorf("garbage: %w", err)
			}
			color, err := parseColor(colorStr)
			if err != nil {
				return fmt.Errorf("garbage: %w", err)
			}
			if x < 0 || x >= 10 {
				return fmt.Errorf("garbage: column %d out of range", x)
			}
			p.GarbageRow[x] = color
		default:
			return fmt.Errorf("unknown field %q", key)
		}
	}

	return nil
}

// splitFields splits line on whitespace, keeping double-quoted
// substrings (e.g. a comment value) intact and unquoted.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return fields
}

// parsePiece parses "<KIND>,<ROTATION>,<X>,<Y>" into a *fumen.Piece.
func parsePiece(s string) (*fumen.Piece, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("piece: want KIND,ROTATION,X,Y, got %q", s)
	}

	kind, err := parseKind(parts[0])
	if err != nil {
		return nil, fmt.Errorf("piece: %w", err)
	}
	rot, err := parseRotation(parts[1])
	if err != nil {
		return nil, fmt.Errorf("piece: %w", err)
	}
	x, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("piece: x: %w", err)
	}
	y, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("piece: y: %w", err)
	}

	return &fumen.Piece{Kind: kind, Rotation: rot, X: x, Y: y}, nil
}

// parseCoordColor parses "<x>,<y>=<COLOR>".
func parseCoordColor(s string) (x, y int, color fumen.CellColor, err error) {
	coords, colorStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, 0, fmt.Errorf("want X,Y=COLOR, got %q", s)
	}
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return 0, 0, 0, fmt.Errorf("want X,Y=COLOR, got %q", s)
	}
	x, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("x: %w", err)
	}
	y, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("y: %w", err)
	}
	color, err = parseColor(colorStr)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, color, nil
}

func parseKind(s string) (fumen.PieceType, error) {
	switch strings.ToUpper(s) {
	case "I":
		return fumen.PieceI, nil
	case "L":
		return fumen.PieceL, nil
	case "O":
		return fumen.PieceO, nil
	case "Z":
		return fumen.PieceZ, nil
	case "T":
		return fumen.PieceT, nil
	case "J":
		return fumen.PieceJ, nil
	case "S":
		return fumen.PieceS, nil
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

func parseRotation(s string) (fumen.RotationState, error) {
	switch strings.ToLower(s) {
	case "south":
		return fumen.South, nil
	case "east":
		return fumen.East, nil
	case "north":
		return fumen.North, nil
	case "west":
		return fumen.West, nil
	}
	return 0, fmt.Errorf("unknown rotation %q", s)
}

func parseColor(s string) (fumen.CellColor, error) {
	switch strings.ToUpper(s) {
	case "EMPTY":
		return fumen.Empty, nil
	case "I":
		return fumen.I, nil
	case "L":
		return fumen.L, nil
	case "O":
		return fumen.O, nil
	case "Z":
		return fumen.Z, nil
	case "T":
		return fumen.T, nil
	case "J":
		return fumen.J, nil
	case "S":
		return fumen.S, nil
	case "GREY", "GRAY":
		return fumen.Grey, nil
	}
	return 0, fmt.Errorf("unknown cell color %q", s)
}
