// Package aoc runs Advent of Code solvers. A solver is a struct embedding
// *Puzzle with methods named D{day}p{part}; a method's doc comment may
// carry a sample as "want=<answer>" followed by the sample input, which is
// checked before the real input is solved.
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

type sample struct {
	input string
	want  string
}

// unknownWant marks a sample whose answer isn't known yet.
const unknownWant = "???"

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples reads the samples out of every non-test .go file in src.
// A function without its own sample input reuses the one declared before
// it in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					if s.input == "" {
						s.input = lastInput
					}
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded in a solver and gives its methods the input of the
// part being solved.
type Puzzle struct {
	Year       int
	Day        int
	SampleMode bool

	log     *zap.SugaredLogger
	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the sample input in sample mode and the day's input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.solver.Name].input)
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		panic(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) { out = append(out, line) })
	return out
}

// NonEmptyLines returns the lines of input that aren't blank.
func (p *Puzzle) NonEmptyLines() []string {
	var out []string
	p.ForLines(func(line string) {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	})
	return out
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods of the struct x points to named
// D{day}p{part}. The methods must take nothing and return any.
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Titler is implemented by solvers that name their days for the banner.
type Titler interface {
	Title(day int) string
}

// Labeler is implemented by solvers that describe their answers. Label
// gets the method name, e.g. "D2p1", and may return "" for the default.
type Labeler interface {
	Label(name string) string
}

// Runner runs a solver against samples and real input.
type Runner struct {
	Config

	Log    *zap.Logger
	Client *http.Client
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run solves every day of slvr, or just r.Day when it is set. src holds the
// solver's source files, for samples. slvr must be a pointer to a struct
// embedding *Puzzle.
func (r *Runner) Run(ctx context.Context, src fs.FS, slvr any) error {
	r.setDefaults()
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	p := &Puzzle{Year: r.Year, samples: samples}
	sv := reflect.ValueOf(slvr)
	if sv.Kind() != reflect.Pointer || sv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	field := sv.Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver: %T does not embed *aoc.Puzzle", slvr)
	}
	field.Set(reflect.ValueOf(p))
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	answers, err := loadAnswers(r.answersPath())
	if err != nil {
		return err
	}

	if r.Day != -1 {
		day, ok := days[r.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.Day)
		}
		return r.runDay(ctx, p, slvr, day, answers)
	}
	if r.FromStdin {
		return errors.New("reading input from stdin needs a single day")
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, d := range dayNums {
		if err := r.runDay(ctx, p, slvr, days[d], answers); err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", d, err))
		}
		fmt.Fprintln(r.Stdout)
	}
	return errors.Join(errs...)
}

func (r *Runner) setDefaults() {
	if r.Log == nil {
		r.Log = zap.NewNop()
	}
	if r.Client == nil {
		r.Client = http.DefaultClient
	}
	if r.Stdin == nil {
		r.Stdin = os.Stdin
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
}

// runDay prints the day's banner and solves its parts. Results are held
// back until every part has run, so a day whose input fails to parse in
// any part prints no results at all.
func (r *Runner) runDay(ctx context.Context, p *Puzzle, slvr any, day day, answers answers) error {
	var title string
	if t, ok := slvr.(Titler); ok {
		title = t.Title(day.day)
	}
	PrintBanner(r.Stdout, r.Year, day.day, title)

	var out bytes.Buffer
	err := r.solveDay(ctx, &out, p, slvr, day, answers)
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	if _, werr := out.WriteTo(r.Stdout); werr != nil && err == nil {
		err = werr
	}
	return err
}

func (r *Runner) solveDay(ctx context.Context, w io.Writer, p *Puzzle, slvr any, day day, answers answers) error {
	p.Day = day.day
	p.input = nil
	p.log = r.Log.Sugar().With("day", day.day)

	for _, ps := range day.parts {
		p.solver = ps
		if r.Part != "" && ps.Part != r.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.OnlySample {
				continue
			} else if sm && r.SkipSample {
				continue
			}
			sample, hasSample := p.samples[ps.Name]
			if sm && !hasSample {
				p.log.Debugw("no sample", "func", ps.Name)
				continue
			}
			p.SampleMode = sm
			if !sm && p.input == nil {
				in, err := r.loadInput(ctx, day.day)
				if err != nil {
					return err
				}
				p.log.Debugw("loaded input", "bytes", len(in))
				p.input = in
			}

			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if err, ok := got.(error); ok {
				var pe *ParseError
				if errors.As(err, &pe) {
					fmt.Fprint(r.Stderr, pe.Report())
				} else {
					fmt.Fprintln(r.Stderr, err)
				}
				return fmt.Errorf("part %s: %w", ps.Part, err)
			}

			if sm {
				switch {
				case sample.want == unknownWant:
					fmt.Fprintf(w, "part %s sample: %v (want unknown)\n", ps.Part, got)
				case fmt.Sprint(got) != sample.want:
					fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("part %s sample: got %v, want %v", ps.Part, got, sample.want)
				default:
					fmt.Fprintf(w, "part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
				}
				continue
			}

			label := "part " + ps.Part
			if l, ok := slvr.(Labeler); ok {
				if s := l.Label(ps.Name); s != "" {
					label = s
				}
			}
			fmt.Fprintf(w, "%s: %v (took %v)\n", label, got, took)
			p.log.Debugw("solved", "part", ps.Part, "took", took)
			if want, ok := answers.lookup(day.day, ps.Part); ok {
				if fmt.Sprint(got) != want {
					p.log.Warnw("wrong answer", "part", ps.Part, "got", got, "want", want)
					return fmt.Errorf("part %s: got %v, want %v", ps.Part, got, want)
				}
				p.log.Debugw("answer matches", "part", ps.Part)
			}
		}
	}
	return nil
}

// PrintBanner writes the heading printed before each day.
func PrintBanner(w io.Writer, year, day int, title string) {
	const width = 47
	rule := "+" + strings.Repeat("-", width) + "+"
	name := fmt.Sprintf("ADVENT OF CODE %d", year)
	left := (width - len(name)) / 2
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "|%s%s%s|\n", strings.Repeat(" ", left), name, strings.Repeat(" ", width-left-len(name)))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	if title != "" {
		fmt.Fprintf(w, "DAY %02d: %s\n", day, title)
	} else {
		fmt.Fprintf(w, "DAY %02d\n", day)
	}
	fmt.Fprintln(w)
}

func (r *Runner) loadInput(ctx context.Context, day int) ([]byte, error) {
	if r.FromStdin {
		return ReadUntil(r.Stdin, r.EndMarker)
	}
	return r.fileOrFetch(ctx, day)
}

// ReadUntil reads lines from rd until one equals marker or the input ends.
// The marker line is not included.
func ReadUntil(rd io.Reader, marker string) ([]byte, error) {
	s := bufio.NewScanner(rd)
	s.Buffer(nil, 1<<20)
	var buf bytes.Buffer
	for s.Scan() {
		line := s.Text()
		if marker != "" && line == marker {
			break
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Runner) fileOrFetch(ctx context.Context, day int) ([]byte, error) {
	filename := r.inputPath(day)
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	session := r.session()
	if session == "" {
		return nil, fmt.Errorf("cannot open the input file: %w", err)
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(r.BaseURL, "/"), r.Year, day)
	r.Log.Info("fetching input", zap.String("url", url))
	body, err := r.fetch(ctx, url, session)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (r *Runner) fetch(ctx context.Context, url, session string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// answers holds known answers by day and part, as read from answers.yaml:
//
//	2:
//	  "1": "1227775554"
type answers map[int]map[string]string

func loadAnswers(path string) (answers, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a, nil
}

func (a answers) lookup(day int, part string) (string, bool) {
	v, ok := a[day][part]
	return v, ok && v != ""
}
