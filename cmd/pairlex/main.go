// Command pairlex is a demo CLI for the pairing parser: it parses a file
// or walks a directory, printing each line's recognized matches and the
// set of filetypes it encountered.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/alecthomas/participle/lexer"

	"github.com/xcdnlgd/go-pairs"
	"github.com/xcdnlgd/go-pairs/path"
	"github.com/xcdnlgd/go-pairs/writer"
)

type options struct {
	filetype    string
	excludePath Predicate
	quiet       bool
}

type Option func(*runner)
type Predicate func(string) bool

// ForceFiletype overrides extension-based filetype detection for every
// file the runner visits.
func ForceFiletype(filetype string) Option {
	return func(r *runner) {
		r.o.filetype = filetype
	}
}

// ExcludePaths skips any directory, the walk's root included, whose path
// matches p during a directory walk. Files are not tested against p.
func ExcludePaths(p Predicate) Option {
	return func(r *runner) {
		r.o.excludePath = p
	}
}

// Quiet suppresses per-line match output, printing only the final
// filetype summary.
func Quiet(quiet bool) Option {
	return func(r *runner) {
		r.o.quiet = quiet
	}
}

type runner struct {
	o         options
	bufferID  int
	filetypes stringset.Set
}

func NewRunner(opts ...Option) *runner {
	r := &runner{filetypes: stringset.New()}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *runner) excludePath(p string) bool {
	return r.o.excludePath != nil && r.o.excludePath(p)
}

// Run parses and reports on every path in paths, each either a file or a
// directory to walk.
func (r *runner) Run(paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := r.walkDir(p); err != nil {
				return err
			}
			continue
		}
		if err := r.parseFile(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) walkDir(root string) error {
	return path.Walk(root, func(dir string) ([]string, func() error, error) {
		if r.excludePath(dir) {
			return nil, nil, nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, err
		}
		var children []string
		for _, e := range entries {
			full := path.New(dir).JoinString(e.Name()).String()
			if e.IsDir() {
				children = append(children, e.Name())
				continue
			}
			if r.filetypeFor(e.Name()) == "" {
				continue
			}
			if err := r.parseFile(full); err != nil {
				return nil, nil, err
			}
		}
		return children, nil, nil
	})
}

func (r *runner) filetypeFor(name string) string {
	if r.o.filetype != "" {
		return r.o.filetype
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	ext := name[i+1:]
	if _, ok := pairlex.FiletypeTokens(ext); ok {
		return ext
	}
	return ""
}

func (r *runner) parseFile(name string) error {
	filetype := r.filetypeFor(name)
	if filetype == "" {
		return nil
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.bufferID++
	id := r.bufferID
	r.filetypes.Add(filetype)

	if !pairlex.ParseBuffer(id, filetype, lines, nil, nil, nil) {
		return fmt.Errorf("%s: unrecognized filetype %q", name, filetype)
	}
	defer pairlex.Forget(id)

	if r.o.quiet {
		return nil
	}
	for i := range lines {
		matches := pairlex.LineMatches(id, i, nil)
		if len(matches) == 0 {
			continue
		}
		out, err := writer.FormatMatches(matches)
		if err != nil {
			return err
		}
		pos := lexer.Position{Filename: name, Line: i + 1, Column: 1}
		fmt.Printf("%s: %s\n", pos.String(), out)
	}
	return nil
}

func (r *runner) Summary() string {
	elems := r.filetypes.Elements()
	return fmt.Sprintf("%d filetype(s): %s", len(elems), strings.Join(elems, ", "))
}

func main() {
	forceFiletype := flag.String("filetype", "", "force this filetype for every input instead of detecting it from the file extension")
	quiet := flag.Bool("quiet", false, "suppress per-line match output")
	flag.Parse()

	var opts []Option
	if *forceFiletype != "" {
		opts = append(opts, ForceFiletype(*forceFiletype))
	}
	opts = append(opts, Quiet(*quiet), ExcludePaths(func(p string) bool {
		base := path.New(p)
		return len(base) > 0 && strings.HasPrefix(base[len(base)-1], ".")
	}))

	r := NewRunner(opts...)
	if err := r.Run(flag.Args()); err != nil {
		log.Fatal(err)
	}
	fmt.Println(r.Summary())
}
