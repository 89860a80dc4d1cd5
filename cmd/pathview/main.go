// Command pathview loads a YAML map document, runs its queries and draws
// terrain and paths in the terminal.
//
//	pathview -map maps/scenario.yaml          interactive view
//	pathview -map maps/scenario.yaml -plain   print every query and exit
//	pathview -schema                          print the map document schema
//
// Interactive keys: arrows move the cursor, s / g set start and goal,
// tab cycles document queries, a switches the algorithm, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/mapfile"
	"github.com/katalvlaran/pathgrid/pathsearch"
	"github.com/katalvlaran/pathgrid/registry"
)

func main() {
	var (
		mapPath  string
		schema   bool
		plain    bool
		verbose  bool
		algoFlag string
	)
	flag.StringVar(&mapPath, "map", "", "path to a YAML map document")
	flag.BoolVar(&schema, "schema", false, "print the map document JSON schema and exit")
	flag.BoolVar(&plain, "plain", false, "print query results as text instead of opening the terminal UI")
	flag.BoolVar(&verbose, "v", false, "log registry activity to stderr")
	flag.StringVar(&algoFlag, "algorithm", "", "override the document algorithm (direct or chunked)")
	flag.Parse()

	if schema {
		data, err := mapfile.SchemaJSON()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	if mapPath == "" {
		fmt.Fprintln(os.Stderr, "-map is required")
		flag.Usage()
		os.Exit(2)
	}

	logOut := io.Discard
	if verbose || plain {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil)).With(slog.String("component", "pathview"))

	v, err := open(mapPath, algoFlag, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if plain {
		if err := v.printQueries(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := v.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewer holds one loaded document and the interactive selection.
type viewer struct {
	doc   *mapfile.Document
	reg   *registry.Registry
	alg   pathsearch.Algorithm
	start gridmap.Cell
	goal  gridmap.Cell
	cur   gridmap.Cell
	query int
	path  []gridmap.Cell
	err   error
}

// open loads the document, optionally forcing an algorithm.
func open(path, algorithm string, logger *slog.Logger) (*viewer, error) {
	doc, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}
	if algorithm != "" {
		doc.Algorithm = algorithm
	}
	alg, err := pathsearch.ParseAlgorithm(doc.Algorithm)
	if err != nil {
		return nil, err
	}
	v := &viewer{doc: doc, reg: registry.New(registry.WithLogger(logger)), alg: alg}
	if err := doc.LoadInto(v.reg); err != nil {
		return nil, err
	}
	if len(doc.Queries) > 0 {
		v.selectQuery(0)
	}

	return v, nil
}

func (v *viewer) searcher() (*pathsearch.Searcher, error) {
	if v.doc.Name == "" {
		return v.reg.Searcher()
	}

	return v.reg.NamedSearcher(v.doc.Name)
}

func (v *viewer) find(start, goal gridmap.Cell) ([]gridmap.Cell, error) {
	if v.doc.Name == "" {
		return v.reg.QueryDefault(start, goal)
	}

	return v.reg.QueryNamed(v.doc.Name, start, goal)
}

func (v *viewer) selectQuery(i int) {
	q := v.doc.Queries[i]
	v.query = i
	v.start, v.goal, v.cur = q.Start(), q.Goal(), q.Start()
	v.path, v.err = v.find(v.start, v.goal)
}

// toggleAlgorithm reloads the document with the other variant.
func (v *viewer) toggleAlgorithm() {
	next := pathsearch.AlgorithmChunked
	if v.alg == pathsearch.AlgorithmChunked {
		next = pathsearch.AlgorithmDirect
	}
	v.doc.Algorithm = next.String()
	if err := v.doc.LoadInto(v.reg); err != nil {
		v.err = err
		return
	}
	v.alg = next
	v.path, v.err = v.find(v.start, v.goal)
}

// printQueries writes every document query with its drawn path.
func (v *viewer) printQueries(w io.Writer) error {
	s, err := v.searcher()
	if err != nil {
		return err
	}
	var paths [][]gridmap.Cell
	if v.doc.Name == "" {
		paths, err = v.reg.FindPaths(v.doc.RegistryQueries())
	} else {
		paths, err = v.reg.FindPathsNamed(v.doc.Name, v.doc.RegistryQueries())
	}
	if err != nil {
		return err
	}
	for i, q := range v.doc.Queries {
		fmt.Fprintf(w, "%s %v → %v (%s): ", q.Name, q.Start(), q.Goal(), v.alg)
		if paths[i] == nil {
			fmt.Fprintln(w, "no path")
		} else {
			fmt.Fprintf(w, "%d cells\n", len(paths[i]))
		}
		fmt.Fprint(w, plainText(frame(s.Map(), v.alg, paths[i])))
	}

	return nil
}

// run drives the tcell UI until the user quits.
func (v *viewer) run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("pathview: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("pathview: init screen: %w", err)
	}
	defer screen.Fini()

	for {
		if err := v.draw(screen); err != nil {
			return err
		}
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key event; false means quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	return v.press(ev.Key(), ev.Rune())
}

// press applies key k, with r set for tcell.KeyRune.
func (v *viewer) press(k tcell.Key, r rune) bool {
	s, err := v.searcher()
	if err != nil {
		v.err = err
		return true
	}
	m := s.Map()
	move := func(dx, dy int) {
		next := v.cur.Add(gridmap.Cell{X: dx, Y: dy})
		if m.InBounds(next) {
			v.cur = next
		}
	}

	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		move(0, -1)
	case tcell.KeyDown:
		move(0, 1)
	case tcell.KeyLeft:
		move(-1, 0)
	case tcell.KeyRight:
		move(1, 0)
	case tcell.KeyTab:
		if n := len(v.doc.Queries); n > 0 {
			v.selectQuery((v.query + 1) % n)
		}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 's':
			v.start = v.cur
			v.path, v.err = v.find(v.start, v.goal)
		case 'g':
			v.goal = v.cur
			v.path, v.err = v.find(v.start, v.goal)
		case 'a':
			v.toggleAlgorithm()
		}
	}

	return true
}

func (v *viewer) draw(screen tcell.Screen) error {
	s, err := v.searcher()
	if err != nil {
		return err
	}
	screen.Clear()
	for y, row := range frame(s.Map(), v.alg, v.path) {
		for x, g := range row {
			style := g.style
			if x == v.cur.X && y == v.cur.Y {
				style = style.Reverse(true)
			}
			screen.SetContent(x, y, g.r, nil, style)
		}
	}

	status := fmt.Sprintf("%s  start %v  goal %v  ", v.alg, v.start, v.goal)
	switch {
	case v.err != nil:
		status += v.err.Error()
	case v.path == nil:
		status += "no path"
	default:
		status += fmt.Sprintf("%d cells", len(v.path))
	}
	drawText(screen, 0, s.Map().Height()+1, status)
	drawText(screen, 0, s.Map().Height()+2, "arrows move  s start  g goal  tab next query  a algorithm  q quit")
	screen.Show()

	return nil
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
