// Package cmdtest runs command line golden tests described in YAML files.
//
// Each file holds a list of cases, either at the top level or under a "tests" key:
//
//	tests:
//	  - name: accepted
//	    cmd: rangeconst
//	    args: [check, month, "3"]
//	    env: {RANGECONST_NO_COLOR: "true"}
//	    expect:
//	      stdout: "ok   3\n"
//	      exitCode: 0
//
// Commands run in-process: os.Args, os.Stdout, os.Stderr and the listed
// environment variables are swapped for the duration of a case.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is one invocation and its expected outcome.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Expect      Expect            `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// File is the parsed content of one YAML file. The node tree is kept so
// expectations can be rewritten without losing comments or ordering.
type File struct {
	Name  string
	Cases []Case `yaml:"tests"`

	path  string
	root  *yaml.Node
	nodes []*yaml.Node
}

// TestSuite is the set of files found in a directory plus the registered commands.
type TestSuite struct {
	files    []*File
	commands map[string]func() int
	mu       sync.Mutex
}

// Read loads every .yaml and .yml file below dir.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{commands: map[string]func() int{}}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		f, err := readFile(path)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		suite.files = append(suite.files, f)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return suite, nil
}

func readFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty yaml")
	}

	list, err := casesNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	f := &File{Name: filepath.Base(path), path: path, root: &root, nodes: list.Content}
	if err := list.Decode(&f.Cases); err != nil {
		return nil, errors.Wrap(err, "decode tests")
	}

	return f, nil
}

// casesNode finds the sequence holding the cases.
func casesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		list := mapValue(doc, "tests")
		if list == nil {
			return nil, errors.New("missing 'tests' key")
		}
		if list.Kind != yaml.SequenceNode {
			return nil, errors.New("tests must be a sequence")
		}

		return list, nil
	default:
		return nil, errors.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

// Register makes run available to cases whose cmd field equals name.
// run returns the exit code.
func (s *TestSuite) Register(name string, run func() int) {
	s.commands[name] = run
}

// Run executes every case and compares the outcome with the expectation.
func (s *TestSuite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate is Run, except that with update set mismatching expectations
// are written back to their files instead of failing.
func (s *TestSuite) RunWithUpdate(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(f.Name, func(t *testing.T) {
			for i := range f.Cases {
				name := f.Cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runCase(t, f, i, update)
				})
			}
		})
	}
}

type outcome struct {
	stdout, stderr string
	exitCode       int
}

func (s *TestSuite) runCase(t *testing.T, f *File, idx int, update bool) {
	c := &f.Cases[idx]
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}

	restore := setEnv(c.Env)
	got, err := capture(append([]string{c.Cmd}, c.Args...), run)
	restore()
	if err != nil {
		t.Fatal(err)
	}

	changes := compare(t, f, idx, got, update)
	if !update || len(changes) == 0 {
		return
	}
	if err := f.save(); err != nil {
		t.Fatalf("save %s: %v", f.path, err)
	}
	t.Logf("updated %s: %s", f.path, strings.Join(changes, "; "))
}

// setEnv applies vars and returns a function restoring the previous environment.
func setEnv(vars map[string]string) func() {
	type saved struct {
		value  string
		exists bool
	}
	prev := make(map[string]saved, len(vars))
	for k, v := range vars {
		old, exists := os.LookupEnv(k)
		prev[k] = saved{old, exists}
		_ = os.Setenv(k, v)
	}

	return func() {
		for k, p := range prev {
			if p.exists {
				_ = os.Setenv(k, p.value)
			} else {
				_ = os.Unsetenv(k)
			}
		}
	}
}

// capture runs fn with os.Args set to args and the standard streams redirected to pipes.
func capture(args []string, fn func() int) (got outcome, err error) {
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return got, errors.Wrap(err, "stdout pipe")
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return got, errors.Wrap(err, "stderr pipe")
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	var wg sync.WaitGroup
	drain := func(r *os.File, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	wg.Add(2)
	go drain(rOut, &got.stdout)
	go drain(rErr, &got.stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("panic: %v", r)
				got.exitCode = -1
			}
		}()
		got.exitCode = fn()
	}()

	os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()

	return got, err
}

// compare reports mismatches, or with update records them in the node tree and
// returns a summary of what changed.
func compare(t *testing.T, f *File, idx int, got outcome, update bool) []string {
	t.Helper()
	want := &f.Cases[idx].Expect
	expectNode := ensureMapValue(f.nodes[idx], "expect")

	var changes []string
	if got.exitCode != want.ExitCode {
		if update {
			want.ExitCode = got.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.exitCode))
		} else {
			t.Errorf("exit code: want %d, got %d", want.ExitCode, got.exitCode)
		}
	}

	streams := []struct {
		key  string
		want *string
		got  string
	}{
		{"stdout", &want.Stdout, got.stdout},
		{"stderr", &want.Stderr, got.stderr},
	}
	for _, st := range streams {
		if st.got == *st.want {
			continue
		}
		if update {
			*st.want = st.got
			setStringScalar(ensureMapValue(expectNode, st.key), st.got)
			changes = append(changes, fmt.Sprintf("%s=%q", st.key, summarize(st.got)))
		} else {
			t.Errorf("%s mismatch:\nwant:\n%s\ngot:\n%s", st.key, *st.want, st.got)
		}
	}

	return changes
}

func (f *File) save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}

	return nil
}

func ensureMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Tag = ""
		m.Content = nil
	}
	if v := mapValue(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	m.Content = append(m.Content, k, v)

	return v
}

func setStringScalar(n *yaml.Node, val string) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	n.Style = 0
	// a lone line break would otherwise be written as an empty literal block
	if val == "\n" || val == "\r\n" {
		n.Style = yaml.DoubleQuotedStyle
	}
	n.Value = val
}

func setIntScalar(n *yaml.Node, val int) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!int"
	n.Style = 0
	n.Value = strconv.Itoa(val)
}

func summarize(s string) string {
	s = strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(s)
	if len(s) > 80 {
		return s[:77] + "..."
	}

	return s
}
