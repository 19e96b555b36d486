package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
	"github.com/lehigh-university-libraries/marcwalk/profile"
)

const defaultInputFormat = "marcxml"

// openInput opens path, or stdin when path is empty. The returned close
// function is never nil.
func openInput(path string) (io.Reader, string, func() error, error) {
	if path == "" {
		return os.Stdin, "stdin", func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, path, f.Close, nil
}

// createOutput creates path, or returns stdout when path is empty.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// loadProfile picks the output profile: a YAML file wins over a name, and
// with neither set no profile applies. A name is looked up in dir first
// when one is given.
func loadProfile(name, file, dir string) (*mapping.Profile, error) {
	if file != "" {
		return mapping.LoadProfile(file)
	}
	if name == "" {
		return nil, nil
	}
	if dir != "" {
		registry, err := mapping.NewProfileRegistry()
		if err != nil {
			return nil, err
		}
		embedded, _ := registry.Get(name)
		if err := registry.LoadFromDirectory(dir); err != nil {
			return nil, err
		}
		// the registry also holds the embedded profiles; those resolve below
		// so that user profiles still apply
		if p, ok := registry.Get(name); ok && p != embedded {
			return p, nil
		}
	}
	return profile.Resolve(name)
}

// detectParser picks the input format from the file name and the first
// bytes of input, falling back to MARCXML. The returned reader replays the
// peeked bytes.
func detectParser(input io.Reader, name string) (format.Parser, io.Reader, error) {
	br := bufio.NewReader(input)
	peek, _ := br.Peek(512)

	f, err := format.DetectFormat(name, peek)
	if err != nil {
		p, err := format.GetParser(defaultInputFormat)
		return p, br, err
	}
	p, err := format.GetParser(f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("input %s: %w", name, err)
	}
	return p, br, nil
}
