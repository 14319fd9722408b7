package flock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/duckpond/internal/core/behavior"
	"github.com/zeusync/duckpond/internal/core/duck"
	"github.com/zeusync/duckpond/internal/core/observability/log"
)

// ErrEmptyRoster is returned when a roster declares no ducks.
var ErrEmptyRoster = errors.New("roster has no ducks")

// Roster describes ducks as data: each entry names its behaviors by registry name.
type Roster struct {
	Ducks []Entry `json:"ducks" yaml:"ducks"`
}

type Entry struct {
	Name    string `json:"name" yaml:"name"`
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
	Quack   string `json:"quack" yaml:"quack"`
	Fly     string `json:"fly" yaml:"fly"`
}

// LoadJSON loads a roster from a JSON reader.
func LoadJSON(r io.Reader) (*Roster, error) {
	var ro Roster
	if err := json.NewDecoder(r).Decode(&ro); err != nil {
		return nil, fmt.Errorf("decode roster json: %w", err)
	}
	return &ro, nil
}

// LoadYAML loads a roster from a YAML reader.
func LoadYAML(r io.Reader) (*Roster, error) {
	var ro Roster
	if err := yaml.NewDecoder(r).Decode(&ro); err != nil {
		return nil, fmt.Errorf("decode roster yaml: %w", err)
	}
	return &ro, nil
}

// LoadFile picks the decoder from the file extension; anything but .json is read as YAML.
func LoadFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

// Build resolves every entry through reg. All behaviors and displays emit into out.
func (ro *Roster) Build(reg behavior.Registry, out behavior.Sink, logger log.Log) ([]*duck.Duck, error) {
	if len(ro.Ducks) == 0 {
		return nil, ErrEmptyRoster
	}
	if logger == nil {
		logger = log.NewNop()
	}

	ducks := make([]*duck.Duck, 0, len(ro.Ducks))
	for i, e := range ro.Ducks {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("duck-%d", i+1)
		}
		if e.Quack == "" {
			return nil, fmt.Errorf("duck %q: quack: %w", name, duck.ErrMissingBehavior)
		}
		if e.Fly == "" {
			return nil, fmt.Errorf("duck %q: fly: %w", name, duck.ErrMissingBehavior)
		}

		q, err := reg.NewQuack(e.Quack, out)
		if err != nil {
			return nil, fmt.Errorf("duck %q: %w", name, err)
		}
		f, err := reg.NewFly(e.Fly, out)
		if err != nil {
			return nil, fmt.Errorf("duck %q: %w", name, err)
		}

		opts := []duck.Option{duck.WithLogger(logger)}
		if out != nil {
			opts = append(opts, duck.WithDisplaySink(out))
		}
		d, err := duck.New(name, e.Display, q, f, opts...)
		if err != nil {
			return nil, err
		}
		logger.Debug("duck composed",
			log.String("duck", name),
			log.String("quack", e.Quack),
			log.String("fly", e.Fly),
		)
		ducks = append(ducks, d)
	}
	return ducks, nil
}
