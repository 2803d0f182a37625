// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: Graph document loader.
//
// Document shape (YAML; JSON is accepted as the YAML flow subset):
//
//	nodes:
//	  - {id: 1, sequence: ACGT}
//	edges:
//	  - [1, 2]
//	paths:
//	  - {name: s1, label: case, nodes: [1, 2, 4]}
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frfinder/core"
)

// ErrBadDocument indicates a graph document that cannot be decoded or that
// describes an inconsistent graph.
var ErrBadDocument = errors.New("loader: malformed graph document")

// Document is the decoded form of a graph file.
type Document struct {
	Nodes []NodeDoc    `yaml:"nodes" validate:"required,min=1,dive"`
	Edges [][2]uint64  `yaml:"edges"`
	Paths []PathDoc    `yaml:"paths" validate:"dive"`
}

// NodeDoc is one node entry.
type NodeDoc struct {
	ID       uint64 `yaml:"id"`
	Sequence string `yaml:"sequence"`
}

// PathDoc is one path entry.
type PathDoc struct {
	Name  string   `yaml:"name" validate:"required"`
	Label string   `yaml:"label"`
	Nodes []uint64 `yaml:"nodes" validate:"required,min=1"`
}

var docValidate = validator.New()

// Decode reads a Document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty input: %w", ErrBadDocument)
		}
		return nil, fmt.Errorf("Decode: %w: %v", ErrBadDocument, err)
	}
	if err := docValidate.Struct(doc); err != nil {
		return nil, fmt.Errorf("Decode: %w: %v", ErrBadDocument, err)
	}

	return &doc, nil
}

// Build populates a new graph from doc: nodes first, then edges, then paths.
// opts are passed to core.NewGraph.
func (doc *Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Sequence); err != nil {
			return nil, fmt.Errorf("Build: %w: %w", ErrBadDocument, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("Build: %w: %w", ErrBadDocument, err)
		}
	}
	for _, p := range doc.Paths {
		if err := g.AddPath(p.Name, p.Label, p.Nodes); err != nil {
			return nil, fmt.Errorf("Build: %w: %w", ErrBadDocument, err)
		}
	}

	return g, nil
}

// Load decodes a graph document from r and builds it.
func Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Build(opts...)
}

// LoadFile is Load on the named file.
func LoadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	g, err := Load(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return g, nil
}
