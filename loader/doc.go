// Package loader builds a core.Graph from a graph document whose nodes
// already carry their sequences, and reads path-label files.
package loader
