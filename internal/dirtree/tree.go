// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Tree arena and its queries.
package dirtree

import (
	"fmt"
	"slices"
	"strings"
)

// NodeID addresses a node in a Tree. The root is always 0.
type NodeID int

// Root is the id of the root directory.
const Root NodeID = 0

// noParent marks the root's parent.
const noParent NodeID = -1

// Node is a file or directory. Size is only meaningful for files;
// directory sizes are computed by Tree.Size.
type Node struct {
	Name     string
	Dir      bool
	Size     int
	Parent   NodeID
	Children []NodeID
}

// Tree is an arena of nodes rooted at "/".
type Tree struct {
	nodes []Node
}

// New returns a tree holding only the root directory.
func New() *Tree {
	return &Tree{nodes: []Node{{Name: "/", Dir: true, Parent: noParent}}}
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	n := t.nodes[id]
	n.Children = slices.Clone(n.Children)
	return n, true
}

// Parent returns the parent of id. The root has no parent.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, ok := t.Node(id)
	if !ok || n.Parent == noParent {
		return 0, false
	}
	return n.Parent, true
}

// Child returns the child of dir called name.
func (t *Tree) Child(dir NodeID, name string) (NodeID, bool) {
	if !t.valid(dir) {
		return 0, false
	}
	for _, c := range t.nodes[dir].Children {
		if t.nodes[c].Name == name {
			return c, true
		}
	}
	return 0, false
}

// add inserts a child under dir, or returns the existing child of that name.
// Listing a directory twice must not duplicate its entries.
func (t *Tree) add(dir NodeID, name string, isDir bool, size int) (NodeID, error) {
	if existing, ok := t.Child(dir, name); ok {
		if t.nodes[existing].Dir != isDir {
			return 0, fmt.Errorf("%s listed both as file and directory", t.Path(existing))
		}
		if !isDir {
			t.nodes[existing].Size = size
		}
		return existing, nil
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Name: name, Dir: isDir, Size: size, Parent: dir})
	t.nodes[dir].Children = append(t.nodes[dir].Children, id)
	return id, nil
}

// Path returns the absolute path of id, e.g. "/a/e". Unknown ids yield "".
func (t *Tree) Path(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	if id == Root {
		return "/"
	}
	var parts []string
	for cur := id; cur != Root; cur = t.nodes[cur].Parent {
		parts = append(parts, t.nodes[cur].Name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// Size returns the size of a file, or the total size of everything below a
// directory. Unknown ids have size 0.
func (t *Tree) Size(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	return t.sizes()[id]
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// sizes computes every node's size in one pass. Children always have a
// larger id than their parent, so walking the arena backwards visits every
// child before its parent.
func (t *Tree) sizes() []int {
	sizes := make([]int, len(t.nodes))
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		if !n.Dir {
			sizes[i] = n.Size
		}
		if n.Parent != noParent {
			sizes[n.Parent] += sizes[i]
		}
	}
	return sizes
}

// Dirs returns every directory id in creation order.
func (t *Tree) Dirs() []NodeID {
	var dirs []NodeID
	for i, n := range t.nodes {
		if n.Dir {
			dirs = append(dirs, NodeID(i))
		}
	}
	return dirs
}

// SumAtMost adds up the sizes of all directories whose size is at most
// limit. Nested directories are counted once for themselves and again as
// part of every qualifying ancestor.
func (t *Tree) SumAtMost(limit int) int {
	sizes := t.sizes()
	total := 0
	for _, id := range t.Dirs() {
		if sizes[id] <= limit {
			total += sizes[id]
		}
	}
	return total
}

// SmallestToFree returns the size of the smallest directory whose deletion
// leaves at least needed free space on a disk of the given capacity. It
// returns false when not even deleting the root is enough.
func (t *Tree) SmallestToFree(capacity, needed int) (int, bool) {
	sizes := t.sizes()
	missing := needed - (capacity - sizes[Root])
	if missing <= 0 {
		return 0, true
	}
	best, found := 0, false
	for _, id := range t.Dirs() {
		if s := sizes[id]; s >= missing && (!found || s < best) {
			best, found = s, true
		}
	}
	return best, found
}
