// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package dirtree rebuilds a directory tree from a terminal transcript of
// `cd` and `ls` commands and answers size questions about it.
//
// Why an arena?
//
// Walking the transcript needs both directions: `cd name` goes down to a
// child and `cd ..` goes back up to the parent. Nodes therefore live in a
// single slice and refer to each other by NodeID. Moving up is a lookup of
// the stored parent id, so no node ever holds a pointer back to its parent
// and the tree stays a plain value that is trivial to copy and compare.
package dirtree
