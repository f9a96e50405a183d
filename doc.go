// Package morphgraph is a double-pushout (DPO) graph rewriting engine
// for labeled directed multigraphs.
//
// 🚀 What is morphgraph?
//
//	A small, deterministic library that turns annotated graphs into rewrite
//	rules and applies them:
//
//	  • Core primitives: position-indexed nodes, edges, subgraph views
//	  • Rule compilation: split an annotated graph into L ← K → R
//	  • Matching: enumerate every embedding of a pattern into a target
//	  • Application: construct the rewritten graph at a chosen embedding
//
// ✨ Why choose morphgraph?
//
//   - Deterministic        — identical inputs produce byte-identical outputs
//   - Value semantics      — graphs and rules are never mutated after build
//   - Index discipline     — nodes referenced by position, never by pointer
//   - Pure Go              — no cgo, tiny dependency surface
//
// Everything is organized under focused subpackages:
//
//	core/      — Graph, Node, Edge, Subgraph, Mapping value types
//	rewrite/   — Rule compilation (DPO split) and application (pushout)
//	match/     — backtracking subgraph-embedding search
//	dot/       — DOT-dialect authoring format for rule graphs
//	graphjson/ — JSONC fixtures adapter
//	derive/    — rule-sequence application over a seed graph
//
// A typical call chain:
//
//	rule, _ := rewrite.Compile(annotated)
//	matches, _ := match.Find(rule.L, target)
//	result, _ := rewrite.Apply(rule, target, matches[0])
//
//	go get github.com/katalvlaran/morphgraph
package morphgraph
