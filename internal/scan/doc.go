// Package scan holds the traversal state of a file scan.
//
// A Tree is an arena of context frames for one file. The root frame is
// created with the tree; every nested syntactic region the driver enters
// (script block, component, function body, assignment right-hand side,
// query loop) gets a child frame derived from its parent. Frames store their
// parent's ID and never their children, so the tree is acyclic by
// construction and abandoned subtrees need no cleanup.
//
// Rules receive a Ref (tree + frame ID) and use it to
//
//   - read where they are: file, component name, function, Kind,
//     assignment/component flags, enclosing markup element, token stream;
//   - navigate: Parent, AncestorOfType, token cursors Before/After;
//   - emit findings: Record/RecordOnce, Append/AppendOnce, or a Builder that
//     stamps a position first.
//
// Suppression codes added to a frame apply to that frame and all of its
// descendants. The driver applies them when it collects the tree's
// diagnostics, so recording order does not matter.
//
// A Tree is not goroutine-safe. Each file gets its own tree; the shared
// config.Config is read-only.
package scan
