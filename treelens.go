// ABOUTME: Main treelens package providing version information and package documentation
// ABOUTME: This is the root package for the bracket tree inspection tool

// Package treelens reads bracketed parse trees into graphs and answers
// dominance and reachability questions about their labels. It includes
// graph analysis algorithms like paths-to-root, dominator tree and subtree
// size calculation.
package treelens

// Version is the semantic version of the treelens tool
const Version = "0.1.0-dev"
