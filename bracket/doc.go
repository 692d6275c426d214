// ABOUTME: Package documentation for the bracket tree reader
// ABOUTME: Describes canonical form, normalization and error reporting

// Package bracket reads bracket-notation trees such as
//
//	(ROOT (S (NP (DT The) (NN dog)) (VP (VBZ barks))))
//
// into a graph.Graph and a graph.LabelIndex.
//
// Raw treebank lines leave leaves unbracketed ("(DT The)"). Normalize
// rewrites them into canonical form, where every node including leaves is an
// open delimiter, a label and a close delimiter ("(DT(The))"). Build parses
// canonical text; Parse does both.
//
// Every parse failure is a *SyntaxError that matches ErrMalformedInput with
// errors.Is. A failed parse never returns a partially built graph.
//
// LineParser and StreamingParser read one tree per line from a file.
package bracket
