// Package scan extracts validated variable values from untrusted,
// line-oriented configuration files.
//
// A file is scanned once, line by line, for assignments of the shape
//
//	name<separator>value [whitespace] [# comment]
//
// where name and separator are matched literally and value must satisfy a
// caller-supplied regular expression. The matching rule is anchored at both
// ends of the line: any unconsumed trailing text other than whitespace and
// an optional #-comment disqualifies the line entirely. Lines that do not
// match are ignored, so config files may freely contain unrelated content.
//
// Three importers build on the same per-line rule:
//
//   - [Importer.One] captures a single variable, last definition wins.
//   - [Importer.Many] captures a set of variables in one pass, silently
//     omitting names that never matched.
//   - [Importer.Require] wraps Many and fails the whole operation unless
//     every requested name was found.
//
// Redefinitions, unreadable files, and missing required variables are
// reported as warnings through an injected [Reporter]; they never panic
// and only the Require path escalates to an operation-level error.
//
// Candidate values can additionally be vetted by a compiled [Check]
// expression after the pattern accepts them, e.g. to enforce numeric
// ranges that are awkward to express as a regular expression.
package scan
