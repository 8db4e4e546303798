package lox

// nodeSeq hands out the stable small-integer identifiers the resolver uses
// to key its scope-depth side table, instead of Expr pointer identity
// (see internal/cmd/astgen, which stamps every generated Expr constructor
// with one).
var nodeSeq int

func nextNodeID() int {
	nodeSeq++
	return nodeSeq
}
