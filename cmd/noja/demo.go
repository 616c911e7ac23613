package main

import "noja/internal/ast"

// buildDemoAST hand-builds a small program covering a literal assignment,
// an if/else, a while loop with break, and a two-target assignment from a
// call — enough of the lowering surface to exercise without a fixture
// file on hand.
func buildDemoAST() *ast.Node {
	assignX := ast.NewBinary(ast.Ass, 0, 5, ast.NewIdent(0, 1, "x"), ast.NewInt(4, 1, 10))

	ifElse := ast.NewIfElse(10, 20,
		ast.NewIdent(13, 1, "x"),
		ast.NewComp(16, 1, ast.NewInt(16, 1, 1)),
		ast.NewComp(20, 1, ast.NewInt(20, 1, 2)),
	)

	loopBody := ast.NewComp(40, 5, ast.NewBreak(40, 5))
	loop := ast.NewWhile(35, 20, ast.NewIdent(41, 1, "x"), loopBody)

	call := ast.NewCall(60, 5, ast.NewIdent(60, 1, "f"), nil)
	pair := ast.NewBinary(ast.Pair, 56, 3, ast.NewIdent(56, 1, "a"), ast.NewIdent(58, 1, "b"))
	multiAssign := ast.NewBinary(ast.Ass, 56, 10, pair, call)

	return ast.NewComp(0, 70, ast.Chain(assignX, ifElse, loop, multiAssign))
}
