package cflow

import "mocha/ast"

// Result is the control-flow summary of a statement or statement sequence.
type Result struct {
	// AllPathsReturn indicates that every path through the node ends in a
	// return.
	AllPathsReturn bool

	// AlwaysReturns, AlwaysBreaks and AlwaysContinues indicate that control
	// never falls through the node because it unconditionally returns, breaks
	// or continues.
	AlwaysReturns   bool
	AlwaysBreaks    bool
	AlwaysContinues bool

	// MayReturn indicates that some path through the node returns.
	MayReturn bool
}

// Terminates reports whether control never falls through to the statement
// after the node.
func (r Result) Terminates() bool {
	return r.AlwaysReturns || r.AlwaysBreaks || r.AlwaysContinues
}

// Analyze computes the control-flow summary of a statement.
func Analyze(stmt ast.Stmt) Result {
	switch v := stmt.(type) {
	case *ast.ReturnStmt:
		return Result{AllPathsReturn: true, AlwaysReturns: true, MayReturn: true}
	case *ast.BreakStmt:
		return Result{AlwaysBreaks: true}
	case *ast.ContinueStmt:
		return Result{AlwaysContinues: true}
	case *ast.Block:
		return AnalyzeSeq(v.Stmts)
	case *ast.IfStmt:
		return analyzeIf(v)
	case *ast.WhileStmt:
		// loops may run zero times so they guarantee nothing; a break or
		// continue in the body targets the loop itself
		return Result{MayReturn: Analyze(v.Body).MayReturn}
	case *ast.DoWhileStmt:
		return Result{MayReturn: Analyze(v.Body).MayReturn}
	case *ast.ForStmt:
		return Result{MayReturn: Analyze(v.Body).MayReturn}
	case *ast.ForEachStmt:
		return Result{MayReturn: Analyze(v.Body).MayReturn}
	case *ast.SwitchStmt:
		return analyzeSwitch(v)
	default:
		return Result{}
	}
}

// AnalyzeSeq computes the control-flow summary of a statement sequence.
// Analysis stops at the first statement that terminates: anything after it
// is unreachable.
func AnalyzeSeq(stmts []ast.Stmt) Result {
	var res Result

	for _, stmt := range stmts {
		r := Analyze(stmt)
		res.MayReturn = res.MayReturn || r.MayReturn

		if r.Terminates() || r.AllPathsReturn {
			res.AllPathsReturn = r.AllPathsReturn
			res.AlwaysReturns = r.AlwaysReturns
			res.AlwaysBreaks = r.AlwaysBreaks
			res.AlwaysContinues = r.AlwaysContinues
			break
		}
	}

	return res
}

// analyzeIf combines the branches of an if statement.  Without an else
// branch, the missing branch falls through so nothing is guaranteed.
func analyzeIf(is *ast.IfStmt) Result {
	then := Analyze(is.Then)

	if is.Else == nil {
		return Result{MayReturn: then.MayReturn}
	}

	els := Analyze(is.Else)
	return Result{
		AllPathsReturn:  then.AllPathsReturn && els.AllPathsReturn,
		AlwaysReturns:   then.AlwaysReturns && els.AlwaysReturns,
		AlwaysBreaks:    then.AlwaysBreaks && els.AlwaysBreaks,
		AlwaysContinues: then.AlwaysContinues && els.AlwaysContinues,
		MayReturn:       then.MayReturn || els.MayReturn,
	}
}

// analyzeSwitch computes the summary of a switch.  All paths return only if
// there is a default case and every case returns.  An empty case falls
// through to the next one; a case that can reach its end without returning
// disqualifies the whole switch.
func analyzeSwitch(ss *ast.SwitchStmt) Result {
	var res Result
	hasDefault := false
	allReturn := true

	for i, cc := range ss.Cases {
		if cc.Value == nil {
			hasDefault = true
		}

		if len(cc.Body) == 0 {
			// falling off the last case leaves the switch
			if i == len(ss.Cases)-1 {
				allReturn = false
			}

			continue
		}

		r := AnalyzeSeq(cc.Body)
		res.MayReturn = res.MayReturn || r.MayReturn

		if !r.AllPathsReturn {
			allReturn = false
		}
	}

	if hasDefault && allReturn && len(ss.Cases) > 0 {
		res.AllPathsReturn = true
		res.AlwaysReturns = true
	}

	return res
}

// Unreachable returns the statements of a sequence that follow a statement
// which never falls through.  It returns nil if every statement is reachable.
func Unreachable(stmts []ast.Stmt) []ast.Stmt {
	for i, stmt := range stmts {
		if Analyze(stmt).Terminates() && i < len(stmts)-1 {
			return stmts[i+1:]
		}
	}

	return nil
}
