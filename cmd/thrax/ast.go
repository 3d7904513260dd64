package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/lexer"
	"github.com/elijah-potter/thrax-language/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed AST of a thrax source file",
	Args:  cobra.ExactArgs(1),
	RunE:  printAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func printAST(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", filename, err)
	}
	source := string(content)

	tokens, err := lexer.Lex(source)
	if err != nil {
		lexErr := err.(*langerr.LexError)
		fmt.Fprintf(os.Stderr, "lex error: %s\n", lexErr)
		os.Exit(1)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		parseErr := err.(*langerr.ParseError)
		printParseError(parseErr, tokens, source)
		os.Exit(1)
	}

	for _, stmt := range program {
		fmt.Println(dumpStmt(stmt, 0))
	}
	return nil
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpStmt(s ast.Stmt, depth int) string {
	var b strings.Builder
	switch st := s.(type) {
	case ast.VarDecl:
		fmt.Fprintf(&b, "%sVarDecl %s =\n%s", indent(depth), st.Ident, dumpExpr(st.Init, depth+1))
	case ast.VarAssign:
		fmt.Fprintf(&b, "%sVarAssign op=%d\n%s%s", indent(depth), st.Op, dumpExpr(st.To, depth+1), dumpExpr(st.Value, depth+1))
	case ast.FnDecl:
		fmt.Fprintf(&b, "%sFnDecl %s(%s)\n", indent(depth), st.Ident, strings.Join(st.Params, ", "))
		for _, inner := range st.Body {
			fmt.Fprintln(&b, dumpStmt(inner, depth+1))
		}
	case ast.WhileLoop:
		fmt.Fprintf(&b, "%sWhileLoop\n%s", indent(depth), dumpExpr(st.Cond, depth+1))
		for _, inner := range st.Body {
			fmt.Fprintln(&b, dumpStmt(inner, depth+1))
		}
	case ast.IfElse:
		fmt.Fprintf(&b, "%sIfElse\n%s", indent(depth), dumpExpr(st.Cond, depth+1))
		for _, inner := range st.TrueBranch {
			fmt.Fprintln(&b, dumpStmt(inner, depth+1))
		}
		if st.ElseBranch != nil {
			fmt.Fprintf(&b, "%sElse\n", indent(depth))
			for _, inner := range st.ElseBranch {
				fmt.Fprintln(&b, dumpStmt(inner, depth+1))
			}
		}
	case ast.ReturnStmt:
		if st.Value != nil {
			fmt.Fprintf(&b, "%sReturn\n%s", indent(depth), dumpExpr(st.Value, depth+1))
		} else {
			fmt.Fprintf(&b, "%sReturn", indent(depth))
		}
	case ast.BreakStmt:
		fmt.Fprintf(&b, "%sBreak", indent(depth))
	case ast.ContinueStmt:
		fmt.Fprintf(&b, "%sContinue", indent(depth))
	case ast.ExprStmt:
		fmt.Fprintf(&b, "%sExprStmt\n%s", indent(depth), dumpExpr(st.X, depth+1))
	}
	return strings.TrimRight(b.String(), "\n")
}

func dumpExpr(e ast.Expr, depth int) string {
	pad := indent(depth)
	switch ex := e.(type) {
	case ast.Ident:
		return fmt.Sprintf("%sIdent(%s)\n", pad, ex.Name)
	case ast.NumberLit:
		return fmt.Sprintf("%sNumber(%g)\n", pad, ex.Value)
	case ast.StringLit:
		return fmt.Sprintf("%sString(%q)\n", pad, ex.Value)
	case ast.BoolLit:
		return fmt.Sprintf("%sBool(%t)\n", pad, ex.Value)
	case ast.ArrayLiteral:
		s := fmt.Sprintf("%sArrayLiteral\n", pad)
		for _, el := range ex.Elements {
			s += dumpExpr(el, depth+1)
		}
		return s
	case ast.ObjectLiteral:
		s := fmt.Sprintf("%sObjectLiteral\n", pad)
		for _, name := range ex.Order {
			s += fmt.Sprintf("%s%s:\n%s", indent(depth+1), name, dumpExpr(ex.Fields[name], depth+2))
		}
		return s
	case ast.BinaryOp:
		s := fmt.Sprintf("%sBinaryOp(%d)\n", pad, ex.Kind)
		s += dumpExpr(ex.A, depth+1)
		s += dumpExpr(ex.B, depth+1)
		return s
	case ast.FnCall:
		s := fmt.Sprintf("%sFnCall %s\n", pad, ex.Name)
		for _, a := range ex.Args {
			s += dumpExpr(a, depth+1)
		}
		return s
	case ast.Member:
		s := fmt.Sprintf("%sMember\n", pad)
		s += dumpExpr(ex.Parent, depth+1)
		s += dumpExpr(ex.Child, depth+1)
		return s
	default:
		return fmt.Sprintf("%s<unknown expr>\n", pad)
	}
}
