package ast

import (
	"strconv"
	"strings"

	"github.com/wdamron/hmcheck/types"
)

var infixSymbols = map[string]string{
	Plus:           "+",
	Minus:          "-",
	Multiply:       "*",
	Divide:         "/",
	Modulo:         "`mod`",
	Power:          "^",
	Equal:          "==",
	NotEqual:       "/=",
	LessThan:       "<",
	LessOrEqual:    "<=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	Concat:         "++",
	And:            "&&",
	Or:             "||",
}

var prefixNames = map[string]string{
	Max:        "max",
	Min:        "min",
	Negation:   "negate",
	Round:      "round",
	Absolute:   "abs",
	Ceiling:    "ceiling",
	Floor:      "floor",
	Sqrt:       "sqrt",
	Not:        "not",
	Collect:    "map",
	Select:     "filter",
	Detect:     "find",
	AnySatisfy: "any",
	AllSatisfy: "all",
	DetectMax:  "maximum",
	DetectMin:  "minimum",
	Size:       "length",
}

func opSymbol(table map[string]string, op string) string {
	if s, ok := table[op]; ok {
		return s
	}
	return op
}

// ExprString returns Haskell-like source text for an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns Haskell-like source text for a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// EquationString returns Haskell-like source text for an equation of the named function.
func EquationString(name string, eq *Equation) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, p := range eq.Patterns {
		sb.WriteByte(' ')
		patternString(&sb, true, p)
	}
	switch body := eq.Body.(type) {
	case *UnguardedBody:
		sb.WriteString(" = ")
		exprString(&sb, false, body.Expr)
	case Guards:
		for _, g := range body {
			sb.WriteString(" | ")
			exprString(&sb, false, g.Condition)
			sb.WriteString(" = ")
			exprString(&sb, false, g.Body)
		}
	}
	return sb.String()
}

func literalString(sb *strings.Builder, l *Literal) {
	switch l.Kind {
	case StringLiteral:
		sb.WriteString(strconv.Quote(l.Value))
	case CharLiteral:
		sb.WriteByte('\'')
		sb.WriteString(l.Value)
		sb.WriteByte('\'')
	default:
		sb.WriteString(l.Value)
	}
}

func binary(sb *strings.Builder, simple bool, op string, left, right Expr) {
	if simple {
		sb.WriteByte('(')
	}
	exprString(sb, true, left)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	exprString(sb, true, right)
	if simple {
		sb.WriteByte(')')
	}
}

func prefix(sb *strings.Builder, simple bool, name string, args ...Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(name)
	for _, arg := range args {
		sb.WriteByte(' ')
		exprString(sb, true, arg)
	}
	if simple {
		sb.WriteByte(')')
	}
}

func exprList(sb *strings.Builder, open, close byte, es []Expr) {
	sb.WriteByte(open)
	for i, e := range es {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, false, e)
	}
	sb.WriteByte(close)
}

// printer renders syntax through the visitors, so every expression and pattern kind has a case.
// When simple is set, compound forms are parenthesised. The visitor results are always nil.
type printer struct {
	sb     *strings.Builder
	simple bool
}

var (
	_ ExprVisitor    = (*printer)(nil)
	_ PatternVisitor = (*printer)(nil)
)

func exprString(sb *strings.Builder, simple bool, e Expr) {
	e.Accept(&printer{sb: sb, simple: simple})
}

func (p *printer) open() {
	if p.simple {
		p.sb.WriteByte('(')
	}
}

func (p *printer) close() {
	if p.simple {
		p.sb.WriteByte(')')
	}
}

func (p *printer) VisitLiteral(e *Literal) (types.Type, error) {
	literalString(p.sb, e)
	return nil, nil
}

func (p *printer) VisitSymbol(e *Symbol) (types.Type, error) {
	p.sb.WriteString(e.Name)
	return nil, nil
}

func (p *printer) VisitArithmetic(e *Arithmetic) (types.Type, error) {
	if sym, ok := infixSymbols[e.Op]; ok {
		binary(p.sb, p.simple, sym, e.Left, e.Right)
	} else {
		prefix(p.sb, p.simple, opSymbol(prefixNames, e.Op), e.Left, e.Right)
	}
	return nil, nil
}

func (p *printer) VisitArithmeticUnary(e *ArithmeticUnary) (types.Type, error) {
	prefix(p.sb, p.simple, opSymbol(prefixNames, e.Op), e.Operand)
	return nil, nil
}

func (p *printer) VisitComparison(e *Comparison) (types.Type, error) {
	binary(p.sb, p.simple, opSymbol(infixSymbols, e.Op), e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitStringOp(e *StringOp) (types.Type, error) {
	binary(p.sb, p.simple, opSymbol(infixSymbols, e.Op), e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitLogical(e *Logical) (types.Type, error) {
	binary(p.sb, p.simple, opSymbol(infixSymbols, e.Op), e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitLogicalUnary(e *LogicalUnary) (types.Type, error) {
	prefix(p.sb, p.simple, opSymbol(prefixNames, e.Op), e.Operand)
	return nil, nil
}

func (p *printer) VisitIf(e *If) (types.Type, error) {
	p.open()
	p.sb.WriteString("if ")
	exprString(p.sb, false, e.Cond)
	p.sb.WriteString(" then ")
	exprString(p.sb, false, e.Then)
	p.sb.WriteString(" else ")
	exprString(p.sb, false, e.Else)
	p.close()
	return nil, nil
}

func (p *printer) VisitLambda(e *Lambda) (types.Type, error) {
	p.open()
	p.sb.WriteByte('\\')
	for i, param := range e.Params {
		if i > 0 {
			p.sb.WriteByte(' ')
		}
		patternString(p.sb, true, param)
	}
	p.sb.WriteString(" -> ")
	exprString(p.sb, false, e.Body)
	p.close()
	return nil, nil
}

func (p *printer) VisitApplication(e *Application) (types.Type, error) {
	p.open()
	// Curried applications print left-nested without parentheses: `f x y`
	exprString(p.sb, !isApplication(e.Func), e.Func)
	p.sb.WriteByte(' ')
	exprString(p.sb, true, e.Arg)
	p.close()
	return nil, nil
}

func (p *printer) VisitComposition(e *Composition) (types.Type, error) {
	binary(p.sb, p.simple, ".", e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitInfixApplication(e *InfixApplication) (types.Type, error) {
	binary(p.sb, p.simple, "`"+e.Op+"`", e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitDataExpr(e *DataExpr) (types.Type, error) {
	prefix(p.sb, p.simple && len(e.Fields) > 0, e.Constructor, e.Fields...)
	return nil, nil
}

func (p *printer) VisitTuple(e *Tuple) (types.Type, error) {
	exprList(p.sb, '(', ')', e.Elems)
	return nil, nil
}

func (p *printer) VisitCons(e *Cons) (types.Type, error) {
	binary(p.sb, p.simple, ":", e.Head, e.Tail)
	return nil, nil
}

func (p *printer) VisitList(e *List) (types.Type, error) {
	exprList(p.sb, '[', ']', e.Elems)
	return nil, nil
}

func (p *printer) VisitListBinary(e *ListBinary) (types.Type, error) {
	prefix(p.sb, p.simple, opSymbol(prefixNames, e.Op), e.Left, e.Right)
	return nil, nil
}

func (p *printer) VisitListUnary(e *ListUnary) (types.Type, error) {
	prefix(p.sb, p.simple, opSymbol(prefixNames, e.Op), e.Operand)
	return nil, nil
}

func (p *printer) VisitOtherwise(e *Otherwise) (types.Type, error) {
	p.sb.WriteString("otherwise")
	return nil, nil
}

func (p *printer) VisitLetIn(e *LetIn) (types.Type, error) {
	p.open()
	p.sb.WriteString("let ")
	for i, b := range e.Bindings {
		if i > 0 {
			p.sb.WriteString("; ")
		}
		p.sb.WriteString(b.Name)
		p.sb.WriteString(" = ")
		exprString(p.sb, false, b.Value)
	}
	p.sb.WriteString(" in ")
	exprString(p.sb, false, e.Body)
	p.close()
	return nil, nil
}

func (p *printer) VisitCase(e *Case) (types.Type, error) {
	p.open()
	p.sb.WriteString("case ")
	exprString(p.sb, false, e.Scrutinee)
	p.sb.WriteString(" of ")
	for i, alt := range e.Alternatives {
		if i > 0 {
			p.sb.WriteString("; ")
		}
		patternString(p.sb, false, alt.Pattern)
		p.sb.WriteString(" -> ")
		exprString(p.sb, false, alt.Body)
	}
	p.close()
	return nil, nil
}

func isApplication(e Expr) bool {
	_, ok := e.(*Application)
	return ok
}

func patternList(sb *strings.Builder, open, close byte, ps []Pattern) {
	sb.WriteByte(open)
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		patternString(sb, false, p)
	}
	sb.WriteByte(close)
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	p.Accept(&printer{sb: sb, simple: simple}, nil)
}

func (p *printer) VisitLiteralPattern(pt *LiteralPattern, _ types.Type) error {
	literalString(p.sb, pt.Value)
	return nil
}

func (p *printer) VisitVarPattern(pt *VarPattern, _ types.Type) error {
	p.sb.WriteString(pt.Name)
	return nil
}

func (p *printer) VisitWildcardPattern(pt *WildcardPattern, _ types.Type) error {
	p.sb.WriteByte('_')
	return nil
}

func (p *printer) VisitAsPattern(pt *AsPattern, _ types.Type) error {
	p.sb.WriteString(pt.Name)
	p.sb.WriteByte('@')
	patternString(p.sb, true, pt.Pattern)
	return nil
}

func (p *printer) VisitConsPattern(pt *ConsPattern, _ types.Type) error {
	p.sb.WriteByte('(')
	patternString(p.sb, true, pt.Head)
	p.sb.WriteByte(':')
	patternString(p.sb, false, pt.Tail)
	p.sb.WriteByte(')')
	return nil
}

func (p *printer) VisitListPattern(pt *ListPattern, _ types.Type) error {
	patternList(p.sb, '[', ']', pt.Elems)
	return nil
}

func (p *printer) VisitTuplePattern(pt *TuplePattern, _ types.Type) error {
	patternList(p.sb, '(', ')', pt.Elems)
	return nil
}

func (p *printer) VisitConstructorPattern(pt *ConstructorPattern, _ types.Type) error {
	constructorPattern(p.sb, p.simple, pt.Constructor, pt.Args)
	return nil
}

func (p *printer) VisitApplicationPattern(pt *ApplicationPattern, _ types.Type) error {
	constructorPattern(p.sb, p.simple, pt.Constructor, pt.Args)
	return nil
}

func (p *printer) VisitRecordPattern(pt *RecordPattern, _ types.Type) error {
	p.sb.WriteString(pt.Constructor)
	p.sb.WriteString(" {")
	for i, f := range pt.Fields {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		p.sb.WriteByte(' ')
		p.sb.WriteString(f.Field)
		p.sb.WriteString(" = ")
		patternString(p.sb, false, f.Pattern)
	}
	p.sb.WriteString(" }")
	return nil
}

func constructorPattern(sb *strings.Builder, simple bool, name string, args []Pattern) {
	simple = simple && len(args) > 0
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(name)
	for _, arg := range args {
		sb.WriteByte(' ')
		patternString(sb, true, arg)
	}
	if simple {
		sb.WriteByte(')')
	}
}
