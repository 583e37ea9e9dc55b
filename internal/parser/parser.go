package parser

import (
	"errors"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/tokens"
)

const maxFunctionParams = 255

// parseError unwinds the parser to the closest declaration boundary
type parseError struct{}

// Parser turns tokens into statements by recursive descent
type Parser struct {
	tokens  []tokens.Token
	current int

	diags *diag.Collector
}

// New creates a parser over a token stream terminated by EOF
func New(toks []tokens.Token, diags *diag.Collector) *Parser {
	return &Parser{
		tokens: toks,
		diags:  diags,
	}
}

// Parse returns every statement that parsed cleanly. Syntax errors are
// reported to the collector; after one the parser skips to the next
// statement boundary and keeps going.
func (p *Parser) Parse() []ast.Stmt {
	stmts := make([]ast.Stmt, 0)
	for !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *Parser) declaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tokens.CLASS) {
		return p.class()
	}
	if p.match(tokens.FUN) {
		return p.function("function")
	}
	if p.match(tokens.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) class() ast.Stmt {
	name := p.consume(tokens.IDENTIFIER, errExpectedClassName)

	var superclass *ast.VariableExpr
	if p.match(tokens.LESS) {
		superclass = &ast.VariableExpr{
			Name: p.consume(tokens.IDENTIFIER, errExpectedSuperclassName),
		}
	}

	p.consume(tokens.LEFT_BRACE, errExpectedClassBody)

	methods := make([]*ast.FunctionStmt, 0)
	for !p.check(tokens.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(tokens.RIGHT_BRACE, errUnclosedClassBody)

	return &ast.ClassStmt{
		Name:       name,
		Superclass: superclass,
		Methods:    methods,
	}
}

// function parses the part of a declaration after 'fun', which is all of a
// method declaration. kind only flavours the error messages.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(tokens.IDENTIFIER, errors.New("Expect "+kind+" name."))

	p.consume(tokens.LEFT_PAREN, errors.New("Expect '(' after "+kind+" name."))

	params := make([]*tokens.Token, 0)
	if !p.check(tokens.RIGHT_PAREN) {
		for {
			if len(params) >= maxFunctionParams {
				p.report(p.peek(), errMaxParameters)
			}
			params = append(params, p.consume(tokens.IDENTIFIER, errExpectedParamName))
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	p.consume(tokens.RIGHT_PAREN, errUnclosedParams)

	p.consume(tokens.LEFT_BRACE, errors.New("Expect '{' before "+kind+" body."))
	body := p.block()

	return &ast.FunctionStmt{
		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(tokens.IDENTIFIER, errExpectedIdentifier)

	var init ast.Expr
	if p.match(tokens.EQUAL) {
		init = p.expression()
	}

	p.consume(tokens.SEMICOLON, errExpectedSemicolonAfterVar)
	return &ast.VarStmt{
		Name:        name,
		Initializer: init,
	}
}

func (p *Parser) statement() ast.Stmt {
	if p.match(tokens.FOR) {
		return p.forLoop()
	}
	if p.match(tokens.IF) {
		return p.ifStmt()
	}
	if p.match(tokens.PRINT) {
		return p.printStmt()
	}
	if p.match(tokens.RETURN) {
		return p.ret()
	}
	if p.match(tokens.WHILE) {
		return p.while()
	}
	if p.match(tokens.LEFT_BRACE) {
		return &ast.BlockStmt{Stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop has no node of its own, it is rewritten into a while loop
// wrapped in a block holding the initializer.
func (p *Parser) forLoop() ast.Stmt {
	p.consume(tokens.LEFT_PAREN, errExpectedParenAfterFor)

	var init ast.Stmt
	if p.match(tokens.SEMICOLON) {
		init = nil
	} else if p.match(tokens.VAR) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond ast.Expr
	if !p.check(tokens.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(tokens.SEMICOLON, errExpectedSemicolonAfterCond)

	var inc ast.Expr
	if !p.check(tokens.RIGHT_PAREN) {
		inc = p.expression()
	}
	p.consume(tokens.RIGHT_PAREN, errUnclosedForClauses)

	body := p.statement()

	if inc != nil {
		body = &ast.BlockStmt{
			Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expression: inc}},
		}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{
		Condition: cond,
		Body:      body,
	}
	if init != nil {
		body = &ast.BlockStmt{
			Stmts: []ast.Stmt{init, body},
		}
	}
	return body
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(tokens.LEFT_PAREN, errExpectedParenAfterIf)
	cond := p.expression()
	p.consume(tokens.RIGHT_PAREN, errUnclosedIfCond)

	st := &ast.IfStmt{
		Condition:  cond,
		ThenBranch: p.statement(),
	}
	if p.match(tokens.ELSE) {
		st.ElseBranch = p.statement()
	}
	return st
}

func (p *Parser) printStmt() ast.Stmt {
	value := p.expression()
	p.consume(tokens.SEMICOLON, errExpectedSemicolonAfterValue)
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) ret() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(tokens.SEMICOLON) {
		value = p.expression()
	}
	p.consume(tokens.SEMICOLON, errExpectedSemicolonAfterReturn)
	return &ast.ReturnStmt{
		Keyword: keyword,
		Value:   value,
	}
}

func (p *Parser) while() ast.Stmt {
	p.consume(tokens.LEFT_PAREN, errExpectedParenAfterWhile)
	cond := p.expression()
	p.consume(tokens.RIGHT_PAREN, errUnclosedWhileCond)
	return &ast.WhileStmt{
		Condition: cond,
		Body:      p.statement(),
	}
}

func (p *Parser) block() []ast.Stmt {
	stmts := make([]ast.Stmt, 0)
	for !p.check(tokens.RIGHT_BRACE) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tokens.RIGHT_BRACE, errUnclosedBlock)
	return stmts
}

func (p *Parser) expressionStmt() ast.Stmt {
	expr := p.expression()
	p.consume(tokens.SEMICOLON, errExpectedSemicolonAfterExpr)
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if p.match(tokens.EQUAL) {
		equal := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{
				Name:  target.Name,
				Value: value,
			}
		case *ast.GetExpr:
			return &ast.SetExpr{
				Object: target.Object,
				Name:   target.Name,
				Value:  value,
			}
		}

		// Reported but not thrown, the parser is not confused
		p.report(equal, errInvalidAssignTarget)
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(tokens.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(tokens.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

// binary parses a left associative level of binary operators
func (p *Parser) binary(next func() ast.Expr, operators ...tokens.TokenType) ast.Expr {
	expr := next()
	for p.match(operators...) {
		operator := p.previous()
		right := next()
		expr = &ast.BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, tokens.BANG_EQUAL, tokens.EQUAL_EQUAL)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, tokens.GREATER, tokens.GREATER_EQUAL, tokens.LESS, tokens.LESS_EQUAL)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, tokens.MINUS, tokens.PLUS)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, tokens.SLASH, tokens.STAR)
}

func (p *Parser) unary() ast.Expr {
	if p.match(tokens.BANG, tokens.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{
			Operator: operator,
			Right:    right,
		}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(tokens.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else if p.match(tokens.DOT) {
			name := p.consume(tokens.IDENTIFIER, errExpectedProp)
			expr = &ast.GetExpr{
				Object: expr,
				Name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	arguments := make([]ast.Expr, 0)
	if !p.check(tokens.RIGHT_PAREN) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.report(p.peek(), errMaxArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	paren := p.consume(tokens.RIGHT_PAREN, errUnclosedArguments)
	return &ast.CallExpr{
		Callee:    callee,
		Paren:     paren,
		Arguments: arguments,
	}
}

func (p *Parser) primary() ast.Expr {
	if p.match(tokens.FALSE) {
		return &ast.LiteralExpr{Value: false}
	}
	if p.match(tokens.TRUE) {
		return &ast.LiteralExpr{Value: true}
	}
	if p.match(tokens.NIL) {
		return &ast.LiteralExpr{Value: nil}
	}
	if p.match(tokens.NUMBER, tokens.STRING) {
		return &ast.LiteralExpr{Value: p.previous().Literal}
	}
	if p.match(tokens.SUPER) {
		keyword := p.previous()
		p.consume(tokens.DOT, errExpectedDotAfterSuper)
		return &ast.SuperExpr{
			Keyword: keyword,
			Method:  p.consume(tokens.IDENTIFIER, errExpectedSuperMethod),
		}
	}
	if p.match(tokens.THIS) {
		return &ast.ThisExpr{Keyword: p.previous()}
	}
	if p.match(tokens.IDENTIFIER) {
		return &ast.VariableExpr{Name: p.previous()}
	}
	if p.match(tokens.LEFT_PAREN) {
		expr := p.expression()
		p.consume(tokens.RIGHT_PAREN, errUnclosedParen)
		return &ast.GroupingExpr{Expression: expr}
	}

	panic(p.fail(p.peek(), errUndefinedExpr))
}

func (p *Parser) consume(tk tokens.TokenType, err error) *tokens.Token {
	if p.check(tk) {
		return p.advance()
	}
	panic(p.fail(p.peek(), err))
}

// fail reports err at tk and returns the value to panic with
func (p *Parser) fail(tk *tokens.Token, err error) parseError {
	p.report(tk, err)
	return parseError{}
}

func (p *Parser) report(tk *tokens.Token, err error) {
	p.diags.ErrorAt(diag.Syntax, tk, err.Error())
}

func (p *Parser) advance() *tokens.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(types ...tokens.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t tokens.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) peek() *tokens.Token {
	return &p.tokens[p.current]
}

func (p *Parser) previous() *tokens.Token {
	return &p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == tokens.EOF
}

// synchronize discards tokens until a likely statement boundary
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == tokens.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case tokens.CLASS, tokens.FUN, tokens.VAR, tokens.FOR,
			tokens.IF, tokens.WHILE, tokens.PRINT, tokens.RETURN:
			return
		}
		p.advance()
	}
}
