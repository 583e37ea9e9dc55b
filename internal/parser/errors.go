package parser

import "errors"

var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedClassBody = errors.New("Expect '{' before class body.")
var errUnclosedClassBody = errors.New("Expect '}' after class body.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedSemicolonAfterVar = errors.New("Expect ';' after variable declaration.")
var errExpectedParenAfterFor = errors.New("Expect '(' after 'for'.")
var errExpectedSemicolonAfterCond = errors.New("Expect ';' after loop condition.")
var errUnclosedForClauses = errors.New("Expect ')' after for clauses.")
var errExpectedParenAfterIf = errors.New("Expect '(' after 'if'.")
var errUnclosedIfCond = errors.New("Expect ')' after if condition.")
var errExpectedSemicolonAfterValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonAfterReturn = errors.New("Expect ';' after return value.")
var errExpectedParenAfterWhile = errors.New("Expect '(' after 'while'.")
var errUnclosedWhileCond = errors.New("Expect ')' after condition.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errExpectedSemicolonAfterExpr = errors.New("Expect ';' after expression.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errExpectedDotAfterSuper = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUndefinedExpr = errors.New("Expect expression.")
