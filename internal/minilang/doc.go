/*
Package minilang is the front end of the MiniLang compiler: a lexer, a
recursive-descent parser, and a semantic analyzer, run in that order over
one source text. Lowering the validated tree to executable form belongs to
an external collaborator.

Grammar

	program     --> function* EOF ;
	function    --> "fn" IDENT "(" params? ")" ( ":" type )? block ;
	params      --> param ( "," param )* ;
	param       --> IDENT ":" type ;
	type        --> "int" | "float" | "bool" | "string" ;
	block       --> "{" statement* "}" ;
	statement   --> return_stmt
	              | print_stmt
	              | if_stmt
	              | while_stmt
	              | decl_assign_or_call ;
	return_stmt --> "return" expression? ";" ;
	print_stmt  --> "print" "(" expression ")" ";" ;
	if_stmt     --> "if" "(" expression ")" block ( "else" block )? ;
	while_stmt  --> "while" "(" expression ")" block ;
	decl_assign_or_call
	            --> IDENT ":" type ( "=" expression )? ";"
	              | IDENT "=" expression ";"
	              | IDENT "(" args? ")" ";" ;
	args        --> expression ( "," expression )* ;
	expression  --> comparison ;
	comparison  --> additive ( ( "<" | ">" | "<=" | ">=" | "==" | "!=" ) additive )* ;
	additive    --> multiplicative ( ( "+" | "-" ) multiplicative )* ;
	multiplicative
	            --> factor ( ( "*" | "/" ) factor )* ;
	factor      --> NUMBER | STRING | IDENT | "(" expression ")" ;

Notes on the lexical grammar:
+ Any run of characters from { + - * / = < > ! } is one OP token, so `x=-1`
  lexes as IDENT, OP "=-", NUMBER and fails in the parser.
+ "true" and "false" lex as keywords but no factor production accepts them;
  there is no boolean literal expression.
+ A call statement is parsed and discarded; calls are never resolved or
  type-checked against a function table.
*/
package minilang
