// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package call

import (
	"fmt"
	"slices"

	"github.com/mmg1/ropium/pkg/query"
	"github.com/mmg1/ropium/pkg/util"
	"github.com/mmg1/ropium/pkg/util/source"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// COMMA signals an argument separator
const COMMA uint = 4

// STRING signals a quoted string literal
const STRING uint = 5

// WORD signals a function name or constant
const WORD uint = 6

// lexing rules
var rules = source.Or(
	source.One(LBRACE, byte('(')),
	source.One(RBRACE, byte(')')),
	source.One(COMMA, byte(',')),
	source.Many[byte](WHITESPACE, ' ', '\t', '\r', '\n'),
	source.Quoted(STRING, byte('"'), byte('\'')),
	source.ManyExcept[byte](WORD, '(', ')', ',', ' ', '\t', '\r', '\n', '"', '\''),
	source.Eof[byte](END_OF))

// Parse a function call of the form "name(arg1,...,argn)", where each argument
// is either an integer constant or a quoted string.  Whitespace between tokens
// is ignored, whilst within string literals it is retained.  String literals
// may contain "\xHH" escapes, which denote the byte with hex value HH.
func Parse(input string) (Call, error) {
	if len(input) == 0 {
		return Call{}, source.NewSyntaxError(source.InvalidCall, input, source.NewSpan(0, 0),
			"missing function to call")
	}
	//
	var (
		lexer  = source.NewLexer([]byte(input), rules)
		tokens = lexer.Collect()
	)
	//
	if lexer.Remaining() != 0 {
		// Only an unclosed quote stops the lexer.
		span := source.NewSpan(lexer.Index(), len(input))
		//
		return Call{}, source.NewSyntaxError(source.UnterminatedString, input, span,
			fmt.Sprintf("missing closing %c for string", input[lexer.Index()]))
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t source.Token) bool { return t.Kind == WHITESPACE })
	//
	p := &parser{input, tokens, 0}
	//
	call, err := p.parseCall()
	if err != nil {
		return Call{}, err
	}
	//
	return call, nil
}

type parser struct {
	input  string
	tokens []source.Token
	// Position within the tokens
	index int
}

func (p *parser) parseCall() (Call, *source.SyntaxError) {
	var (
		name = p.lookahead()
		args = []Arg{}
	)
	// Function name
	if !p.match(WORD) || !p.match(LBRACE) {
		return Call{}, p.syntaxError(source.InvalidCall, source.NewSpan(0, len(p.input)), "invalid function call")
	}
	// Zero-argument call
	if p.match(RBRACE) {
		return p.finish(name, args)
	}
	//
	for {
		arg, err := p.parseArg(len(args))
		if err != nil {
			return Call{}, err
		}
		//
		args = append(args, arg)
		//
		token := p.lookahead()
		//
		switch token.Kind {
		case COMMA:
			p.index++
		case RBRACE:
			p.index++
			return p.finish(name, args)
		case END_OF:
			return Call{}, p.missingParenthesis(token)
		default:
			return Call{}, p.syntaxError(source.MalformedArgumentSeparator, token.Span,
				fmt.Sprintf("missing ',' or ')' after %s argument", arg.Kind()))
		}
	}
}

// Parse the argument at a given position in the argument list.
func (p *parser) parseArg(position int) (Arg, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case STRING:
		p.index++
		return p.parseString(token)
	case WORD:
		p.index++
		//
		if value, ok := query.ParseConstant(p.text(token.Span)).Get(); ok {
			return IntArg{value}, nil
		}
	case END_OF:
		return nil, p.missingParenthesis(token)
	case COMMA, RBRACE:
		if position > 0 {
			return nil, p.syntaxError(source.EmptyArgument, token.Span, "missing argument")
		}
		//
		return nil, p.syntaxError(source.InvalidOperand, token.Span, "missing operand")
	}
	//
	return nil, p.syntaxError(source.InvalidOperand, token.Span, fmt.Sprintf("invalid operand: %s", p.text(token.Span)))
}

// Parse a string literal, decoding any escapes within.
func (p *parser) parseString(token source.Token) (Arg, *source.SyntaxError) {
	var (
		body  = token.Span.Sub(1, token.Span.Length()-1)
		text  = p.text(body)
		bytes []byte
	)
	//
	if len(text) == 0 {
		return nil, p.syntaxError(source.EmptyArgument, token.Span, "empty string argument")
	}
	//
	for i := 0; i < len(text); {
		if text[i] != '\\' || i+1 == len(text) || text[i+1] != 'x' {
			bytes = append(bytes, text[i])
			i++
			//
			continue
		}
		// Decode "\xHH"
		escape := body.Sub(i, min(i+4, len(text)))
		//
		b, ok := util.HexByte(p.text(escape)[2:])
		//
		if !ok {
			return nil, p.syntaxError(source.InvalidEscape, escape, fmt.Sprintf("invalid byte: '%s'", p.text(escape)))
		}
		//
		bytes = append(bytes, b)
		i += 4
	}
	//
	return StringArg{string(bytes)}, nil
}

// Check nothing follows the closing parenthesis.
func (p *parser) finish(name source.Token, args []Arg) (Call, *source.SyntaxError) {
	if token := p.lookahead(); token.Kind != END_OF {
		span := source.NewSpan(token.Span.Start(), len(p.input))
		//
		return Call{}, p.syntaxError(source.ExtraArgument, span, fmt.Sprintf("extra argument: %s", p.text(span)))
	}
	//
	return Call{p.text(name.Span), args}, nil
}

func (p *parser) missingParenthesis(token source.Token) *source.SyntaxError {
	return p.syntaxError(source.MissingParenthesis, token.Span, "missing ')'")
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *parser) lookahead() source.Token {
	return p.tokens[p.index]
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Get the text covered by a given span as a string.
func (p *parser) text(span source.Span) string {
	return span.Text(p.input)
}

func (p *parser) syntaxError(kind source.ErrorKind, span source.Span, msg string) *source.SyntaxError {
	return source.NewSyntaxError(kind, p.input, span, msg)
}
