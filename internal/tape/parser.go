package tape

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/hashicorp/go-multierror"
)

// noneLiteral is the ExpectFocused argument for "nothing focused".
const noneLiteral = "none"

// Parser parses .tape files into commands
type Parser struct {
	lexer  *Lexer
	curTok Token
	keys   *config.KeyNormalizer
	errors *multierror.Error
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{
		lexer: l,
		keys:  config.NewKeyNormalizer(),
	}
	p.nextToken()
	return p
}

// Parse parses a whole script. The returned commands hold every line that
// parsed; the error lists every line that did not.
func Parse(input string) ([]Command, error) {
	p := NewParser(New(input))
	cmds := p.Parse()
	return cmds, p.Err()
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tape: %w", err)
	}
	return Parse(string(data))
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.lexer.NextToken()
}

// Err returns the collected parse errors, or nil.
func (p *Parser) Err() error {
	return p.errors.ErrorOrNil()
}

func (p *Parser) errorf(tok Token, format string, args ...any) {
	p.errors = multierror.Append(p.errors, &ParseError{
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// Parse parses the entire tape file and returns all commands
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		// Skip blank lines
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		if ok {
			commands = append(commands, cmd)
		}
	}

	return commands
}

// parseCommand parses one line, always consuming it through its newline.
func (p *Parser) parseCommand() (Command, bool) {
	head := p.curTok
	args, end := p.readLine()

	ct, ok := commandTokens[head.Type]
	if !ok {
		if head.Type == TOKEN_ILLEGAL {
			p.errorf(head, "illegal token %q", head.Literal)
		} else {
			p.errorf(head, "unknown command %q", head.Literal)
		}
		return Command{}, false
	}

	cmd := Command{Type: ct, Line: head.Line, Column: head.Column}
	before := p.errorCount()

	switch ct {
	case CommandType_Viewport:
		cmd.Args = p.numbers(args, 2, end, head)
		for i, v := range cmd.Args {
			if v <= 0 {
				p.errorf(args[i], "viewport size must be positive, got %s", args[i].Literal)
			}
		}

	case CommandType_Open, CommandType_Minimize, CommandType_Close,
		CommandType_Focus, CommandType_Maximize:
		cmd.App = p.app(args, end, head)
		p.noMore(args, 1)

	case CommandType_Drag, CommandType_Resize:
		cmd.App = p.app(args, end, head)
		cmd.Args = p.numbers(tail(args, 1), 2, end, head)

	case CommandType_Scroll:
		cmd.App = p.app(args, end, head)
		cmd.Args = p.numbers(tail(args, 1), 1, end, head)

	case CommandType_Key:
		cmd.Key = p.key(args, end, head)
		p.noMore(args, 1)

	case CommandType_Expect:
		cmd.App = p.app(args, end, head)
		cmd.Args = p.numbers(tail(args, 1), 4, end, head)

	case CommandType_ExpectOpen:
		for _, tok := range args {
			if app, ok := p.appToken(tok); ok {
				cmd.Apps = append(cmd.Apps, app)
			}
		}

	case CommandType_ExpectFocused:
		if len(args) > 0 && args[0].Type == TOKEN_IDENTIFIER && strings.EqualFold(args[0].Literal, noneLiteral) {
			p.noMore(args, 1)
			break
		}
		cmd.App = p.app(args, end, head)
		p.noMore(args, 1)
	}

	return cmd, p.errorCount() == before
}

// readLine collects the argument tokens up to the end of the line. end is the
// newline or EOF token, used to place "missing argument" errors.
func (p *Parser) readLine() (args []Token, end Token) {
	p.nextToken()
	for p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		args = append(args, p.curTok)
		p.nextToken()
	}
	end = p.curTok
	if p.curTok.Type == TOKEN_NEWLINE {
		p.nextToken()
	}
	return args, end
}

func (p *Parser) errorCount() int {
	if p.errors == nil {
		return 0
	}
	return len(p.errors.Errors)
}

func tail(args []Token, n int) []Token {
	if len(args) < n {
		return nil
	}
	return args[n:]
}

func (p *Parser) appToken(tok Token) (desktop.Application, bool) {
	if tok.Type != TOKEN_IDENTIFIER && tok.Type != TOKEN_STRING {
		p.errorf(tok, "expected an application name, got %q", tok.Literal)
		return "", false
	}
	app, err := desktop.Parse(tok.Literal)
	if err != nil {
		p.errorf(tok, "%v", err)
		return "", false
	}
	return app, true
}

func (p *Parser) app(args []Token, end, head Token) desktop.Application {
	if len(args) == 0 {
		p.errorf(end, "%s: missing application", head.Literal)
		return ""
	}
	app, _ := p.appToken(args[0])
	return app
}

func (p *Parser) numbers(args []Token, n int, end, head Token) []float64 {
	if len(args) < n {
		p.errorf(end, "%s: expected %d numbers, got %d", head.Literal, n, len(args))
		return nil
	}
	p.noMore(args, n)

	out := make([]float64, 0, n)
	for _, tok := range args[:n] {
		if tok.Type != TOKEN_NUMBER {
			p.errorf(tok, "expected a number, got %q", tok.Literal)
			continue
		}
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok, "bad number %q", tok.Literal)
			continue
		}
		out = append(out, v)
	}
	return out
}

func (p *Parser) key(args []Token, end, head Token) string {
	if len(args) == 0 {
		p.errorf(end, "%s: missing key", head.Literal)
		return ""
	}
	tok := args[0]
	if tok.Type == TOKEN_ILLEGAL {
		p.errorf(tok, "illegal token %q", tok.Literal)
		return ""
	}
	if ok, reason := p.keys.ValidateKey(tok.Literal); !ok {
		p.errorf(tok, "invalid key: %s", reason)
		return ""
	}
	return p.keys.Canonical(tok.Literal)
}

// noMore reports every argument past the first n.
func (p *Parser) noMore(args []Token, n int) {
	if len(args) > n {
		p.errorf(args[n], "unexpected argument %q", args[n].Literal)
	}
}
