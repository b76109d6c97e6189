package tape

// TokenType represents the type of a token in a .tape file
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"
	TOKEN_NUMBER     TokenType = "NUMBER"
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER"

	// Commands - Desktop
	TOKEN_VIEWPORT TokenType = "Viewport"
	TOKEN_OPEN     TokenType = "Open"
	TOKEN_MINIMIZE TokenType = "Minimize"
	TOKEN_CLOSE    TokenType = "Close"
	TOKEN_FOCUS    TokenType = "Focus"

	// Commands - Gestures
	TOKEN_DRAG     TokenType = "Drag"
	TOKEN_RESIZE   TokenType = "Resize"
	TOKEN_MAXIMIZE TokenType = "Maximize"
	TOKEN_SCROLL   TokenType = "Scroll"
	TOKEN_KEY      TokenType = "Key"

	// Commands - Assertions
	TOKEN_EXPECT         TokenType = "Expect"
	TOKEN_EXPECT_OPEN    TokenType = "ExpectOpen"
	TOKEN_EXPECT_FOCUSED TokenType = "ExpectFocused"
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type is a command
func (tt TokenType) IsCommand() bool {
	_, ok := commandTokens[tt]
	return ok
}

// KeywordTokenMap maps string keywords to token types
var KeywordTokenMap = map[string]TokenType{
	"Viewport": TOKEN_VIEWPORT,
	"Open":     TOKEN_OPEN,
	"Minimize": TOKEN_MINIMIZE,
	"Close":    TOKEN_CLOSE,
	"Focus":    TOKEN_FOCUS,

	"Drag":     TOKEN_DRAG,
	"Resize":   TOKEN_RESIZE,
	"Maximize": TOKEN_MAXIMIZE,
	"Scroll":   TOKEN_SCROLL,
	"Key":      TOKEN_KEY,

	"Expect":        TOKEN_EXPECT,
	"ExpectOpen":    TOKEN_EXPECT_OPEN,
	"ExpectFocused": TOKEN_EXPECT_FOCUSED,
}

var commandTokens = map[TokenType]CommandType{
	TOKEN_VIEWPORT:       CommandType_Viewport,
	TOKEN_OPEN:           CommandType_Open,
	TOKEN_MINIMIZE:       CommandType_Minimize,
	TOKEN_CLOSE:          CommandType_Close,
	TOKEN_FOCUS:          CommandType_Focus,
	TOKEN_DRAG:           CommandType_Drag,
	TOKEN_RESIZE:         CommandType_Resize,
	TOKEN_MAXIMIZE:       CommandType_Maximize,
	TOKEN_SCROLL:         CommandType_Scroll,
	TOKEN_KEY:            CommandType_Key,
	TOKEN_EXPECT:         CommandType_Expect,
	TOKEN_EXPECT_OPEN:    CommandType_ExpectOpen,
	TOKEN_EXPECT_FOCUSED: CommandType_ExpectFocused,
}

// LookupKeyword returns the token type for a keyword, or TOKEN_IDENTIFIER if not a keyword
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
