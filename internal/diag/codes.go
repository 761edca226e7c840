package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexStrayByte                Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Правила перезаписи
	RuleInfo    Code = 2000
	RuleApplied Code = 2001
	RuleSkipped Code = 2002

	// Наблюдаемость
	ObsInfo    Code = 3000
	ObsTimings Code = 3001

	// IO
	IOError       Code = 4000
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Конфигурация
	CfgInfo        Code = 5000
	CfgBadManifest Code = 5001
	CfgUnknownRule Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                     "lexical note",
	LexStrayByte:                "stray byte in source",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",

	RuleInfo:    "rule note",
	RuleApplied: "rule applied",
	RuleSkipped: "rule skipped",

	ObsInfo:    "observability note",
	ObsTimings: "phase timings",

	IOError:       "input/output error",
	IOReadFailed:  "cannot read file",
	IOWriteFailed: "cannot write file",

	CfgInfo:        "configuration note",
	CfgBadManifest: "invalid phix.toml",
	CfgUnknownRule: "unknown rule name",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RULE%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
