package token

var keywords = map[string]Kind{
	"abstract":   KwAbstract,
	"as":         KwAs,
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"clone":      KwClone,
	"const":      KwConst,
	"continue":   KwContinue,
	"declare":    KwDeclare,
	"default":    KwDefault,
	"do":         KwDo,
	"echo":       KwEcho,
	"else":       KwElse,
	"elseif":     KwElseif,
	"extends":    KwExtends,
	"final":      KwFinal,
	"finally":    KwFinally,
	"for":        KwFor,
	"foreach":    KwForeach,
	"function":   KwFunction,
	"global":     KwGlobal,
	"if":         KwIf,
	"implements": KwImplements,
	"include":    KwInclude,
	"instanceof": KwInstanceof,
	"interface":  KwInterface,
	"namespace":  KwNamespace,
	"new":        KwNew,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"require":    KwRequire,
	"return":     KwReturn,
	"static":     KwStatic,
	"switch":     KwSwitch,
	"throw":      KwThrow,
	"trait":      KwTrait,
	"try":        KwTry,
	"use":        KwUse,
	"var":        KwVar,
	"while":      KwWhile,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// PHP распознаёт ключевые слова без учёта регистра — вызывающий
// понижает лексему, токен сохраняет исходное написание.
func LookupKeyword(lower string) (Kind, bool) {
	k, ok := keywords[lower]
	return k, ok
}
