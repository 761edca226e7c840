package token

// Kind classifies a source token. The zero value None marks a bare
// token: a single-character or operator lexeme carried by its text
// alone, with no lexical category.
type Kind uint8

//go:generate stringer -type=Kind

const (
	// None marks a bare token; only its text is meaningful.
	None Kind = iota
	// EOF marks the end of the source input. The lexer emits it once;
	// token streams never store it.
	EOF

	// InlineHTML is raw passthrough text outside PHP tags.
	InlineHTML
	// OpenTag is the '<?php' or '<?' opening tag.
	OpenTag
	// OpenTagEcho is the '<?=' echo opening tag.
	OpenTagEcho
	// CloseTag is the '?>' closing tag.
	CloseTag

	// Whitespace is a maximal run of spaces, tabs, and newlines.
	Whitespace
	// Comment is a '//', '#', or '/* ... */' comment.
	Comment
	// DocComment is a '/** ... */' documentation comment.
	DocComment

	// Ident is an identifier or any word that is not a keyword.
	Ident
	// Variable is a '$name' variable.
	Variable
	// IntLit is an integer literal in any base.
	IntLit
	// FloatLit is a floating-point literal.
	FloatLit
	// StringLit is a complete quoted string without interpolation,
	// quotes included.
	StringLit
	// StringBody is a raw text chunk inside an interpolated
	// double-quoted string.
	StringBody
	// CurlyOpenInterp is the '{' that opens a '{$...}' interpolation.
	CurlyOpenInterp
	// DollarCurlyOpen is the '${' that opens a '${name}' interpolation.
	DollarCurlyOpen

	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwClone represents the 'clone' keyword.
	KwClone // clone
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwEcho represents the 'echo' keyword.
	KwEcho // echo
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseif represents the 'elseif' keyword.
	KwElseif // elseif
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwInclude represents the 'include' keyword.
	KwInclude // include
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwRequire represents the 'require' keyword.
	KwRequire // require
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while
)
