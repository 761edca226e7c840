package token

import "strings"

// magicMethods maps the lowercased magic method names to their
// canonical spellings. PHP resolves method names case-insensitively,
// so lookup lowers first.
var magicMethods = map[string]string{
	"__construct":   "__construct",
	"__destruct":    "__destruct",
	"__call":        "__call",
	"__callstatic":  "__callStatic",
	"__get":         "__get",
	"__set":         "__set",
	"__isset":       "__isset",
	"__unset":       "__unset",
	"__sleep":       "__sleep",
	"__wakeup":      "__wakeup",
	"__serialize":   "__serialize",
	"__unserialize": "__unserialize",
	"__tostring":    "__toString",
	"__invoke":      "__invoke",
	"__set_state":   "__set_state",
	"__clone":       "__clone",
	"__debuginfo":   "__debugInfo",
}

// IsMagicMethod reports whether name is one of PHP's magic method
// names, in any casing.
func IsMagicMethod(name string) bool {
	_, ok := magicMethods[strings.ToLower(name)]
	return ok
}

// MagicMethodSpelling returns the canonical spelling for a magic
// method name and whether name is one.
func MagicMethodSpelling(name string) (string, bool) {
	canon, ok := magicMethods[strings.ToLower(name)]
	return canon, ok
}
