package rules_test

import (
	"testing"

	"phix/internal/rules"
)

func TestMagicCaseUppercase(t *testing.T) {
	expectRewrite(t, rules.MagicCase{},
		"<?php class A { function __CONSTRUCT() {} }",
		"<?php class A { function __construct() {} }", 1)
}

func TestMagicCaseMixed(t *testing.T) {
	expectRewrite(t, rules.MagicCase{},
		"<?php class A { public function __tostring() { return ''; } }",
		"<?php class A { public function __toString() { return ''; } }", 1)
}

func TestMagicCaseCanonicalUntouched(t *testing.T) {
	expectRewrite(t, rules.MagicCase{},
		"<?php class A { function __toString() { return ''; } }",
		"<?php class A { function __toString() { return ''; } }", 0)
}

func TestMagicCaseOrdinaryMethodUntouched(t *testing.T) {
	expectRewrite(t, rules.MagicCase{},
		"<?php class A { function Construct() {} }",
		"<?php class A { function Construct() {} }", 0)
}

func TestMagicCaseFreeFunctionUntouched(t *testing.T) {
	expectRewrite(t, rules.MagicCase{},
		"<?php function __TOSTRING() {}",
		"<?php function __TOSTRING() {}", 0)
}

func TestMagicCaseSeveralMethods(t *testing.T) {
	src := "<?php class A { function __GET($k) {} function __SET($k, $v) {} function plain() {} }"
	want := "<?php class A { function __get($k) {} function __set($k, $v) {} function plain() {} }"
	expectRewrite(t, rules.MagicCase{}, src, want, 2)
}

func TestMagicCaseIdempotent(t *testing.T) {
	expectStable(t, rules.MagicCase{},
		"<?php class A { function __CallStatic($n, $a) {} }")
}
