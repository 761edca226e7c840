package rules_test

import (
	"testing"

	"phix/internal/rules"
)

func TestElseifCollapse(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} else if ($b) {}",
		"<?php if ($a) {} elseif ($b) {}", 1)
}

func TestElseifAcrossNewline(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {}\nelse\nif ($b) {}",
		"<?php if ($a) {}\nelseif ($b) {}", 1)
}

func TestElseifUppercaseKeywords(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} ELSE IF ($b) {}",
		"<?php if ($a) {} elseif ($b) {}", 1)
}

func TestElseifAlreadyCollapsed(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} elseif ($b) {}",
		"<?php if ($a) {} elseif ($b) {}", 0)
}

func TestElseifKeepsBlockForm(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} else { if ($b) {} }",
		"<?php if ($a) {} else { if ($b) {} }", 0)
}

func TestElseifKeepsCommentBetween(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} else /* ветка */ if ($b) {}",
		"<?php if ($a) {} else /* ветка */ if ($b) {}", 0)
}

func TestElseifChain(t *testing.T) {
	expectRewrite(t, rules.Elseif{},
		"<?php if ($a) {} else if ($b) {} else if ($c) {} else {}",
		"<?php if ($a) {} elseif ($b) {} elseif ($c) {} else {}", 2)
}

func TestElseifIdempotent(t *testing.T) {
	expectStable(t, rules.Elseif{}, "<?php if ($a) {} else if ($b) {}")
}
