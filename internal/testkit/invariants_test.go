package testkit

import (
	"strings"
	"testing"

	"phix/internal/stream"
	"phix/internal/token"
)

func TestCheckCoverageAccepts(t *testing.T) {
	src := []byte("<?php echo 1;")
	toks := []token.Token{
		{Kind: token.OpenTag, Text: "<?php"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.KwEcho, Text: "echo"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.IntLit, Text: "1"},
		token.Bare(";"),
	}
	if err := CheckCoverage(src, toks); err != nil {
		t.Errorf("CheckCoverage: %v", err)
	}
}

func TestCheckCoverageRejects(t *testing.T) {
	src := []byte("<?php echo")

	cases := []struct {
		name string
		toks []token.Token
		want string
	}{
		{
			name: "short coverage",
			toks: []token.Token{{Kind: token.OpenTag, Text: "<?php"}},
			want: "cover",
		},
		{
			name: "diverging text",
			toks: []token.Token{
				{Kind: token.OpenTag, Text: "<?php"},
				{Kind: token.Whitespace, Text: " "},
				{Kind: token.KwEcho, Text: "print"},
			},
			want: "diverges",
		},
		{
			name: "overrun",
			toks: []token.Token{{Kind: token.InlineHTML, Text: "<?php echo and then some"}},
			want: "overruns",
		},
		{
			name: "EOF in list",
			toks: []token.Token{
				{Kind: token.OpenTag, Text: "<?php"},
				{Kind: token.EOF},
			},
			want: "EOF",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckCoverage(src, tc.toks)
			if err == nil {
				t.Fatal("CheckCoverage accepted a broken token list")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCheckStreamInvariantsAccepts(t *testing.T) {
	s := stream.New([]token.Token{
		{Kind: token.OpenTag, Text: "<?php"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Variable, Text: "$x"},
		token.Bare(";"),
	})
	if err := CheckStreamInvariants(s); err != nil {
		t.Errorf("CheckStreamInvariants: %v", err)
	}

	// стирание слота не ломает инварианты
	s.Get(1).Clear()
	if err := CheckStreamInvariants(s); err != nil {
		t.Errorf("CheckStreamInvariants after Clear: %v", err)
	}
}

func TestCheckStreamInvariantsRejectsHalfErased(t *testing.T) {
	s := stream.New([]token.Token{
		{Kind: token.OpenTag, Text: "<?php"},
		{Kind: token.Whitespace, Text: " "},
	})
	// опустошили текст, но оставили вид: так выглядит забытый Clear
	s.Get(1).Text = ""

	err := CheckStreamInvariants(s)
	if err == nil {
		t.Fatal("CheckStreamInvariants accepted a half-erased slot")
	}
	if !strings.Contains(err.Error(), "cleared") {
		t.Errorf("error %q does not mention clearing", err)
	}
}

func TestCheckStreamInvariantsNil(t *testing.T) {
	if err := CheckStreamInvariants(nil); err == nil {
		t.Error("nil stream accepted")
	}
}
