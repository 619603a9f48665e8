package util_test

import (
	"testing"

	"english_quest_backend/internal/util"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"I HAVE BEEN WAITING.", "i have been waiting"},
		{"  was   cooking  ", "was cooking"},
		{"I won't go.", "i will not go"},
		{"I can't swim!", "i can not swim"},
		{"We shan't stay", "we shall not stay"},
		{"She doesn't know", "she does not know"},
		{"They’re late", "they are late"},
		{"I'm here; you're there", "i am here you are there"},
		{"We'll see, we've seen", "we will see we have seen"},
		{"I'd finished", "i would finished"},
		{"a .", "a"},
		{"don.'t", "do not"},
		{"", ""},
		{"?!", ""},
	}
	for _, tc := range cases {
		if got := util.NormalizeAnswer(tc.in); got != tc.want {
			t.Errorf("NormalizeAnswer(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAnswerIsIdempotent(t *testing.T) {
	inputs := []string{
		"I won't go.",
		"a .",
		"don.'t",
		"  Hello ,  World !! ",
		"It’s   raining’ll",
		"n.'t'd",
		"WON'T'VE",
		"\tline\nbreak\r\n",
		"I have never eaten sushi before.",
	}
	for _, in := range inputs {
		once := util.NormalizeAnswer(in)
		twice := util.NormalizeAnswer(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestAnswersMatch(t *testing.T) {
	if !util.AnswersMatch("I won't go.", "I will not go") {
		t.Fatal("contraction forms should match")
	}
	if !util.AnswersMatch("I HAVE BEEN WAITING.", "I have been waiting") {
		t.Fatal("case and punctuation should not matter")
	}
	if util.AnswersMatch("was cooked", "was cooking") {
		t.Fatal("different words must not match")
	}
}
