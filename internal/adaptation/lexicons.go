package adaptation

// Lexicon lists the phrasing cues for one target context. Positive keywords
// earn credit when present in a rewrite; negative keywords earn credit when
// present in the original but dropped from the rewrite.
type Lexicon struct {
	Positive []string
	Negative []string
}

// contextLexicons is the per-target-context keyword table. Contexts without
// an entry score zero cultural accuracy; that is a missing lexicon, not an
// error.
var contextLexicons = map[string]Lexicon{
	"japan": {
		Positive: []string{"respect", "humbly", "appreciate", "apologize", "honored", "consider", "perhaps", "would it be possible"},
		Negative: []string{"immediate", "asap", "demand", "must", "deadline", "now", "bottom line"},
	},
	"germany": {
		Positive: []string{"precisely", "schedule", "detail", "plan", "specification", "agenda", "punctual"},
		Negative: []string{"roughly", "whenever", "sometime", "wing it", "play it by ear"},
	},
	"brazil": {
		Positive: []string{"hope you are well", "family", "pleasure", "looking forward", "warm", "together"},
		Negative: []string{"strictly business", "get to the point", "skip the small talk"},
	},
	"usa": {
		Positive: []string{"bottom line", "action items", "results", "win", "direct", "next steps"},
		Negative: []string{"humbly", "if it is not too much trouble", "at your leisure"},
	},
	"india": {
		Positive: []string{"kindly", "grateful", "do the needful", "respect", "team", "guidance"},
		Negative: []string{"demand", "non-negotiable", "immediately"},
	},
	"sweden": {
		Positive: []string{"consensus", "everyone", "balance", "fair", "agree", "lagom"},
		Negative: []string{"my decision", "top-down", "overtime", "hustle"},
	},
}

// LexiconFor returns the lexicon for a target context, matching
// case-insensitively. The second return reports whether one is defined.
func LexiconFor(targetContext string) (Lexicon, bool) {
	lex, ok := contextLexicons[normalizeContext(targetContext)]
	return lex, ok
}
