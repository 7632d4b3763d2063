package domain

// Universal part-of-speech tags the parser and lookup layers consume.
// Taggers map whatever their backend produces into this set.
const (
	POSNoun    = "NOUN"
	POSProperN = "PROPN"
	POSAdj     = "ADJ"
	POSAdv     = "ADV"
	POSVerb    = "VERB"
	POSNum     = "NUM"
	POSPunct   = "PUNCT"
	POSOther   = "X"
)

// Token is one tagged span of an ingredient line or question.
type Token struct {
	Text  string
	Lemma string
	POS   string
	IsNum bool
}
