package boolidx

import "log/slog"

// ═══════════════════════════════════════════════════════════════════════════════
// LANGUAGE & STOP WORDS
// ═══════════════════════════════════════════════════════════════════════════════
// Stop-word filtering is per-language (§4.2, §6). The built-in English set below
// is ported from the analyzer this package grew out of. A host may plug in other
// languages via a StopwordDataset; an unreadable or unrecognized dataset degrades
// to an empty stop-word set (no filtering) rather than failing the build, logged
// at slog.Warn — losing stop-word filtering narrows recall, it does not corrupt
// the index.
// ═══════════════════════════════════════════════════════════════════════════════

// Language identifies the natural language a StopwordDataset and Stemmer apply to.
type Language string

const (
	English Language = "en"
	Unknown Language = ""
)

// StopwordDataset supplies the stop-word set for a language. Load must be safe
// to call once per normalizer build.
type StopwordDataset interface {
	Load(lang Language) (map[string]struct{}, error)
}

// BuiltinStopwordDataset serves the English list compiled into this package and
// an empty set for any other language.
type BuiltinStopwordDataset struct{}

// Load implements StopwordDataset.
func (BuiltinStopwordDataset) Load(lang Language) (map[string]struct{}, error) {
	if lang != English {
		return map[string]struct{}{}, nil
	}
	return englishStopwords, nil
}

// LoadStopwords resolves a dataset for lang, logging and falling back to an
// empty set on any error rather than aborting the build.
func LoadStopwords(ds StopwordDataset, lang Language) map[string]struct{} {
	if ds == nil {
		ds = BuiltinStopwordDataset{}
	}
	words, err := ds.Load(lang)
	if err != nil {
		slog.Warn("stopword dataset unavailable, continuing without stop-word filtering",
			"language", lang, "error", err)
		return map[string]struct{}{}
	}
	return words
}

// englishStopwords is the built-in English stop-word set.
var englishStopwords = map[string]struct{}{
	"a": {},
	"about": {},
	"above": {},
	"across": {},
	"after": {},
	"afterwards": {},
	"again": {},
	"against": {},
	"all": {},
	"almost": {},
	"alone": {},
	"along": {},
	"already": {},
	"also": {},
	"although": {},
	"always": {},
	"am": {},
	"among": {},
	"amongst": {},
	"amoungst": {},
	"amount": {},
	"an": {},
	"and": {},
	"another": {},
	"any": {},
	"anyhow": {},
	"anyone": {},
	"anything": {},
	"anyway": {},
	"anywhere": {},
	"are": {},
	"around": {},
	"as": {},
	"at": {},
	"back": {},
	"be": {},
	"became": {},
	"because": {},
	"become": {},
	"becomes": {},
	"becoming": {},
	"been": {},
	"before": {},
	"beforehand": {},
	"behind": {},
	"being": {},
	"below": {},
	"beside": {},
	"besides": {},
	"between": {},
	"beyond": {},
	"bill": {},
	"both": {},
	"bottom": {},
	"but": {},
	"by": {},
	"call": {},
	"can": {},
	"cannot": {},
	"cant": {},
	"co": {},
	"con": {},
	"could": {},
	"couldnt": {},
	"cry": {},
	"de": {},
	"describe": {},
	"detail": {},
	"do": {},
	"done": {},
	"down": {},
	"due": {},
	"during": {},
	"each": {},
	"eg": {},
	"eight": {},
	"either": {},
	"eleven": {},
	"else": {},
	"elsewhere": {},
	"empty": {},
	"enough": {},
	"etc": {},
	"even": {},
	"ever": {},
	"every": {},
	"everyone": {},
	"everything": {},
	"everywhere": {},
	"except": {},
	"few": {},
	"fifteen": {},
	"fify": {},
	"fill": {},
	"find": {},
	"fire": {},
	"first": {},
	"five": {},
	"for": {},
	"former": {},
	"formerly": {},
	"forty": {},
	"found": {},
	"four": {},
	"from": {},
	"front": {},
	"full": {},
	"further": {},
	"get": {},
	"give": {},
	"go": {},
	"had": {},
	"has": {},
	"hasnt": {},
	"have": {},
	"he": {},
	"hence": {},
	"her": {},
	"here": {},
	"hereafter": {},
	"hereby": {},
	"herein": {},
	"hereupon": {},
	"hers": {},
	"herself": {},
	"him": {},
	"himself": {},
	"his": {},
	"how": {},
	"however": {},
	"hundred": {},
	"ie": {},
	"if": {},
	"in": {},
	"inc": {},
	"indeed": {},
	"interest": {},
	"into": {},
	"is": {},
	"it": {},
	"its": {},
	"itself": {},
	"keep": {},
	"last": {},
	"latter": {},
	"latterly": {},
	"least": {},
	"less": {},
	"ltd": {},
	"made": {},
	"many": {},
	"may": {},
	"me": {},
	"meanwhile": {},
	"might": {},
	"mill": {},
	"mine": {},
	"more": {},
	"moreover": {},
	"most": {},
	"mostly": {},
	"move": {},
	"much": {},
	"must": {},
	"my": {},
	"myself": {},
	"name": {},
	"namely": {},
	"neither": {},
	"never": {},
	"nevertheless": {},
	"next": {},
	"nine": {},
	"no": {},
	"nobody": {},
	"none": {},
	"noone": {},
	"nor": {},
	"not": {},
	"nothing": {},
	"now": {},
	"nowhere": {},
	"of": {},
	"off": {},
	"often": {},
	"on": {},
	"once": {},
	"one": {},
	"only": {},
	"onto": {},
	"or": {},
	"other": {},
	"others": {},
	"otherwise": {},
	"our": {},
	"ours": {},
	"ourselves": {},
	"out": {},
	"over": {},
	"own": {},
	"part": {},
	"per": {},
	"perhaps": {},
	"please": {},
	"put": {},
	"rather": {},
	"re": {},
	"same": {},
	"see": {},
	"seem": {},
	"seemed": {},
	"seeming": {},
	"seems": {},
	"serious": {},
	"several": {},
	"she": {},
	"should": {},
	"show": {},
	"side": {},
	"since": {},
	"sincere": {},
	"six": {},
	"sixty": {},
	"so": {},
	"some": {},
	"somehow": {},
	"someone": {},
	"something": {},
	"sometime": {},
	"sometimes": {},
	"somewhere": {},
	"still": {},
	"such": {},
	"system": {},
	"take": {},
	"ten": {},
	"than": {},
	"that": {},
	"the": {},
	"their": {},
	"them": {},
	"themselves": {},
	"then": {},
	"thence": {},
	"there": {},
	"thereafter": {},
	"thereby": {},
	"therefore": {},
	"therein": {},
	"thereupon": {},
	"these": {},
	"they": {},
	"thickv": {},
	"thin": {},
	"third": {},
	"this": {},
	"those": {},
	"though": {},
	"three": {},
	"through": {},
	"throughout": {},
	"thru": {},
	"thus": {},
	"to": {},
	"together": {},
	"too": {},
	"top": {},
	"toward": {},
	"towards": {},
	"twelve": {},
	"twenty": {},
	"two": {},
	"un": {},
	"under": {},
	"until": {},
	"up": {},
	"upon": {},
	"us": {},
	"very": {},
	"via": {},
	"was": {},
	"we": {},
	"well": {},
	"were": {},
	"what": {},
	"whatever": {},
	"when": {},
	"whence": {},
	"whenever": {},
	"where": {},
	"whereafter": {},
	"whereas": {},
	"whereby": {},
	"wherein": {},
	"whereupon": {},
	"wherever": {},
	"whether": {},
	"which": {},
	"while": {},
	"whither": {},
	"who": {},
	"whoever": {},
	"whole": {},
	"whom": {},
	"whose": {},
	"why": {},
	"will": {},
	"with": {},
	"within": {},
	"without": {},
	"would": {},
	"yet": {},
	"you": {},
	"your": {},
	"yours": {},
	"yourself": {},
	"yourselves": {},
}
