package lexicon

// defaultValences is a compact general-purpose valence lexicon on the -4..+4
// scale, weighted towards business and economic news vocabulary.
var defaultValences = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "excellent": 3.2, "best": 3.2, "better": 1.9,
	"positive": 2.6, "success": 2.7, "successful": 2.8, "win": 2.8, "won": 2.7,
	"gain": 2.4, "gains": 2.0, "growth": 1.8, "grow": 1.5, "growing": 1.5,
	"profit": 1.9, "profits": 1.9, "profitable": 2.0, "benefit": 2.0, "benefits": 1.6,
	"boost": 1.7, "boosted": 1.5, "recovery": 1.6, "recover": 1.6, "recovering": 1.4,
	"improve": 1.9, "improved": 2.1, "improvement": 2.0, "strong": 2.3, "stronger": 2.0,
	"support": 1.7, "supported": 1.3, "help": 1.7, "helped": 1.4, "helps": 1.5,
	"relief": 2.1, "hope": 1.9, "hopeful": 2.3, "optimistic": 2.0, "optimism": 2.5,
	"confident": 2.2, "confidence": 2.3, "opportunity": 1.8, "opportunities": 1.8, "thrive": 2.5,
	"thriving": 2.2, "happy": 2.7, "glad": 2.0, "love": 3.2, "like": 1.5,
	"welcome": 2.0, "welcomed": 1.8, "save": 2.2, "saved": 1.9, "safe": 1.9,
	"secure": 1.4, "stable": 1.2, "resilient": 1.6, "innovative": 1.9, "award": 2.5,
	"celebrate": 2.7, "thanks": 1.9, "thank": 1.5, "fun": 2.3, "nice": 1.8,
	"rebound": 1.3, "surge": 1.4, "record": 0.9, "reopen": 1.2, "reopening": 1.2,
	"hire": 1.0, "hiring": 1.0, "grant": 1.5, "grants": 1.5, "fair": 1.3,

	// negative
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "poor": -2.1, "negative": -2.7,
	"loss": -1.3, "losses": -1.7, "lose": -1.7, "lost": -1.3, "losing": -1.6,
	"fail": -2.5, "failed": -2.3, "failure": -2.3, "fear": -2.2, "fears": -1.8,
	"crisis": -3.1, "debt": -1.5, "debts": -1.5, "bankrupt": -2.6, "bankruptcy": -2.5,
	"insolvency": -2.2, "insolvent": -2.3, "closure": -1.3, "closures": -1.3, "close": -0.4,
	"closed": -0.3, "shut": -1.2, "shutdown": -2.1, "layoff": -2.1, "layoffs": -2.1,
	"struggle": -2.0, "struggling": -2.0, "struggled": -1.8, "hurt": -2.4, "hurting": -2.3,
	"damage": -2.2, "decline": -1.7, "declined": -1.5, "drop": -1.1, "dropped": -1.0,
	"fall": -1.2, "fell": -1.2, "falling": -1.3, "risk": -1.1, "risks": -1.1,
	"threat": -2.4, "worry": -1.9, "worried": -1.8, "concern": -1.3, "concerns": -1.4,
	"uncertain": -1.2, "uncertainty": -1.4, "problem": -1.7, "problems": -1.7, "difficult": -1.5,
	"hard": -0.4, "pandemic": -1.9, "virus": -1.8, "death": -2.9, "died": -2.6,
	"kill": -3.7, "killed": -3.5, "collapse": -2.4, "recession": -2.3, "unemployment": -1.9,
	"unemployed": -2.1, "angry": -2.3, "sad": -2.1, "terrible": -2.1, "awful": -2.0,
	"cut": -1.1, "cuts": -1.2, "fraud": -2.8, "lawsuit": -1.6, "sued": -2.1,
	"penalty": -2.0, "fine": 0.8, "costly": -0.8, "expensive": -0.9, "weak": -1.9,
	"warning": -1.4, "warn": -1.0, "desperate": -2.0, "suffer": -2.1, "suffering": -2.1,
}

// boosters scale the valence of the word that follows them.
var boosters = map[string]float64{
	"absolutely": boostIncrement, "very": boostIncrement, "extremely": boostIncrement,
	"really": boostIncrement, "so": boostIncrement, "incredibly": boostIncrement,
	"hugely": boostIncrement, "highly": boostIncrement, "most": boostIncrement,
	"more": boostIncrement, "significantly": boostIncrement, "especially": boostIncrement,
	"barely": -boostIncrement, "hardly": -boostIncrement, "slightly": -boostIncrement,
	"somewhat": -boostIncrement, "less": -boostIncrement, "marginally": -boostIncrement,
	"partly": -boostIncrement, "kind": -boostIncrement, "little": -boostIncrement,
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "nobody": {}, "nothing": {},
	"neither": {}, "nor": {}, "cannot": {}, "without": {}, "lack": {}, "lacks": {},
	"aint": {}, "dont": {}, "doesnt": {}, "didnt": {}, "isnt": {}, "wasnt": {},
	"arent": {}, "werent": {}, "cant": {}, "couldnt": {}, "wont": {}, "wouldnt": {},
	"shouldnt": {}, "hasnt": {}, "havent": {}, "hadnt": {},
}
