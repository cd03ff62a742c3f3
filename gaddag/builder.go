package gaddag

import "github.com/rs/zerolog/log"

// Build constructs a Gaddag from an already-cleaned word iterable (the
// dictfile package is the usual source: it handles the uppercase-skip,
// trim, lowercase, and length-filter rules before handing words here).
// Words shorter than two letters are ignored.
func Build(words []string) (*Gaddag, error) {
	g := New(len(words))
	for i, w := range words {
		if err := g.AddWord(w); err != nil {
			return nil, err
		}
		if i > 0 && i%5000 == 0 {
			log.Debug().Int("count", i).Str("word", w).Msg("gaddag: building")
		}
	}
	log.Info().Int("words", g.WordCount()).Msg("gaddag: built")
	return g, nil
}
