// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package intcode

import (
	"math/big"
	"strings"
)

// Parse parses a comma-separated listing of base-10 integers.
func Parse(text string) ([]*big.Int, error) {
	toks := strings.Split(strings.TrimSpace(text), ",")
	vals := make([]*big.Int, len(toks))
	for i, tok := range toks {
		tok = strings.TrimSpace(tok)
		v, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return nil, &ParseError{Index: i, Token: tok}
		}
		vals[i] = v
	}
	return vals, nil
}
