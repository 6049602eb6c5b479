package discipline

import crerr "github.com/cockroachdb/errors"

// ErrNoNextMatch marks a trigger match that has no later match in the season.
var ErrNoNextMatch = crerr.New("no later match in season")
