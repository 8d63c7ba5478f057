package dedup

import "errors"

// ErrUnresolvedGroup signals a contract violation: a group left the tie-break
// chain with at least one member still unresolved. Tri 3.3 terminates every
// chain unconditionally, so this can only be a programming error; Classify
// surfaces it instead of emitting an unresolved record.
var ErrUnresolvedGroup = errors.New("groupe non résolu après le Tri 3.3")
