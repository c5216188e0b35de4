package merge

import "errors"

// ErrUnreconcilable means neither the relational nor the metadata backend had the entity.
var ErrUnreconcilable = errors.New("no source for entity")
