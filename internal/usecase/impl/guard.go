package impl

import (
	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
)

// requireCapability is the single authorization gate for use cases.
// Handlers never make role decisions; they pass the session through
// and the use case checks the capability it needs.
func requireCapability(session *entity.Session, capability entity.Capability) error {
	if session == nil {
		return domainerrors.ErrForbidden.WrapMessage("missing session")
	}
	if !session.Can(capability) {
		return domainerrors.ErrForbidden.WrapMessage("capability not granted: " + string(capability))
	}

	return nil
}
