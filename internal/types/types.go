// internal/types/types.go
package types

import "strconv"

// EntityID: идентификатор сущности внутри одного мира. Ноль означает "нет сущности".
type EntityID uint64

func (id EntityID) String() string {
	return "entity-" + strconv.FormatUint(uint64(id), 10)
}
