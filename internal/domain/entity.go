package domain

// EntityKind discriminates the two unlockable entity variants
type EntityKind int

const (
	KindCraftItem EntityKind = iota + 1
	KindCraftRecipe
)

// String implements fmt.Stringer
func (k EntityKind) String() string {
	switch k {
	case KindCraftItem:
		return "item"
	case KindCraftRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// SavePrefix returns the save id prefix used for entities of this kind
func (k EntityKind) SavePrefix() string {
	switch k {
	case KindCraftItem:
		return SavePrefixItem
	case KindCraftRecipe:
		return SavePrefixRecipe
	default:
		return ""
	}
}

// SaveID builds the persisted document id for an entity
func SaveID(kind EntityKind, id string) string {
	prefix := kind.SavePrefix()
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
