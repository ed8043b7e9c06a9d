package rds

// FieldGroup is a wire field that packs several independent flags into one byte.
// Writing only some of the flags requires to read the current value first and merge the new flags into it.
type FieldGroup byte

// Merge replaces the bits selected by mask with the corresponding bits of patch.
func (g FieldGroup) Merge(patch FieldGroup, mask FieldGroup) FieldGroup {
	return (g &^ mask) | (patch & mask)
}

// Get returns only the bits selected by mask.
func (g FieldGroup) Get(mask FieldGroup) FieldGroup {
	return g & mask
}

func (g FieldGroup) Has(bits FieldGroup) bool {
	return g&bits == bits
}

// Set sets or clears the given bits.
func (g FieldGroup) Set(bits FieldGroup, value bool) FieldGroup {
	if value {
		return g | bits
	}
	return g &^ bits
}
