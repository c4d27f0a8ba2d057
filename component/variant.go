package component

import "fmt"

// Variant selects a duck's special behavior
type Variant uint8

const (
	VariantNormal Variant = iota
	VariantCowboy
	VariantScholar
	VariantCrown
	VariantRescue
	VariantWizard
)

// Variants is the fixed set sampled uniformly at spawn
var Variants = []Variant{
	VariantNormal,
	VariantCowboy,
	VariantScholar,
	VariantCrown,
	VariantRescue,
	VariantWizard,
}

var variantNames = [...]string{"normal", "cowboy", "scholar", "crown", "rescue", "wizard"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// DisplayName is the end-of-round name, e.g. "Cowboy Duck"
func (v Variant) DisplayName() string {
	name := v.String()
	if name == "unknown" {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:] + " Duck"
}

// ParseVariant resolves a variant name
func ParseVariant(s string) (Variant, bool) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), true
		}
	}
	return VariantNormal, false
}

// MarshalText encodes the variant as its name
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, ok := ParseVariant(string(b))
	if !ok {
		return fmt.Errorf("unknown variant %q", b)
	}
	*v = parsed
	return nil
}
