package hwio

// GetBit8 reports whether bit n of v is set.
func GetBit8(v uint8, n uint) bool { return v&(1<<n) != 0 }

func SetBit8(v *uint8, n uint)   { *v |= 1 << n }
func ClearBit8(v *uint8, n uint) { *v &^= 1 << n }

// SetBit8To sets or clears bit n of v.
func SetBit8To(v *uint8, n uint, set bool) {
	if set {
		SetBit8(v, n)
	} else {
		ClearBit8(v, n)
	}
}
