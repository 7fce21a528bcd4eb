// Package enum adds derived views to Go enumeration types.
//
// Go has no enum construct; an enumeration here is any comparable type whose
// members are a fixed list of constants and which reports each member's name
// through CaseName. Types that also implement Valued are backed enums.
//
// Register builds a View from the member list once, validating it into an
// explicit ir.EnumSpec descriptor:
//
//	type Color int
//
//	const (
//		Red Color = iota + 1
//		Green
//	)
//
//	func (c Color) CaseName() string    { return [...]string{"", "RED", "GREEN"}[c] }
//	func (c Color) CaseValue() ir.Scalar { return ir.ScalarInt(c) }
//
//	var Colors = enum.MustRegister("Color", []Color{Red, Green}, enum.WithParent("int"))
//
//	Colors.Names()                 // [RED GREEN]
//	Colors.NameFromValue(ir.NewInt(2)) // "GREEN", true
//
// Every View operation derives its result from the registered member list on
// each call. Views are immutable and safe for concurrent use.
package enum
