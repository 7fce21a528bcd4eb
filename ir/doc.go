// Package ir provides the value types shared by every enumview package.
//
// This package contains type definitions only. All other packages import ir;
// ir imports nothing from this module. This keeps the descriptor and scalar
// types at the bottom of the dependency graph.
//
// Key design constraints:
//   - Backing values are Scalars: int64 or string, never float, bool or null
//   - EnumSpec is the only enum metadata; nothing is discovered by reflection
//   - Member order is declaration order and is preserved by every view
//   - All JSON tags use snake_case
package ir
