// Package defaultprogram holds the built-in source run when the CLI is
// given no positional source file argument (spec §6). It is generated
// from hello.gl by scripts/gen_default_program.go; regenerate it with
// `go run ./scripts/gen_default_program.go` after editing the fixture.
package defaultprogram

// Source is a GridLoc program that writes "Hello, GridLoc!" and a
// trailing newline via the `s` (Write{String}) instruction.
const Source = `("Hello, GridLoc!` + "\n" + `")s`
