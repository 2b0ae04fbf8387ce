// Command awinspect lists and exports the contents of an Another World
// resource snapshot.
//
//	awinspect resources SNAPSHOT        catalog overview
//	awinspect script SNAPSHOT ID        classified disassembly of a script
//	awinspect offsets SNAPSHOT          polygon buffer offsets drawn by scripts
//	awinspect export SNAPSHOT -o DIR    sounds as WAV, bitmaps as BMP
//
// Lookup tables come from the embedded defaults unless --config names a
// TOML file.
package main
