/*
Package codec converts between term trees and external data
representations.

Templates and environments are plain data, so they can live in YAML files:
DecodeYAML and DecodeEnvYAML parse them preserving mapping order, with
"@name" scalars (or the !ref tag) for symbolic references and the !rmv tag
for the removal sentinel. EncodeYAML writes resolved trees back out.

Decode maps a resolved tree onto caller-defined structs via mapstructure,
for consumers that want typed access to the resolved spec instead of
walking terms.

Function values never cross this boundary in either direction; they exist
only in environments assembled in Go.
*/
package codec
