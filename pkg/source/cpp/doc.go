// Package cpp builds a [source.Program] from C and C++ files with the
// tree-sitter C++ grammar.
//
// # Files
//
// Every path in [source.LoadOptions.Paths] and [source.LoadOptions.Includes]
// is either a file, parsed as is, or a directory, walked for files with one
// of [Extensions]. Hidden directories are skipped. Each file becomes one
// [source.KindUnit] declaration; sources come before includes.
//
// # Declarations
//
// Namespaces (including "a::b" nested specifiers), classes, structs and
// unions with a body, class templates and explicit specializations are
// extracted with their methods and fields. Forward declarations are ignored
// and out-of-class member definitions add no members. Preprocessor
// conditionals are transparent, so include guards do not hide their
// contents.
//
// Classes defined inside a function body are qualified with the function's
// name, "app::run::Local" for a struct Local in app::run(). Classes in an
// unnamed namespace get a per-file scope, "(anonymous namespace@a.cpp)::Impl",
// and stay visible to lookups from the enclosing scope of that file.
//
// Tree-sitter recovers from syntax errors, so a file that does not parse
// cleanly is logged as a warning and its recoverable declarations are kept.
// A file that cannot be read fails the whole load.
//
// # Base Resolution
//
// A base specifier is resolved by name against every class seen in every
// parsed file. Template arguments and a leading "::" are stripped, then the
// name is tried in the derived class's enclosing scope and each scope
// outward to the global one:
//
//	namespace engine {
//	namespace gpu { struct Buffer {}; }
//	struct Texture : gpu::Buffer {};   // engine::gpu::Buffer
//	}
//
// A base spelled as a template parameter of an enclosing template, or a name
// no parsed file declares (std::string without the standard headers), does
// not resolve.
package cpp
