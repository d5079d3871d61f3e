// Package notegen is the Composition Root for the note table generator.
//
// It connects the core pipeline (expansion, normalization, validation) with the
// table adapters (web page, CSV, YAML) and the Go source renderer.
//
// notegen reads a published table of note names and frequencies, where each row
// holds a slash separated group of enharmonic names such as "C#4/Db4", and emits
// Go source declaring one constant per name, a Frequency method, a String method
// returning the published name and a parser accepting the original and
// lower-cased spellings.
//
// Usage:
//
//	svc, err := notegen.New(notegen.DefaultURI,
//		notegen.WithPackage("notes"),
//		notegen.WithLogger(logger),
//	)
//
//	// Write notes_gen.go in one piece
//	var buf bytes.Buffer
//	err = svc.Generate(ctx, &buf)
//	err = notegen.WriteArtifact("notes_gen.go", &buf)
package notegen
