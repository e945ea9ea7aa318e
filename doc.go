// Package quizdeck converts loosely structured plain-text quiz banks into the
// questions.json deck consumed by the flashcard web app.
//
// # Quick Start
//
// Pick a converter for the input format, convert, and encode:
//
//	conv, err := quizdeck.NewConverter(quizdeck.FormatLettered)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	deck, err := conv.Convert(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = quizdeck.WriteFile("questions.json", deck)
//
// # Input Formats
//
// Symbol format (FormatSymbol): options start with a glyph marker ("©", or
// "@" as a fallback) and correct options carry the token "ff" before the
// marker. Section headers start with "Knowledge Assessment". Questions that
// lack text, have fewer than two options or have no correct option are
// dropped.
//
//	Which layer routes packets?
//	© Data Link
//	ff © Network
//
// Lettered format (FormatLettered): explicit TITLE:, Q:, "A)" options,
// ANS: and EXPL: tags. This converter is permissive: ANS: ids are stored
// as written even when no option carries that id, and questions with fewer
// than two options are kept. Run Check on the result to surface such records.
//
//	TITLE: Networking
//	Q: Which layer routes packets?
//	A) Data Link
//	B) Network
//	ANS: B
//	EXPL: Routing is Layer 3.
//
// Markdown format (FormatMarkdown): a first-level heading names the deck,
// lower headings name sections, paragraphs hold question text and GFM task
// lists hold options ("- [x]" marks a correct one). A blockquote after the
// options becomes the explanation.
//
// # Output
//
// Encode renders a Deck as two-space indented JSON with non-ASCII and HTML
// characters kept literally. Encoding the same deck twice yields identical
// bytes.
package quizdeck
