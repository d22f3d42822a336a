// Package encode provides incremental, push-based writing of luxem
// documents.
//
// A Writer is driven by the same event vocabulary the parser emits, so
// a *Writer can be installed directly as a parse listener to reformat a
// stream without building a tree:
//
//	w := encode.New(encode.WriteTo(os.Stdout), encode.Pretty(true))
//	if err := parse.New(w).FeedReader(os.Stdin, nil, nil); err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Flush(); err != nil {
//		log.Fatal(err)
//	}
package encode
