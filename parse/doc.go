// Package parse provides incremental, push-based decoding of luxem
// documents.
//
// A Parser is constructed once per document with a Listener and fed
// byte chunks with Feed; structural and content events are delivered to
// the listener as soon as they are fully determined. Tokens and
// structures may span chunk boundaries: splitting a document at any
// byte boundary and feeding the pieces in order produces the identical
// event sequence as feeding it whole.
//
//	var events []string
//	p := parse.New(&parse.Callbacks{
//		OnPrimitive: func(v string) error {
//			events = append(events, v)
//			return nil
//		},
//	})
//	if _, err := p.Feed([]byte(`[a, b, (int) 3]`), true); err != nil {
//		log.Fatal(err)
//	}
package parse
