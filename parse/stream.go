package parse

import "io"

const readBufferSize = 4096

// FeedReader pulls r to exhaustion, feeding every chunk to the parser
// and finishing the document at io.EOF. suspend, when non-nil, is
// called immediately before each blocking Read and resume immediately
// after it returns; the two are strictly paired and no parse work
// happens between them. A reader failure other than io.EOF is returned
// unmodified.
func (p *Parser) FeedReader(r io.Reader, suspend, resume func()) error {
	buf := make([]byte, readBufferSize)
	for {
		if suspend != nil {
			suspend()
		}
		n, err := r.Read(buf)
		if resume != nil {
			resume()
		}
		if n > 0 {
			if _, ferr := p.Feed(buf[:n], false); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			_, ferr := p.Feed(nil, true)
			return ferr
		}
		if err != nil {
			return err
		}
	}
}
