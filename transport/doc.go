// Package transport moves one opaque payload over one TCP connection.
//
// The sender dials, writes the whole payload and closes its side; the
// receiver accepts a connection and reads until end of stream. There is no
// length prefix, acknowledgement or retry.
//
//	r, err := transport.Listen("127.0.0.1:65432", transport.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	payload, err := r.Receive(ctx)
package transport
