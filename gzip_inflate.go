// SPDX-License-Identifier: GPL-2.0-only

package n64z

import (
	"bytes"
	"compress/flate"
	"io"
)

// inflateBody decodes a raw RFC1951 DEFLATE stream. compress/flate's wire
// format is exactly this: no zlib or gzip framing, which is why it can
// stand in for a hand-rolled inflater here even though this package writes
// its own deflator to reproduce the legacy encoder's block choices.
func inflateBody(body []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(body))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrCorruptData
	}
	return out, nil
}
