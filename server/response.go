package server

import (
	"bytes"
	"strconv"
)

// BuildResponse wraps body in the full HTTP/1.1 200 envelope. The response
// is assembled completely before the caller writes it: status line,
// Content-Type, an exact Content-Length, blank line, body. No Connection
// header, since there is no keep-alive.
func BuildResponse(body []byte) []byte {
	buf := responseBufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	defer func() {
		if buf.Cap() <= maxPoolBufferSize {
			responseBufferPool.Put(buf)
		}
	}()

	buf.WriteString("HTTP/1.1 200 OK\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("Content-Length: ")
	buf.WriteString(strconv.Itoa(len(body)))
	buf.WriteString("\r\n\r\n")
	buf.Write(body)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
